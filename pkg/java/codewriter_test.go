package java

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupNameCollectsImportables(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	w.pushPackage("com.example")

	err := w.emitCode(CodeBlockOf("$T $T $T $T $T",
		ClassOf("java.util", "List"),
		ClassOf("java.awt", "List"),
		ClassOf("java.util", "Map", "Entry"),
		ClassOf("com.example", "Helper"),
		ClassOf("other", "Helper")))
	require.NoError(t, err)

	require.Equal(t,
		"java.util.List java.awt.List java.util.Map.Entry Helper other.Helper",
		out.String())

	suggested := make(map[string]string)
	for simpleName, className := range w.suggestedImports() {
		suggested[simpleName] = className.CanonicalName()
	}
	// The first List reference wins the simple name; Helper is excluded
	// because the same-package reference already claimed it.
	require.Equal(t, map[string]string{
		"List": "java.util.List",
		"Map":  "java.util.Map",
	}, suggested)
}

func TestLookupNameShortensImportedTypes(t *testing.T) {
	t.Parallel()

	importedTypes := map[string]*ClassName{
		"List": ClassOf("java.util", "List"),
		"Map":  ClassOf("java.util", "Map"),
	}

	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, importedTypes, nil)
	w.pushPackage("com.example")

	err := w.emitCode(CodeBlockOf("$T $T $T",
		ClassOf("java.util", "List"),
		ClassOf("java.awt", "List"),
		ClassOf("java.util", "Map", "Entry")))
	require.NoError(t, err)

	// An imported simple name resolving to a different class forces the
	// fully qualified spelling.
	require.Equal(t, "List java.awt.List Map.Entry", out.String())
}

func TestStatementMarkerFaults(t *testing.T) {
	t.Parallel()

	discard := func() *codeWriter {
		var out strings.Builder
		return newCodeWriter(&out, defaultIndent, nil, nil)
	}

	require.Panics(t, func() { _ = discard().emitCode(CodeBlockOf("$]")) })
	require.Panics(t, func() { _ = discard().emitCode(CodeBlockOf("$[$[")) })
}

func TestIndentUnderflow(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	require.Panics(t, func() { w.popIndent() })
	require.Panics(t, func() { _ = w.emitCode(CodeBlockOf("$<")) })
}

func TestPackageStateFaults(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	require.Panics(t, func() { w.popPackage() })

	w.pushPackage("com.example")
	require.Panics(t, func() { w.pushPackage("com.other") })

	w.popPackage()
	w.pushPackage("com.other")
}

func TestJavadocBlankLinesKeepPrefix(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	require.NoError(t, w.emitJavadoc(CodeBlockOf("First paragraph.\n\n<p>Second paragraph.\n")))

	want := "" +
		"/**\n" +
		" * First paragraph.\n" +
		" *\n" +
		" * <p>Second paragraph.\n" +
		" */\n"
	require.Equal(t, want, out.String())
}

func TestStringLiteralEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "taco", want: `"taco"`},
		{name: "quote", input: `say "hi"`, want: `"say \"hi\""`},
		{name: "backslash", input: `a\b`, want: `"a\\b"`},
		{name: "tab", input: "a\tb", want: `"a\tb"`},
		{name: "control", input: "a\x01b", want: `"a\u0001b"`},
		{name: "trailing newline", input: "one\n", want: `"one\n"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, stringLiteral(tt.input, defaultIndent))
		})
	}
}

func TestStringLiteralWrapsEmbeddedNewlines(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\"one\\n\"\n    + \"two\"", stringLiteral("one\ntwo", defaultIndent))
}
