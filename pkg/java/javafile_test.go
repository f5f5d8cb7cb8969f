package java

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFileImportsNestedTypeByTopLevelName(t *testing.T) {
	t.Parallel()

	taco := ClassBuilder("Taco").
		AddFieldOf(ClassOf("java.util", "Map", "Entry"), "entry", Private).
		Build()
	file := FileBuilder("com.squareup.tacos", taco).Build()

	want := "" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"import java.util.Map;\n" +
		"\n" +
		"class Taco {\n" +
		"  private Map.Entry entry;\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestFileImportsAreSorted(t *testing.T) {
	t.Parallel()

	taco := ClassBuilder("Taco").
		AddFieldOf(ClassOf("java.util", "Date"), "madeFreshDate").
		AddFieldOf(ClassOf("java.math", "BigDecimal"), "price").
		AddFieldOf(ClassOf("java.util", "Currency"), "currency").
		Build()
	file := FileBuilder("com.squareup.tacos", taco).Build()

	want := "" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"import java.math.BigDecimal;\n" +
		"import java.util.Currency;\n" +
		"import java.util.Date;\n" +
		"\n" +
		"class Taco {\n" +
		"  Date madeFreshDate;\n" +
		"\n" +
		"  BigDecimal price;\n" +
		"\n" +
		"  Currency currency;\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestConflictingNestedNameForcesQualification(t *testing.T) {
	t.Parallel()

	outer := ClassBuilder("Outer").
		AddFieldOf(ClassOf("other", "Inner"), "other", Private).
		AddFieldOf(ClassOf("com.example", "Outer", "Inner"), "mine", Private).
		AddType(ClassBuilder("Inner").AddModifiers(Public, Static).Build()).
		Build()
	file := FileBuilder("com.example", outer).Build()

	// The nested Inner shadows the simple name, so other.Inner must stay
	// fully qualified and nothing is imported for it.
	want := "" +
		"package com.example;\n" +
		"\n" +
		"class Outer {\n" +
		"  private other.Inner other;\n" +
		"\n" +
		"  private Inner mine;\n" +
		"\n" +
		"  public static class Inner {\n" +
		"  }\n" +
		"}\n"
	if diff := cmp.Diff(want, file.String()); diff != "" {
		t.Errorf("rendered file mismatch (-want +got):\n%s", diff)
	}
}

func TestSamePackageTypesAreNotImported(t *testing.T) {
	t.Parallel()

	taco := ClassBuilder("Taco").
		AddFieldOf(ClassOf("java.util", "List"), "toppings", Private).
		AddFieldOf(ClassOf("com.squareup.tacos", "Seasoning"), "seasoning", Private).
		Build()
	file := FileBuilder("com.squareup.tacos", taco).Build()

	want := "" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"import java.util.List;\n" +
		"\n" +
		"class Taco {\n" +
		"  private List toppings;\n" +
		"\n" +
		"  private Seasoning seasoning;\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestDefaultPackage(t *testing.T) {
	t.Parallel()

	file := FileBuilder("", ClassBuilder("Test").
		AddFieldOf(ClassOf("", "Helper"), "helper", Private).
		Build()).Build()

	want := "" +
		"class Test {\n" +
		"  private Helper helper;\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestSkipJavaLangImports(t *testing.T) {
	t.Parallel()

	taco := ClassBuilder("Taco").
		AddFieldOf(ClassOf("java.lang", "String"), "name").
		Build()

	imported := FileBuilder("com.squareup.tacos", taco).Build()
	require.Equal(t, ""+
		"package com.squareup.tacos;\n"+
		"\n"+
		"import java.lang.String;\n"+
		"\n"+
		"class Taco {\n"+
		"  String name;\n"+
		"}\n", imported.String())

	skipped := FileBuilder("com.squareup.tacos", taco).SkipJavaLangImports(true).Build()
	require.Equal(t, ""+
		"package com.squareup.tacos;\n"+
		"\n"+
		"class Taco {\n"+
		"  String name;\n"+
		"}\n", skipped.String())
}

func TestStaticImportCollapsesMemberAccess(t *testing.T) {
	t.Parallel()

	collections := ClassOf("java.util", "Collections")
	list := ClassOf("java.util", "List")
	util := ClassBuilder("Util").
		AddMethod(MethodBuilder("empty").AddModifiers(Public).Returns(list).
			AddStatement("return $T.emptyList()", collections).
			Build()).
		AddMethod(MethodBuilder("single").AddModifiers(Public).Returns(list).
			AddStatement("return $T.singletonList($S)", collections, "taco").
			Build()).
		Build()

	file := FileBuilder("com.squareup.tacos", util).
		AddStaticImport(collections, "emptyList").
		Build()

	// emptyList is statically imported, so the type prefix is dropped.
	// singletonList is not, so its access keeps the (shortened) type.
	want := "" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"import static java.util.Collections.emptyList;\n" +
		"\n" +
		"import java.util.Collections;\n" +
		"import java.util.List;\n" +
		"\n" +
		"class Util {\n" +
		"  public List empty() {\n" +
		"    return emptyList();\n" +
		"  }\n" +
		"\n" +
		"  public List single() {\n" +
		"    return Collections.singletonList(\"taco\");\n" +
		"  }\n" +
		"}\n"
	if diff := cmp.Diff(want, file.String()); diff != "" {
		t.Errorf("rendered file mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticImportWildcard(t *testing.T) {
	t.Parallel()

	collections := ClassOf("java.util", "Collections")
	list := ClassOf("java.util", "List")
	util := ClassBuilder("Util").
		AddMethod(MethodBuilder("single").AddModifiers(Public).Returns(list).
			AddStatement("return $T.singletonList($S)", collections, "taco").
			Build()).
		Build()

	file := FileBuilder("com.squareup.tacos", util).
		AddStaticImport(collections, "*").
		Build()

	want := "" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"import static java.util.Collections.*;\n" +
		"\n" +
		"import java.util.List;\n" +
		"\n" +
		"class Util {\n" +
		"  public List single() {\n" +
		"    return singletonList(\"taco\");\n" +
		"  }\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestFileComment(t *testing.T) {
	t.Parallel()

	file := FileBuilder("com.squareup.tacos", ClassBuilder("Taco").Build()).
		AddFileComment("Generated $L, do not edit", "2026-01-02").
		Build()

	want := "" +
		"// Generated 2026-01-02, do not edit\n" +
		"package com.squareup.tacos;\n" +
		"\n" +
		"class Taco {\n" +
		"}\n"
	require.Equal(t, want, file.String())
}

func TestTabIndent(t *testing.T) {
	t.Parallel()

	test := ClassBuilder("Test").
		AddFieldOf(ClassOf("java.util", "Date"), "madeFreshDate").
		AddMethod(MethodBuilder("main").AddModifiers(Public, Static).
			AddParameterOf(ArrayOf(ClassOf("java.lang", "String")), "args").
			AddCode("$T.out.println($S);\n", ClassOf("java.lang", "System"), "Hello World!").
			Build()).
		Build()
	file := FileBuilder("foo", test).Indent("\t").Build()

	want := "package foo;\n" +
		"\n" +
		"import java.lang.String;\n" +
		"import java.lang.System;\n" +
		"import java.util.Date;\n" +
		"\n" +
		"class Test {\n" +
		"\tDate madeFreshDate;\n" +
		"\n" +
		"\tpublic static void main(String[] args) {\n" +
		"\t\tSystem.out.println(\"Hello World!\");\n" +
		"\t}\n" +
		"}\n"
	if diff := cmp.Diff(want, file.String()); diff != "" {
		t.Errorf("rendered file mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	t.Parallel()

	build := func() *JavaFile {
		return FileBuilder("com.squareup.tacos", ClassBuilder("Taco").
			AddFieldOf(ClassOf("java.util", "List"), "toppings", Private).
			Build()).Build()
	}

	file := build()
	require.Equal(t, file.String(), file.String())
	require.True(t, file.Equals(build()))

	var first, second strings.Builder
	require.NoError(t, file.WriteTo(&first))
	require.NoError(t, file.WriteTo(&second))
	require.Equal(t, first.String(), second.String())
}

func TestWriteToFs(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	file := FileBuilder("com.example.tacos", ClassBuilder("Taco").Build()).Build()

	require.NoError(t, file.WriteToFs(fs, "out"))

	path := filepath.Join("out", "com", "example", "tacos", "Taco.java")
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, file.String(), string(content))
}

func TestWriteToFsDefaultPackage(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	file := FileBuilder("", ClassBuilder("Test").Build()).Build()

	require.NoError(t, file.WriteToFs(fs, "out"))

	exists, err := afero.Exists(fs, filepath.Join("out", "Test.java"))
	require.NoError(t, err)
	require.True(t, exists)
}

func TestWriteToFsPathIsNotDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("out", "taco"), []byte{}, 0o644))

	file := FileBuilder("com.example", ClassBuilder("Taco").Build()).Build()
	err := file.WriteToFs(fs, filepath.Join("out", "taco"))
	require.ErrorContains(t, err, "exists but is not a directory")
}

func TestFileBuilderValidation(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { FileBuilder("com.example", nil) })
	require.Panics(t, func() {
		FileBuilder("com.example", AnonymousClassBuilder("").Build())
	})
	require.Panics(t, func() {
		FileBuilder("com.example", ClassBuilder("Taco").Build()).
			AddStaticImport(ClassOf("java.util", "Collections"))
	})
	require.Panics(t, func() {
		FileBuilder("com.example", ClassBuilder("Taco").Build()).
			AddStaticImport(ClassOf("java.util", "Collections"), "not a name")
	})
}
