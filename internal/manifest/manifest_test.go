package manifest

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/javagen/pkg/java"
)

func TestGenerateGolden(t *testing.T) {
	t.Parallel()

	archive, err := txtar.ParseFile(filepath.Join("testdata", "generate.txtar"))
	require.NoError(t, err)

	var m *Manifest
	golden := make(map[string]string)
	for _, f := range archive.Files {
		if f.Name == "manifest.yaml" {
			m, err = Parse(f.Data)
			require.NoError(t, err)
			continue
		}
		golden[f.Name] = string(f.Data)
	}
	require.NotNil(t, m, "archive must contain manifest.yaml")
	require.NotEmpty(t, golden)

	files, err := m.Files()
	require.NoError(t, err)
	require.Len(t, files, len(golden))

	fs := afero.NewMemMapFs()
	for _, file := range files {
		require.NoError(t, file.WriteToFs(fs, "."))
	}

	for name, want := range golden {
		got, err := afero.ReadFile(fs, name)
		require.NoError(t, err, "expected output file %s", name)
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestParseDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte("package: com.example\ntypes:\n  - name: Taco\n"))
	require.NoError(t, err)
	require.Equal(t, "  ", m.Indent)

	_, err = Parse([]byte("package: com.example\n"))
	require.ErrorContains(t, err, "no types")

	_, err = Parse([]byte(":::not yaml"))
	require.ErrorContains(t, err, "unmarshal manifest")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "read manifest")
}

func TestFilesReportsDeclarationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown kind",
			yaml:    "package: p.q\ntypes:\n  - name: Taco\n    kind: struct\n",
			wantErr: `unknown kind "struct"`,
		},
		{
			name:    "unknown modifier",
			yaml:    "package: p.q\ntypes:\n  - name: Taco\n    modifiers: [sealed]\n",
			wantErr: `unknown modifier "sealed"`,
		},
		{
			name:    "enum without constants",
			yaml:    "package: p.q\ntypes:\n  - name: Status\n    kind: enum\n",
			wantErr: "invalid declaration",
		},
		{
			name:    "bad field type",
			yaml:    "package: p.q\ntypes:\n  - name: Taco\n    fields:\n      - name: x\n        type: 123\n",
			wantErr: "field x",
		},
		{
			name:    "keyword as type name",
			yaml:    "package: p.q\ntypes:\n  - name: enum\n",
			wantErr: "invalid declaration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = m.Files()
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAccessorDerivation(t *testing.T) {
	t.Parallel()

	listOfString, err := ParseTypeName("java.util.List<String>")
	require.NoError(t, err)
	mapType, err := ParseTypeName("java.util.Map<String, String>")
	require.NoError(t, err)
	arrayType, err := ParseTypeName("String[]")
	require.NoError(t, err)

	tests := []struct {
		name       string
		fieldName  string
		typeName   java.TypeName
		wantGetter string
	}{
		{name: "scalar", fieldName: "id", typeName: java.Int, wantGetter: "getId"},
		{name: "collection pluralizes", fieldName: "tag", typeName: listOfString, wantGetter: "getTags"},
		{name: "already plural", fieldName: "entries", typeName: listOfString, wantGetter: "getEntries"},
		{name: "array pluralizes", fieldName: "alias", typeName: arrayType, wantGetter: "getAliases"},
		{name: "map is not a collection", fieldName: "index", typeName: mapType, wantGetter: "getIndex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			field := java.FieldBuilder(tt.typeName, tt.fieldName, java.Private).Build()
			getter := getterFor(field, tt.typeName)
			require.Equal(t, tt.wantGetter, getter.Name())
		})
	}
}

func TestFinalFieldsGetNoSetter(t *testing.T) {
	t.Parallel()

	yaml := "" +
		"package: com.example\n" +
		"types:\n" +
		"  - name: Point\n" +
		"    accessors: true\n" +
		"    fields:\n" +
		"      - name: x\n" +
		"        type: int\n" +
		"        modifiers: [private, final]\n" +
		"      - name: label\n" +
		"        type: String\n" +
		"        modifiers: [private]\n"

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	files, err := m.Files()
	require.NoError(t, err)
	require.Len(t, files, 1)

	rendered := files[0].String()
	require.Contains(t, rendered, "import java.lang.String;")
	require.Contains(t, rendered, "public int getX()")
	require.NotContains(t, rendered, "setX")
	require.Contains(t, rendered, "public void setLabel(String label)")
}

func TestFieldInitializerIsVerbatim(t *testing.T) {
	t.Parallel()

	yaml := "" +
		"package: com.example\n" +
		"types:\n" +
		"  - name: Config\n" +
		"    fields:\n" +
		"      - name: retries\n" +
		"        type: int\n" +
		"        modifiers: [private, static, final]\n" +
		"        value: \"3\"\n"

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	files, err := m.Files()
	require.NoError(t, err)

	require.Contains(t, files[0].String(), "private static final int retries = 3;")
}

func TestUtilityModifierIsAvailable(t *testing.T) {
	t.Parallel()

	yaml := "" +
		"package: com.example\n" +
		"types:\n" +
		"  - name: Dates\n" +
		"    modifiers: [public, final, utility]\n"

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	files, err := m.Files()
	require.NoError(t, err)

	require.Contains(t, files[0].String(), "public final utility class Dates {")
}
