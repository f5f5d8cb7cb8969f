package java

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	t.Parallel()

	entry := ClassOf("java.util", "Map", "Entry")
	require.Equal(t, "java.util", entry.PackageName())
	require.Equal(t, "Entry", entry.SimpleName())
	require.Equal(t, []string{"Map", "Entry"}, entry.SimpleNames())
	require.Equal(t, "java.util.Map.Entry", entry.CanonicalName())
	require.Equal(t, "java.util.Map", entry.TopLevelClassName().CanonicalName())
	require.Equal(t, "java.util.Map", entry.EnclosingClassName().CanonicalName())
	require.Nil(t, entry.TopLevelClassName().EnclosingClassName())

	require.Equal(t, "java.util.Map.Entry.Key",
		entry.NestedClass("Key").CanonicalName())
	require.Equal(t, "java.util.Map.Node",
		entry.PeerClass("Node").CanonicalName())

	defaultPackage := ClassOf("", "Config")
	require.Equal(t, "Config", defaultPackage.CanonicalName())
}

func TestClassOfRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { ClassOf("java.util") })
	require.Panics(t, func() { ClassOf("java.util", "2Fast") })
	require.Panics(t, func() { ClassOf("java.util", "class") })
	require.Panics(t, func() { ClassOf("java.util", "Map.Entry") })
	require.Panics(t, func() { ClassOf("java..util", "Map") })
}

func TestClassNameEquality(t *testing.T) {
	t.Parallel()

	a := ClassOf("java.util", "Map", "Entry")
	b := ClassOf("java.util", "Map").NestedClass("Entry")
	require.True(t, a.Equals(b))
	require.Equal(t, 0, a.Compare(b))
	require.False(t, a.Equals(ClassOf("java.util", "Map")))
	require.Negative(t, ClassOf("java.util", "List").Compare(ClassOf("java.util", "Map")))
}

func TestBestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantPkg   string
		wantNames []string
		wantErr   bool
	}{
		{name: "top level", input: "java.lang.String", wantPkg: "java.lang", wantNames: []string{"String"}},
		{name: "nested", input: "java.util.Map.Entry", wantPkg: "java.util", wantNames: []string{"Map", "Entry"}},
		{name: "no package", input: "Outer.Inner", wantPkg: "", wantNames: []string{"Outer", "Inner"}},
		{name: "all lower case", input: "com.example.foo", wantErr: true},
		{name: "lower case after class", input: "com.example.Foo.bar", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.wantErr {
				require.Panics(t, func() { BestGuess(tt.input) })
				return
			}
			got := BestGuess(tt.input)
			require.Equal(t, tt.wantPkg, got.PackageName())
			require.Equal(t, tt.wantNames, got.SimpleNames())
		})
	}
}

func TestTypeNameStrings(t *testing.T) {
	t.Parallel()

	stringClass := ClassOf("java.lang", "String")
	tests := []struct {
		name string
		t    TypeName
		want string
	}{
		{name: "primitive", t: Int, want: "int"},
		{name: "void", t: Void, want: "void"},
		{name: "class", t: stringClass, want: "java.lang.String"},
		{name: "array", t: ArrayOf(stringClass), want: "java.lang.String[]"},
		{name: "array of array", t: ArrayOf(ArrayOf(Int)), want: "int[][]"},
		{
			name: "parameterized",
			t:    ParameterizedType(ClassOf("java.util", "Map"), stringClass, ClassOf("java.lang", "Integer")),
			want: "java.util.Map<java.lang.String, java.lang.Integer>",
		},
		{name: "type variable", t: TypeVariable("T"), want: "T"},
		{name: "unbounded wildcard", t: SubtypeOf(ObjectClass), want: "?"},
		{name: "upper bounded wildcard", t: SubtypeOf(ClassOf("java.lang", "Number")), want: "? extends java.lang.Number"},
		{name: "lower bounded wildcard", t: SupertypeOf(stringClass), want: "? super java.lang.String"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.t.String())
		})
	}
}

func TestParameterizedTypeRejectsPrimitives(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { ParameterizedType(ClassOf("java.util", "List")) })
	require.Panics(t, func() { ParameterizedType(ClassOf("java.util", "List"), Int) })
}

func TestBoxUnbox(t *testing.T) {
	t.Parallel()

	require.Equal(t, "java.lang.Integer", Box(Int).String())
	require.Equal(t, "java.lang.Void", Box(Void).String())
	stringClass := ClassOf("java.lang", "String")
	require.Equal(t, stringClass, Box(stringClass))

	primitive, ok := Unbox(ClassOf("java.lang", "Integer"))
	require.True(t, ok)
	require.Equal(t, Int, primitive)

	_, ok = Unbox(ClassOf("java.lang", "String"))
	require.False(t, ok)

	primitive, ok = Unbox(Long)
	require.True(t, ok)
	require.Equal(t, Long, primitive)
}

func TestIsPrimitive(t *testing.T) {
	t.Parallel()

	require.True(t, IsPrimitive(Int))
	require.False(t, IsPrimitive(Void))
	require.False(t, IsPrimitive(ObjectClass))
}
