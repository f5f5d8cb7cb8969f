package java

import (
	"strings"
	"unicode"
)

// ClassName names a class or interface by package plus the chain of nesting
// simple names, outermost first. Values are immutable; equality and ordering
// are structural (by canonical name).
type ClassName struct {
	packageName string
	names       []string
	canonical   string
}

// ObjectClass is java.lang.Object, the implicit superclass.
var ObjectClass = ClassOf("java.lang", "Object")

// ClassOf returns the class name for the given package (possibly empty for
// the default package) and nesting chain of simple names.
func ClassOf(packageName string, simpleNames ...string) *ClassName {
	check(len(simpleNames) > 0, "simpleNames is empty")
	check(packageName == "" || isName(packageName), "not a valid package name: %q", packageName)
	for _, name := range simpleNames {
		check(isName(name) && !strings.Contains(name, "."), "not a valid simple name: %q", name)
	}
	names := make([]string, len(simpleNames))
	copy(names, simpleNames)
	return &ClassName{
		packageName: packageName,
		names:       names,
		canonical:   canonicalName(packageName, names),
	}
}

func canonicalName(packageName string, names []string) string {
	joined := strings.Join(names, ".")
	if packageName == "" {
		return joined
	}
	return packageName + "." + joined
}

// BestGuess parses a fully qualified canonical name using Java naming
// conventions: the package is the longest lower-case-led dotted prefix and
// every following upper-case-led part is a nested simple name.
func BestGuess(qualifiedName string) *ClassName {
	parts := strings.Split(qualifiedName, ".")
	p := 0
	for p < len(parts) && startsLower(parts[p]) {
		check(isName(parts[p]), "couldn't make a guess for %q", qualifiedName)
		p++
	}
	check(p < len(parts), "couldn't make a guess for %q", qualifiedName)
	packageName := strings.Join(parts[:p], ".")
	for _, part := range parts[p:] {
		check(isName(part) && startsUpper(part), "couldn't make a guess for %q", qualifiedName)
	}
	return ClassOf(packageName, parts[p:]...)
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// PackageName returns the package, or "" for the default package.
func (c *ClassName) PackageName() string { return c.packageName }

// SimpleName returns the innermost simple name.
func (c *ClassName) SimpleName() string { return c.names[len(c.names)-1] }

// SimpleNames returns a copy of the nesting chain, outermost first.
func (c *ClassName) SimpleNames() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// CanonicalName returns the fully qualified dotted name.
func (c *ClassName) CanonicalName() string { return c.canonical }

// EnclosingClassName returns the directly enclosing class, or nil for a
// top-level class.
func (c *ClassName) EnclosingClassName() *ClassName {
	if len(c.names) == 1 {
		return nil
	}
	return ClassOf(c.packageName, c.names[:len(c.names)-1]...)
}

// TopLevelClassName returns the outermost class in the nesting chain.
func (c *ClassName) TopLevelClassName() *ClassName {
	return ClassOf(c.packageName, c.names[0])
}

// NestedClass returns the class named name nested inside this one.
func (c *ClassName) NestedClass(name string) *ClassName {
	return ClassOf(c.packageName, append(c.SimpleNames(), name)...)
}

// PeerClass returns the class named name that shares this class's enclosing
// context: a sibling nested class, or a top-level class in the same package.
func (c *ClassName) PeerClass(name string) *ClassName {
	names := c.SimpleNames()
	names[len(names)-1] = name
	return ClassOf(c.packageName, names...)
}

// Equals reports structural equality.
func (c *ClassName) Equals(o *ClassName) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.canonical == o.canonical
}

// Compare orders class names by canonical name.
func (c *ClassName) Compare(o *ClassName) int {
	return strings.Compare(c.canonical, o.canonical)
}

func (c *ClassName) String() string { return c.canonical }

func (c *ClassName) emit(w *codeWriter) error {
	return w.emitAndIndent(w.lookupName(c))
}
