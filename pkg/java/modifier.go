package java

import (
	"sort"
	"strings"
	"sync"
)

// Modifier is an open, keyword-like qualifier on a declaration. The canonical
// Java modifiers are predefined singletons; CustomModifier interns additional
// families. Because every Modifier value is a singleton, callers and the
// writer compare modifiers by identity.
type Modifier interface {
	// Name returns the canonical upper-case name, e.g. "PUBLIC".
	Name() string
	// String returns the keyword as emitted, e.g. "public".
	String() string

	family() string
	rank() int
}

type keywordModifier struct {
	name    string
	ordinal int
}

func (m *keywordModifier) Name() string   { return m.name }
func (m *keywordModifier) String() string { return strings.ToLower(m.name) }
func (m *keywordModifier) family() string { return "" }
func (m *keywordModifier) rank() int      { return m.ordinal }

// Canonical modifiers in their fixed emission order.
var (
	Public       Modifier = &keywordModifier{"PUBLIC", 0}
	Protected    Modifier = &keywordModifier{"PROTECTED", 1}
	Private      Modifier = &keywordModifier{"PRIVATE", 2}
	Abstract     Modifier = &keywordModifier{"ABSTRACT", 3}
	Default      Modifier = &keywordModifier{"DEFAULT", 4}
	Static       Modifier = &keywordModifier{"STATIC", 5}
	Final        Modifier = &keywordModifier{"FINAL", 6}
	Transient    Modifier = &keywordModifier{"TRANSIENT", 7}
	Volatile     Modifier = &keywordModifier{"VOLATILE", 8}
	Synchronized Modifier = &keywordModifier{"SYNCHRONIZED", 9}
	Native       Modifier = &keywordModifier{"NATIVE", 10}
	Strictfp     Modifier = &keywordModifier{"STRICTFP", 11}
)

type customModifier struct {
	fam  string
	name string
}

func (m *customModifier) Name() string   { return m.name }
func (m *customModifier) String() string { return strings.ToLower(m.name) }
func (m *customModifier) family() string { return m.fam }
func (m *customModifier) rank() int      { return -1 }

var (
	customModifiersMu sync.Mutex
	customModifiers   = map[[2]string]*customModifier{}
)

// CustomModifier returns the singleton modifier for the given family and
// name, creating it on first use. The same (family, name) pair always yields
// the identical value, so identity comparison stays valid for custom
// modifiers too.
func CustomModifier(family, name string) Modifier {
	check(isIdentifier(family), "not a valid modifier family: %q", family)
	check(isIdentifier(name), "not a valid modifier name: %q", name)
	key := [2]string{family, strings.ToUpper(name)}

	customModifiersMu.Lock()
	defer customModifiersMu.Unlock()
	if m, ok := customModifiers[key]; ok {
		return m
	}
	m := &customModifier{fam: family, name: key[1]}
	customModifiers[key] = m
	return m
}

// Utility marks a type as a non-instantiable holder of static members.
var Utility = CustomModifier("cascade", "UTILITY")

// modifierLess orders canonical modifiers first in their fixed order, then
// custom modifiers by family and name.
func modifierLess(a, b Modifier) bool {
	ar, br := a.rank(), b.rank()
	switch {
	case ar >= 0 && br >= 0:
		return ar < br
	case ar >= 0:
		return true
	case br >= 0:
		return false
	case a.family() != b.family():
		return a.family() < b.family()
	default:
		return a.Name() < b.Name()
	}
}

// sortedModifiers returns a defensive, deterministically ordered copy.
func sortedModifiers(modifiers []Modifier) []Modifier {
	out := make([]Modifier, len(modifiers))
	copy(out, modifiers)
	sort.SliceStable(out, func(i, j int) bool { return modifierLess(out[i], out[j]) })
	return out
}

func hasModifier(modifiers []Modifier, m Modifier) bool {
	for _, candidate := range modifiers {
		if candidate == m {
			return true
		}
	}
	return false
}

func containsAllModifiers(modifiers []Modifier, required []Modifier) bool {
	for _, m := range required {
		if !hasModifier(modifiers, m) {
			return false
		}
	}
	return true
}

// requireExactlyOneOf enforces kind-dependent modifier rules at build time.
func requireExactlyOneOf(modifiers []Modifier, mutuallyExclusive ...Modifier) {
	count := 0
	for _, m := range mutuallyExclusive {
		if hasModifier(modifiers, m) {
			count++
		}
	}
	check(count == 1, "modifiers %s must contain one of %s",
		modifierNames(modifiers), modifierNames(mutuallyExclusive))
}

func modifierNames(modifiers []Modifier) string {
	names := make([]string, len(modifiers))
	for i, m := range modifiers {
		names[i] = m.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// dedupeModifiers drops repeated singletons, keeping first occurrences.
func dedupeModifiers(modifiers []Modifier) []Modifier {
	out := make([]Modifier, 0, len(modifiers))
	for _, m := range modifiers {
		if !hasModifier(out, m) {
			out = append(out, m)
		}
	}
	return out
}
