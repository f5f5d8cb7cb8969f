package manifest

import (
	"fmt"
	"strings"

	"github.com/cmmoran/javagen/pkg/java"
)

var primitivesByName = map[string]java.TypeName{
	"void":    java.Void,
	"boolean": java.Boolean,
	"byte":    java.Byte,
	"short":   java.Short,
	"int":     java.Int,
	"long":    java.Long,
	"char":    java.Char,
	"float":   java.Float,
	"double":  java.Double,
}

// ParseTypeName converts a manifest type string into a TypeName. Supported
// forms: primitives, dotted class names, trailing "[]" arrays, and "<...>"
// generic instantiations. A bare capitalized identifier resolves to
// java.lang.
func ParseTypeName(s string) (java.TypeName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty type")
	}

	if strings.HasSuffix(s, "[]") {
		component, err := ParseTypeName(s[:len(s)-2])
		if err != nil {
			return nil, err
		}
		return arrayOf(component)
	}

	if open := strings.IndexByte(s, '<'); open >= 0 {
		if !strings.HasSuffix(s, ">") {
			return nil, fmt.Errorf("unbalanced type arguments in %q", s)
		}
		rawType, err := parseClassName(s[:open])
		if err != nil {
			return nil, err
		}
		argStrings, err := splitTypeArguments(s[open+1 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid type arguments in %q: %w", s, err)
		}
		args := make([]java.TypeName, len(argStrings))
		for i, argString := range argStrings {
			if args[i], err = ParseTypeName(argString); err != nil {
				return nil, err
			}
		}
		return parameterize(rawType, args)
	}

	if primitive, ok := primitivesByName[s]; ok {
		return primitive, nil
	}
	return parseClassName(s)
}

func arrayOf(component java.TypeName) (t java.TypeName, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("invalid array component %s: %v", component, r)
		}
	}()
	return java.ArrayOf(component), nil
}

func parameterize(rawType *java.ClassName, args []java.TypeName) (t java.TypeName, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = fmt.Errorf("invalid type arguments for %s: %v", rawType.CanonicalName(), r)
		}
	}()
	return java.ParameterizedType(rawType, args...), nil
}

func parseClassName(s string) (className *java.ClassName, err error) {
	defer func() {
		if r := recover(); r != nil {
			className = nil
			err = fmt.Errorf("invalid type %q: %v", s, r)
		}
	}()
	if !strings.Contains(s, ".") {
		return java.ClassOf("java.lang", s), nil
	}
	return java.BestGuess(s), nil
}

// splitTypeArguments splits on top-level commas, honoring nested angle
// brackets.
func splitTypeArguments(s string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced %q", s)
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced %q", s)
	}
	out = append(out, s[start:])
	for i := range out {
		if strings.TrimSpace(out[i]) == "" {
			return nil, fmt.Errorf("empty argument in %q", s)
		}
	}
	return out, nil
}
