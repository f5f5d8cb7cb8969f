package java

import (
	"fmt"
	"strings"
	"unicode"
)

// check panics with a formatted message when cond is false. Builder and
// writer invariants are programmer errors, not runtime errors, so they
// abort instead of returning.
func check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// javaKeywords includes reserved words and the literals that
// SourceVersion.isName rejects.
var javaKeywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {},
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

// isIdentifier reports whether s is a syntactically valid Java identifier.
// Keywords are identifiers here; use isName to also exclude them.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
		} else if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

// isName reports whether s is a valid qualified or simple name: every
// dot-separated part must be an identifier and not a keyword or literal.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !isIdentifier(part) {
			return false
		}
		if _, keyword := javaKeywords[part]; keyword {
			return false
		}
	}
	return true
}

// stringLiteral renders value as a double-quoted Java string literal.
// Embedded newlines split the literal into concatenated lines indented two
// units past the original position.
func stringLiteral(value, indent string) string {
	var result strings.Builder
	result.WriteByte('"')
	runes := []rune(value)
	for i, r := range runes {
		switch r {
		case '\'':
			result.WriteRune('\'')
		case '"':
			result.WriteString(`\"`)
		case '\b':
			result.WriteString(`\b`)
		case '\t':
			result.WriteString(`\t`)
		case '\n':
			result.WriteString(`\n`)
			if i+1 < len(runes) {
				result.WriteString("\"\n" + indent + indent + "+ \"")
			}
		case '\f':
			result.WriteString(`\f`)
		case '\r':
			result.WriteString(`\r`)
		case '\\':
			result.WriteString(`\\`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&result, `\u%04x`, r)
			} else {
				result.WriteRune(r)
			}
		}
	}
	result.WriteByte('"')
	return result.String()
}
