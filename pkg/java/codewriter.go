package java

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const defaultIndent = "  "

// codeWriter converts a declaration tree to source text. It owns all of the
// per-emission state: the stack of enclosing types for name resolution, the
// indent level, statement wrapping, the one-slot deferred type reference for
// static-import shortening, and the import suggestions accumulated for a
// second pass.
type codeWriter struct {
	out    io.Writer
	indent string

	indentLevel int
	javadoc     bool
	comment     bool

	packageName string
	packageSet  bool

	typeSpecStack []*TypeSpec

	staticImports          map[string]bool
	staticImportClassNames map[string]bool

	importedTypes   map[string]*ClassName
	importableTypes map[string]*ClassName
	referencedNames map[string]bool

	trailingNewline bool

	// statementLine is the current output line within a statement: -1 when
	// not inside one, 0 on the statement's first line. The first wrapped
	// line raises the indent by two levels; the statement-end marker lowers
	// it again.
	statementLine int
}

func newCodeWriter(out io.Writer, indent string, importedTypes map[string]*ClassName, staticImports []string) *codeWriter {
	w := &codeWriter{
		out:                    out,
		indent:                 indent,
		staticImports:          make(map[string]bool, len(staticImports)),
		staticImportClassNames: make(map[string]bool, len(staticImports)),
		importedTypes:          importedTypes,
		importableTypes:        make(map[string]*ClassName),
		referencedNames:        make(map[string]bool),
		statementLine:          -1,
	}
	for _, signature := range staticImports {
		w.staticImports[signature] = true
		if dot := strings.LastIndex(signature, "."); dot >= 0 {
			w.staticImportClassNames[signature[:dot]] = true
		}
	}
	return w
}

func (w *codeWriter) pushIndent() { w.indentLevels(1) }

func (w *codeWriter) indentLevels(levels int) {
	w.indentLevel += levels
}

func (w *codeWriter) popIndent() { w.unindentLevels(1) }

func (w *codeWriter) unindentLevels(levels int) {
	check(w.indentLevel-levels >= 0, "cannot unindent %d from %d", levels, w.indentLevel)
	w.indentLevel -= levels
}

func (w *codeWriter) pushPackage(packageName string) {
	check(!w.packageSet, "package already set: %s", w.packageName)
	w.packageName = packageName
	w.packageSet = true
}

func (w *codeWriter) popPackage() {
	check(w.packageSet, "package not set")
	w.packageName = ""
	w.packageSet = false
}

func (w *codeWriter) pushType(typeSpec *TypeSpec) {
	w.typeSpecStack = append(w.typeSpecStack, typeSpec)
}

func (w *codeWriter) popType() {
	w.typeSpecStack = w.typeSpecStack[:len(w.typeSpecStack)-1]
}

func (w *codeWriter) emitComment(codeBlock CodeBlock) error {
	w.trailingNewline = true // Force the '//' prefix for the comment.
	w.comment = true
	defer func() { w.comment = false }()
	if err := w.emitCode(codeBlock); err != nil {
		return err
	}
	return w.emitAndIndent("\n")
}

func (w *codeWriter) emitJavadoc(javadoc CodeBlock) error {
	if javadoc.IsEmpty() {
		return nil
	}
	if err := w.emitAndIndent("/**\n"); err != nil {
		return err
	}
	w.javadoc = true
	err := w.emitCode(javadoc)
	w.javadoc = false
	if err != nil {
		return err
	}
	return w.emitAndIndent(" */\n")
}

func (w *codeWriter) emitAnnotations(annotations []*AnnotationSpec, inline bool) error {
	for _, annotation := range annotations {
		if err := annotation.emit(w, inline); err != nil {
			return err
		}
		separator := "\n"
		if inline {
			separator = " "
		}
		if err := w.emitAndIndent(separator); err != nil {
			return err
		}
	}
	return nil
}

// emitModifiers writes modifiers in canonical order, skipping any that are
// implicit in the current context.
func (w *codeWriter) emitModifiers(modifiers []Modifier, implicitModifiers []Modifier) error {
	if len(modifiers) == 0 {
		return nil
	}
	for _, modifier := range sortedModifiers(modifiers) {
		if hasModifier(implicitModifiers, modifier) {
			continue
		}
		if err := w.emitAndIndent(modifier.String()); err != nil {
			return err
		}
		if err := w.emitAndIndent(" "); err != nil {
			return err
		}
	}
	return nil
}

// emitTypeVariables writes type variables with their bounds. Bounds appear
// only here, at the declaration site.
func (w *codeWriter) emitTypeVariables(typeVariables []*TypeVariableName) error {
	if len(typeVariables) == 0 {
		return nil
	}
	if err := w.emitAndIndent("<"); err != nil {
		return err
	}
	for i, typeVariable := range typeVariables {
		if i > 0 {
			if err := w.emitAndIndent(", "); err != nil {
				return err
			}
		}
		if err := w.emitAndIndent(typeVariable.name); err != nil {
			return err
		}
		for boundIndex, bound := range typeVariable.bounds {
			keyword := " extends "
			if boundIndex > 0 {
				keyword = " & "
			}
			if err := w.emitAndIndent(keyword); err != nil {
				return err
			}
			if err := bound.emit(w); err != nil {
				return err
			}
		}
	}
	return w.emitAndIndent(">")
}

func (w *codeWriter) emitFormat(format string, args ...any) error {
	return w.emitCode(CodeBlockOf(format, args...))
}

// emitCode walks a block's parts in order. A $T naming a statically imported
// class followed by a literal member access is deferred one part so that the
// member lookup can decide whether the type prefix is dropped entirely.
func (w *codeWriter) emitCode(codeBlock CodeBlock) error {
	a := 0
	var deferredTypeName *ClassName // used by "import static" logic
	parts := codeBlock.formatParts
	for partIndex := 0; partIndex < len(parts); partIndex++ {
		part := parts[partIndex]
		switch part {
		case "$L":
			if err := w.emitLiteral(codeBlock.args[a]); err != nil {
				return err
			}
			a++

		case "$N":
			if err := w.emitAndIndent(codeBlock.args[a].(string)); err != nil {
				return err
			}
			a++

		case "$S":
			arg := codeBlock.args[a]
			a++
			// Emit nil as a literal null: no quotes.
			literal := "null"
			if arg != nil {
				literal = stringLiteral(arg.(string), w.indent)
			}
			if err := w.emitAndIndent(literal); err != nil {
				return err
			}

		case "$T":
			typeName := codeBlock.args[a].(TypeName)
			a++
			// Defer emission when the next part might collapse this
			// reference into a statically imported member access.
			if candidate, ok := typeName.(*ClassName); ok && partIndex+1 < len(parts) {
				if !strings.HasPrefix(parts[partIndex+1], "$") {
					if w.staticImportClassNames[candidate.canonical] {
						check(deferredTypeName == nil, "pending type for static import?!")
						deferredTypeName = candidate
						break
					}
				}
			}
			if err := typeName.emit(w); err != nil {
				return err
			}

		case "$$":
			if err := w.emitAndIndent("$"); err != nil {
				return err
			}

		case "$>":
			w.pushIndent()

		case "$<":
			w.popIndent()

		case "$[":
			check(w.statementLine == -1, "statement enter $[ followed by statement enter $[")
			w.statementLine = 0

		case "$]":
			check(w.statementLine != -1, "statement exit $] has no matching statement enter $[")
			if w.statementLine > 0 {
				w.unindentLevels(2) // End a multi-line statement.
			}
			w.statementLine = -1

		default:
			if deferredTypeName != nil {
				if strings.HasPrefix(part, ".") {
					ok, err := w.emitStaticImportMember(deferredTypeName.canonical, part)
					if err != nil {
						return err
					}
					if ok {
						// Static import hit: the member alone was emitted.
						deferredTypeName = nil
						break
					}
				}
				if err := deferredTypeName.emit(w); err != nil {
					return err
				}
				deferredTypeName = nil
			}
			if err := w.emitAndIndent(part); err != nil {
				return err
			}
		}
	}
	return nil
}

func extractMemberName(part string) string {
	runes := []rune(part)
	check(isIdentifierStart(runes[0]), "not an identifier: %s", part)
	for i := 1; i < len(runes); i++ {
		if !isIdentifierPart(runes[i]) {
			return string(runes[:i])
		}
	}
	return part
}

func (w *codeWriter) emitStaticImportMember(canonical, part string) (bool, error) {
	partWithoutLeadingDot := part[1:]
	if partWithoutLeadingDot == "" {
		return false, nil
	}
	first := []rune(partWithoutLeadingDot)[0]
	if !isIdentifierStart(first) {
		return false, nil
	}
	explicit := canonical + "." + extractMemberName(partWithoutLeadingDot)
	wildcard := canonical + ".*"
	if w.staticImports[explicit] || w.staticImports[wildcard] {
		if err := w.emitAndIndent(partWithoutLeadingDot); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (w *codeWriter) emitLiteral(o any) error {
	switch value := o.(type) {
	case *TypeSpec:
		return value.emit(w, "", nil)
	case *AnnotationSpec:
		return value.emit(w, true)
	case CodeBlock:
		return w.emitCode(value)
	default:
		return w.emitAndIndent(fmt.Sprint(o))
	}
}

// lookupName returns the best name for className in the current context,
// using scope and imports to find the shortest unambiguous form. Names
// visible through inheritance are not honored.
func (w *codeWriter) lookupName(className *ClassName) string {
	// Find the shortest suffix of className that resolves to className.
	// This uses both local nested type names and imports.
	nameResolved := false
	for c := className; c != nil; c = c.EnclosingClassName() {
		resolved := w.resolve(c.SimpleName())
		nameResolved = resolved != nil

		if resolved.Equals(c) {
			suffixOffset := len(c.names) - 1
			return strings.Join(className.names[suffixOffset:], ".")
		}
	}

	// The name resolved to something else; the fully qualified name is the
	// only safe spelling.
	if nameResolved {
		return className.canonical
	}

	// Same package: the dotted simple-name path suffices, and the name must
	// not be suggested as an import later.
	if w.packageName == className.packageName {
		w.referencedNames[className.TopLevelClassName().SimpleName()] = true
		return strings.Join(className.names, ".")
	}

	// Fully qualified, and a candidate import for a future pass. Javadoc
	// never gets optimized imports.
	if !w.javadoc {
		w.importableType(className)
	}
	return className.canonical
}

func (w *codeWriter) importableType(className *ClassName) {
	if className.packageName == "" {
		return
	}
	topLevelClassName := className.TopLevelClassName()
	// On collision, keep the first inserted.
	if _, exists := w.importableTypes[topLevelClassName.SimpleName()]; !exists {
		w.importableTypes[topLevelClassName.SimpleName()] = topLevelClassName
	}
}

// resolve returns the class referenced by simpleName in the current nesting
// context and imports, or nil.
func (w *codeWriter) resolve(simpleName string) *ClassName {
	// Match a child of the current (potentially nested) type.
	for i := len(w.typeSpecStack) - 1; i >= 0; i-- {
		for _, visibleChild := range w.typeSpecStack[i].typeSpecs {
			if visibleChild.name == simpleName {
				return w.stackClassName(i, simpleName)
			}
		}
	}

	// Match the top-level type.
	if len(w.typeSpecStack) > 0 && w.typeSpecStack[0].name == simpleName {
		return ClassOf(w.packageName, simpleName)
	}

	// Match an imported type.
	if importedType, ok := w.importedTypes[simpleName]; ok {
		return importedType
	}

	return nil
}

// stackClassName returns the class named simpleName when nested in the type
// at stackDepth.
func (w *codeWriter) stackClassName(stackDepth int, simpleName string) *ClassName {
	className := ClassOf(w.packageName, w.typeSpecStack[0].name)
	for i := 1; i <= stackDepth; i++ {
		className = className.NestedClass(w.typeSpecStack[i].name)
	}
	return className.NestedClass(simpleName)
}

// emitAndIndent writes s, inserting indentation lazily so lines never carry
// trailing whitespace. All output funnels through here.
func (w *codeWriter) emitAndIndent(s string) error {
	first := true
	for _, line := range strings.Split(s, "\n") {
		// Emit the newline for every line after the first. Blank lines in
		// javadoc and comments keep their prefix.
		if !first {
			if (w.javadoc || w.comment) && w.trailingNewline {
				if err := w.emitIndentation(); err != nil {
					return err
				}
				prefix := "//"
				if w.javadoc {
					prefix = " *"
				}
				if err := w.writeString(prefix); err != nil {
					return err
				}
			}
			if err := w.writeString("\n"); err != nil {
				return err
			}
			w.trailingNewline = true
			if w.statementLine != -1 {
				if w.statementLine == 0 {
					w.indentLevels(2) // Begin multiple-line statement.
				}
				w.statementLine++
			}
		}
		first = false

		if line == "" {
			continue // Don't indent empty lines.
		}

		if w.trailingNewline {
			if err := w.emitIndentation(); err != nil {
				return err
			}
			if w.javadoc {
				if err := w.writeString(" * "); err != nil {
					return err
				}
			} else if w.comment {
				if err := w.writeString("// "); err != nil {
					return err
				}
			}
		}

		if err := w.writeString(line); err != nil {
			return err
		}
		w.trailingNewline = false
	}
	return nil
}

func (w *codeWriter) emitIndentation() error {
	for i := 0; i < w.indentLevel; i++ {
		if err := w.writeString(w.indent); err != nil {
			return err
		}
	}
	return nil
}

func (w *codeWriter) writeString(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}

// suggestedImports returns the types that should have been imported: every
// type that was forced to render fully qualified, minus names already used
// via the same-package path. On simple-name collisions the first use wins.
func (w *codeWriter) suggestedImports() map[string]*ClassName {
	result := make(map[string]*ClassName, len(w.importableTypes))
	for simpleName, className := range w.importableTypes {
		if w.referencedNames[simpleName] {
			continue
		}
		result[simpleName] = className
	}
	return result
}

// sortedClassNames returns the values of m ordered by canonical name.
func sortedClassNames(m map[string]*ClassName) []*ClassName {
	out := make([]*ClassName, 0, len(m))
	for _, className := range m {
		out = append(out, className)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
