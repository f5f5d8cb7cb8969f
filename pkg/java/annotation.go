package java

import "strings"

// AnnotationSpec is one use of an annotation, with ordered named members.
type AnnotationSpec struct {
	typeName    TypeName
	memberNames []string
	members     map[string][]CodeBlock
}

// AnnotationBuilder starts an annotation on the given type.
func AnnotationBuilder(typeName *ClassName) *AnnotationSpecBuilder {
	check(typeName != nil, "type == nil")
	return &AnnotationSpecBuilder{
		typeName: typeName,
		members:  make(map[string][]CodeBlock),
	}
}

// Type returns the annotation's type.
func (a *AnnotationSpec) Type() TypeName { return a.typeName }

// Equals compares annotations by their rendered text.
func (a *AnnotationSpec) Equals(o *AnnotationSpec) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.String() == o.String()
}

func (a *AnnotationSpec) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := a.emit(w, true); err != nil {
		panic(err)
	}
	return out.String()
}

// ToBuilder returns a builder preloaded with this annotation's members.
func (a *AnnotationSpec) ToBuilder() *AnnotationSpecBuilder {
	builder := &AnnotationSpecBuilder{
		typeName: a.typeName,
		members:  make(map[string][]CodeBlock, len(a.members)),
	}
	builder.memberNames = append(builder.memberNames, a.memberNames...)
	for name, values := range a.members {
		builder.members[name] = append([]CodeBlock(nil), values...)
	}
	return builder
}

func (a *AnnotationSpec) emit(w *codeWriter, inline bool) error {
	whitespace := "\n"
	memberSeparator := ",\n"
	if inline {
		whitespace = ""
		memberSeparator = ", "
	}
	switch {
	case len(a.members) == 0:
		// @Singleton
		return w.emitFormat("@$T", a.typeName)
	case len(a.members) == 1 && len(a.members["value"]) > 0:
		// @Named("foo")
		if err := w.emitFormat("@$T(", a.typeName); err != nil {
			return err
		}
		if err := a.emitValues(w, whitespace, memberSeparator, a.members["value"]); err != nil {
			return err
		}
		return w.emitAndIndent(")")
	default:
		// Inline: @Column(name = "updated_at", nullable = false)
		// Not inline, one member per line.
		if err := w.emitFormat("@$T("+whitespace, a.typeName); err != nil {
			return err
		}
		w.indentLevels(2)
		for i, name := range a.memberNames {
			if i > 0 {
				if err := w.emitAndIndent(memberSeparator); err != nil {
					return err
				}
			}
			if err := w.emitFormat("$L = ", name); err != nil {
				return err
			}
			if err := a.emitValues(w, whitespace, memberSeparator, a.members[name]); err != nil {
				return err
			}
		}
		w.unindentLevels(2)
		return w.emitAndIndent(whitespace + ")")
	}
}

func (a *AnnotationSpec) emitValues(w *codeWriter, whitespace, memberSeparator string, values []CodeBlock) error {
	if len(values) == 1 {
		w.indentLevels(2)
		err := w.emitCode(values[0])
		w.unindentLevels(2)
		return err
	}
	if err := w.emitAndIndent("{" + whitespace); err != nil {
		return err
	}
	w.indentLevels(2)
	for i, value := range values {
		if i > 0 {
			if err := w.emitAndIndent(memberSeparator); err != nil {
				return err
			}
		}
		if err := w.emitCode(value); err != nil {
			return err
		}
	}
	w.unindentLevels(2)
	return w.emitAndIndent(whitespace + "}")
}

// AnnotationSpecBuilder accumulates members; repeated names form arrays.
type AnnotationSpecBuilder struct {
	typeName    TypeName
	memberNames []string
	members     map[string][]CodeBlock
}

// AddMember appends one value to the named member.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...any) *AnnotationSpecBuilder {
	return b.AddMemberBlock(name, CodeBlockOf(format, args...))
}

// AddMemberBlock appends a prebuilt value to the named member.
func (b *AnnotationSpecBuilder) AddMemberBlock(name string, value CodeBlock) *AnnotationSpecBuilder {
	check(isName(name), "not a valid member name: %q", name)
	if _, exists := b.members[name]; !exists {
		b.memberNames = append(b.memberNames, name)
	}
	b.members[name] = append(b.members[name], value)
	return b
}

// Build finalizes the annotation.
func (b *AnnotationSpecBuilder) Build() *AnnotationSpec {
	spec := &AnnotationSpec{
		typeName:    b.typeName,
		memberNames: append([]string(nil), b.memberNames...),
		members:     make(map[string][]CodeBlock, len(b.members)),
	}
	for name, values := range b.members {
		spec.members[name] = append([]CodeBlock(nil), values...)
	}
	return spec
}
