package java

import "strings"

// FieldSpec is a field declaration: type, name, modifiers, and an optional
// initializer.
type FieldSpec struct {
	typeName    TypeName
	name        string
	javadoc     CodeBlock
	annotations []*AnnotationSpec
	modifiers   []Modifier
	initializer CodeBlock
}

// FieldBuilder starts a field of the given type and name.
func FieldBuilder(typeName TypeName, name string, modifiers ...Modifier) *FieldSpecBuilder {
	check(typeName != nil, "type == nil")
	check(isName(name), "not a valid name: %q", name)
	b := &FieldSpecBuilder{typeName: typeName, name: name}
	return b.AddModifiers(modifiers...)
}

// Type returns the field's type.
func (f *FieldSpec) Type() TypeName { return f.typeName }

// Name returns the field's name.
func (f *FieldSpec) Name() string { return f.name }

// HasModifier reports whether the field carries the given modifier.
func (f *FieldSpec) HasModifier(modifier Modifier) bool {
	return hasModifier(f.modifiers, modifier)
}

// Equals compares fields by their rendered text.
func (f *FieldSpec) Equals(o *FieldSpec) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.String() == o.String()
}

func (f *FieldSpec) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := f.emit(w, nil); err != nil {
		panic(err)
	}
	return out.String()
}

// ToBuilder returns a builder preloaded with this field's state.
func (f *FieldSpec) ToBuilder() *FieldSpecBuilder {
	b := &FieldSpecBuilder{typeName: f.typeName, name: f.name}
	b.javadoc.AddBlock(f.javadoc)
	b.annotations = append(b.annotations, f.annotations...)
	b.modifiers = append(b.modifiers, f.modifiers...)
	if !f.initializer.IsEmpty() {
		initializer := f.initializer
		b.initializer = &initializer
	}
	return b
}

func (f *FieldSpec) emit(w *codeWriter, implicitModifiers []Modifier) error {
	if err := w.emitJavadoc(f.javadoc); err != nil {
		return err
	}
	if err := w.emitAnnotations(f.annotations, false); err != nil {
		return err
	}
	if err := w.emitModifiers(f.modifiers, implicitModifiers); err != nil {
		return err
	}
	if err := w.emitFormat("$T $L", f.typeName, f.name); err != nil {
		return err
	}
	if !f.initializer.IsEmpty() {
		if err := w.emitAndIndent(" = "); err != nil {
			return err
		}
		if err := w.emitCode(f.initializer); err != nil {
			return err
		}
	}
	return w.emitAndIndent(";\n")
}

// FieldSpecBuilder accumulates a field declaration.
type FieldSpecBuilder struct {
	typeName    TypeName
	name        string
	javadoc     CodeBlockBuilder
	annotations []*AnnotationSpec
	modifiers   []Modifier
	initializer *CodeBlock
}

// AddJavadoc appends to the field's documentation block.
func (b *FieldSpecBuilder) AddJavadoc(format string, args ...any) *FieldSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation appends one annotation.
func (b *FieldSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *FieldSpecBuilder {
	check(annotation != nil, "annotation == nil")
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddAnnotationType appends a bare annotation of the given type.
func (b *FieldSpecBuilder) AddAnnotationType(annotation *ClassName) *FieldSpecBuilder {
	return b.AddAnnotation(AnnotationBuilder(annotation).Build())
}

// AddModifiers appends modifiers.
func (b *FieldSpecBuilder) AddModifiers(modifiers ...Modifier) *FieldSpecBuilder {
	for _, modifier := range modifiers {
		check(modifier != nil, "modifier == nil")
		b.modifiers = append(b.modifiers, modifier)
	}
	return b
}

// Initializer sets the initializer expression. Setting it twice panics.
func (b *FieldSpecBuilder) Initializer(format string, args ...any) *FieldSpecBuilder {
	return b.InitializerBlock(CodeBlockOf(format, args...))
}

// InitializerBlock sets a prebuilt initializer. Setting it twice panics.
func (b *FieldSpecBuilder) InitializerBlock(initializer CodeBlock) *FieldSpecBuilder {
	check(b.initializer == nil, "initializer was already set")
	b.initializer = &initializer
	return b
}

// Build finalizes the field.
func (b *FieldSpecBuilder) Build() *FieldSpec {
	spec := &FieldSpec{
		typeName:    b.typeName,
		name:        b.name,
		javadoc:     b.javadoc.Build(),
		annotations: append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:   dedupeModifiers(b.modifiers),
	}
	if b.initializer != nil {
		spec.initializer = *b.initializer
	}
	return spec
}
