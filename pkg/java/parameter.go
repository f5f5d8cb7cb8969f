package java

import "strings"

// ParameterSpec is a method or constructor parameter.
type ParameterSpec struct {
	name        string
	annotations []*AnnotationSpec
	modifiers   []Modifier
	typeName    TypeName
}

// ParameterBuilder starts a parameter of the given type and name. Only the
// final modifier is allowed on parameters.
func ParameterBuilder(typeName TypeName, name string, modifiers ...Modifier) *ParameterSpecBuilder {
	check(typeName != nil, "type == nil")
	check(isName(name), "not a valid name: %q", name)
	for _, modifier := range modifiers {
		check(modifier == Final, "unexpected parameter modifier: %s", modifier)
	}
	return &ParameterSpecBuilder{
		typeName:  typeName,
		name:      name,
		modifiers: dedupeModifiers(modifiers),
	}
}

// Parameter is shorthand for ParameterBuilder(...).Build().
func Parameter(typeName TypeName, name string, modifiers ...Modifier) *ParameterSpec {
	return ParameterBuilder(typeName, name, modifiers...).Build()
}

// Type returns the parameter's type.
func (p *ParameterSpec) Type() TypeName { return p.typeName }

// Name returns the parameter's name.
func (p *ParameterSpec) Name() string { return p.name }

// Equals compares parameters by their rendered text.
func (p *ParameterSpec) Equals(o *ParameterSpec) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.String() == o.String()
}

func (p *ParameterSpec) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := p.emit(w, false); err != nil {
		panic(err)
	}
	return out.String()
}

func (p *ParameterSpec) emit(w *codeWriter, varargs bool) error {
	if err := w.emitAnnotations(p.annotations, true); err != nil {
		return err
	}
	if err := w.emitModifiers(p.modifiers, nil); err != nil {
		return err
	}
	if varargs {
		array, ok := p.typeName.(*ArrayTypeName)
		check(ok, "varargs parameter %s is not an array", p.name)
		return w.emitFormat("$T... $L", array.componentType, p.name)
	}
	return w.emitFormat("$T $L", p.typeName, p.name)
}

// ParameterSpecBuilder accumulates a parameter.
type ParameterSpecBuilder struct {
	typeName    TypeName
	name        string
	annotations []*AnnotationSpec
	modifiers   []Modifier
}

// AddAnnotation appends one annotation.
func (b *ParameterSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *ParameterSpecBuilder {
	check(annotation != nil, "annotation == nil")
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddAnnotationType appends a bare annotation of the given type.
func (b *ParameterSpecBuilder) AddAnnotationType(annotation *ClassName) *ParameterSpecBuilder {
	return b.AddAnnotation(AnnotationBuilder(annotation).Build())
}

// Build finalizes the parameter.
func (b *ParameterSpecBuilder) Build() *ParameterSpec {
	return &ParameterSpec{
		name:        b.name,
		annotations: append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:   append([]Modifier(nil), b.modifiers...),
		typeName:    b.typeName,
	}
}
