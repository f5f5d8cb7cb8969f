package java

import "strings"

// constructorName is the sentinel method name for constructors.
const constructorName = "<init>"

// MethodSpec is a method or constructor declaration.
type MethodSpec struct {
	name          string
	javadoc       CodeBlock
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []*TypeVariableName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          CodeBlock
	defaultValue  *CodeBlock
}

// MethodBuilder starts a method with the given name. The return type
// defaults to void.
func MethodBuilder(name string) *MethodSpecBuilder {
	check(isName(name), "not a valid name: %q", name)
	return &MethodSpecBuilder{name: name, returnType: Void}
}

// ConstructorBuilder starts a constructor.
func ConstructorBuilder() *MethodSpecBuilder {
	return &MethodSpecBuilder{name: constructorName}
}

// Name returns the method's name.
func (m *MethodSpec) Name() string { return m.name }

// IsConstructor reports whether this spec is a constructor.
func (m *MethodSpec) IsConstructor() bool { return m.name == constructorName }

// HasModifier reports whether the method carries the given modifier.
func (m *MethodSpec) HasModifier(modifier Modifier) bool {
	return hasModifier(m.modifiers, modifier)
}

// Equals compares methods by their rendered text.
func (m *MethodSpec) Equals(o *MethodSpec) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.String() == o.String()
}

func (m *MethodSpec) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := m.emit(w, "Constructor", nil); err != nil {
		panic(err)
	}
	return out.String()
}

// ToBuilder returns a builder preloaded with this method's state.
func (m *MethodSpec) ToBuilder() *MethodSpecBuilder {
	b := &MethodSpecBuilder{name: m.name, returnType: m.returnType}
	b.javadoc.AddBlock(m.javadoc)
	b.annotations = append(b.annotations, m.annotations...)
	b.modifiers = append(b.modifiers, m.modifiers...)
	b.typeVariables = append(b.typeVariables, m.typeVariables...)
	b.parameters = append(b.parameters, m.parameters...)
	b.varargs = m.varargs
	b.exceptions = append(b.exceptions, m.exceptions...)
	b.code.AddBlock(m.code)
	if m.defaultValue != nil {
		defaultValue := *m.defaultValue
		b.defaultValue = &defaultValue
	}
	return b
}

func (m *MethodSpec) emit(w *codeWriter, enclosingName string, implicitModifiers []Modifier) error {
	if err := w.emitJavadoc(m.javadoc); err != nil {
		return err
	}
	if err := w.emitAnnotations(m.annotations, false); err != nil {
		return err
	}
	if err := w.emitModifiers(m.modifiers, implicitModifiers); err != nil {
		return err
	}

	if len(m.typeVariables) > 0 {
		if err := w.emitTypeVariables(m.typeVariables); err != nil {
			return err
		}
		if err := w.emitAndIndent(" "); err != nil {
			return err
		}
	}

	var err error
	if m.IsConstructor() {
		err = w.emitFormat("$L(", enclosingName)
	} else {
		err = w.emitFormat("$T $L(", m.returnType, m.name)
	}
	if err != nil {
		return err
	}

	for i, parameter := range m.parameters {
		if i > 0 {
			if err := w.emitAndIndent(", "); err != nil {
				return err
			}
		}
		lastParameter := i == len(m.parameters)-1
		if err := parameter.emit(w, lastParameter && m.varargs); err != nil {
			return err
		}
	}

	if err := w.emitAndIndent(")"); err != nil {
		return err
	}

	if m.defaultValue != nil && !m.defaultValue.IsEmpty() {
		if err := w.emitAndIndent(" default "); err != nil {
			return err
		}
		if err := w.emitCode(*m.defaultValue); err != nil {
			return err
		}
	}

	if len(m.exceptions) > 0 {
		if err := w.emitAndIndent(" throws"); err != nil {
			return err
		}
		for i, exception := range m.exceptions {
			if i > 0 {
				if err := w.emitAndIndent(","); err != nil {
					return err
				}
			}
			if err := w.emitFormat(" $T", exception); err != nil {
				return err
			}
		}
	}

	switch {
	case m.HasModifier(Abstract):
		return w.emitAndIndent(";\n")
	case m.HasModifier(Native):
		// Code is allowed to support stuff like GWT JSNI.
		if err := w.emitCode(m.code); err != nil {
			return err
		}
		return w.emitAndIndent(";\n")
	default:
		if err := w.emitAndIndent(" {\n"); err != nil {
			return err
		}
		w.pushIndent()
		if err := w.emitCode(m.code); err != nil {
			return err
		}
		w.popIndent()
		return w.emitAndIndent("}\n")
	}
}

// MethodSpecBuilder accumulates a method declaration.
type MethodSpecBuilder struct {
	name          string
	javadoc       CodeBlockBuilder
	annotations   []*AnnotationSpec
	modifiers     []Modifier
	typeVariables []*TypeVariableName
	returnType    TypeName
	parameters    []*ParameterSpec
	varargs       bool
	exceptions    []TypeName
	code          CodeBlockBuilder
	defaultValue  *CodeBlock
}

// AddJavadoc appends to the method's documentation block.
func (b *MethodSpecBuilder) AddJavadoc(format string, args ...any) *MethodSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation appends one annotation.
func (b *MethodSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *MethodSpecBuilder {
	check(annotation != nil, "annotation == nil")
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddAnnotationType appends a bare annotation of the given type.
func (b *MethodSpecBuilder) AddAnnotationType(annotation *ClassName) *MethodSpecBuilder {
	return b.AddAnnotation(AnnotationBuilder(annotation).Build())
}

// AddModifiers appends modifiers.
func (b *MethodSpecBuilder) AddModifiers(modifiers ...Modifier) *MethodSpecBuilder {
	for _, modifier := range modifiers {
		check(modifier != nil, "modifier == nil")
		b.modifiers = append(b.modifiers, modifier)
	}
	return b
}

// AddTypeVariable appends a declared type variable.
func (b *MethodSpecBuilder) AddTypeVariable(typeVariable *TypeVariableName) *MethodSpecBuilder {
	check(typeVariable != nil, "typeVariable == nil")
	b.typeVariables = append(b.typeVariables, typeVariable)
	return b
}

// Returns sets the return type. Constructors have none.
func (b *MethodSpecBuilder) Returns(returnType TypeName) *MethodSpecBuilder {
	check(b.name != constructorName, "constructor cannot have return type")
	check(returnType != nil, "returnType == nil")
	b.returnType = returnType
	return b
}

// AddParameter appends a prebuilt parameter.
func (b *MethodSpecBuilder) AddParameter(parameter *ParameterSpec) *MethodSpecBuilder {
	check(parameter != nil, "parameter == nil")
	b.parameters = append(b.parameters, parameter)
	return b
}

// AddParameterOf appends a parameter of the given type and name.
func (b *MethodSpecBuilder) AddParameterOf(typeName TypeName, name string, modifiers ...Modifier) *MethodSpecBuilder {
	return b.AddParameter(Parameter(typeName, name, modifiers...))
}

// Varargs marks the final parameter as a vararg; its type must be an array.
func (b *MethodSpecBuilder) Varargs() *MethodSpecBuilder {
	b.varargs = true
	return b
}

// AddException appends a thrown exception type.
func (b *MethodSpecBuilder) AddException(exception TypeName) *MethodSpecBuilder {
	check(exception != nil, "exception == nil")
	b.exceptions = append(b.exceptions, exception)
	return b
}

// AddCode appends body code.
func (b *MethodSpecBuilder) AddCode(format string, args ...any) *MethodSpecBuilder {
	b.code.Add(format, args...)
	return b
}

// AddCodeBlock appends a prebuilt body fragment.
func (b *MethodSpecBuilder) AddCodeBlock(block CodeBlock) *MethodSpecBuilder {
	b.code.AddBlock(block)
	return b
}

// AddStatement appends one statement to the body.
func (b *MethodSpecBuilder) AddStatement(format string, args ...any) *MethodSpecBuilder {
	b.code.AddStatement(format, args...)
	return b
}

// BeginControlFlow opens a brace-delimited flow in the body.
func (b *MethodSpecBuilder) BeginControlFlow(controlFlow string, args ...any) *MethodSpecBuilder {
	b.code.BeginControlFlow(controlFlow, args...)
	return b
}

// NextControlFlow continues the current flow.
func (b *MethodSpecBuilder) NextControlFlow(controlFlow string, args ...any) *MethodSpecBuilder {
	b.code.NextControlFlow(controlFlow, args...)
	return b
}

// EndControlFlow closes the current flow.
func (b *MethodSpecBuilder) EndControlFlow() *MethodSpecBuilder {
	b.code.EndControlFlow()
	return b
}

// DefaultValue sets the default value of an annotation member method.
// Setting it twice panics.
func (b *MethodSpecBuilder) DefaultValue(format string, args ...any) *MethodSpecBuilder {
	return b.DefaultValueBlock(CodeBlockOf(format, args...))
}

// DefaultValueBlock sets a prebuilt default value. Setting it twice panics.
func (b *MethodSpecBuilder) DefaultValueBlock(defaultValue CodeBlock) *MethodSpecBuilder {
	check(b.defaultValue == nil, "defaultValue was already set")
	b.defaultValue = &defaultValue
	return b
}

// Build finalizes the method.
func (b *MethodSpecBuilder) Build() *MethodSpec {
	code := b.code.Build()
	modifiers := dedupeModifiers(b.modifiers)
	check(code.IsEmpty() || !hasModifier(modifiers, Abstract),
		"abstract method %s cannot have code", b.name)
	if b.varargs {
		check(len(b.parameters) > 0, "varargs method %s has no parameters", b.name)
		_, lastIsArray := b.parameters[len(b.parameters)-1].typeName.(*ArrayTypeName)
		check(lastIsArray, "last parameter of varargs method %s must be an array", b.name)
	}
	spec := &MethodSpec{
		name:          b.name,
		javadoc:       b.javadoc.Build(),
		annotations:   append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:     modifiers,
		typeVariables: append([]*TypeVariableName(nil), b.typeVariables...),
		returnType:    b.returnType,
		parameters:    append([]*ParameterSpec(nil), b.parameters...),
		varargs:       b.varargs,
		exceptions:    append([]TypeName(nil), b.exceptions...),
		code:          code,
	}
	if b.defaultValue != nil {
		defaultValue := *b.defaultValue
		spec.defaultValue = &defaultValue
	}
	return spec
}
