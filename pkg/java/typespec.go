package java

import "strings"

// typeKind tags a TypeSpec as a class, interface, enum, or annotation type,
// and carries the modifier sets each kind implies on its members.
type typeKind struct {
	keyword                 string
	implicitFieldModifiers  []Modifier
	implicitMethodModifiers []Modifier
	implicitTypeModifiers   []Modifier
	asMemberModifiers       []Modifier
}

var (
	kindClass = &typeKind{keyword: "class"}

	kindInterface = &typeKind{
		keyword:                 "interface",
		implicitFieldModifiers:  []Modifier{Public, Static, Final},
		implicitMethodModifiers: []Modifier{Public, Abstract},
		implicitTypeModifiers:   []Modifier{Public, Static},
		asMemberModifiers:       []Modifier{Static},
	}

	kindEnum = &typeKind{
		keyword:           "enum",
		asMemberModifiers: []Modifier{Static},
	}

	kindAnnotation = &typeKind{
		keyword:                 "@interface",
		implicitFieldModifiers:  []Modifier{Public, Static, Final},
		implicitMethodModifiers: []Modifier{Public, Abstract},
		implicitTypeModifiers:   []Modifier{Public, Static},
		asMemberModifiers:       []Modifier{Static},
	}
)

type enumConstant struct {
	name string
	spec *TypeSpec
}

// TypeSpec is a generated class, interface, enum, or annotation declaration.
// Finalized specs are deeply immutable and compare equal when they render to
// identical text, so they can be shared across parents and contexts.
type TypeSpec struct {
	kind                   *typeKind
	name                   string
	anonymousTypeArguments *CodeBlock
	javadoc                CodeBlock
	annotations            []*AnnotationSpec
	modifiers              []Modifier
	typeVariables          []*TypeVariableName
	superclass             TypeName
	superinterfaces        []TypeName
	enumConstants          []enumConstant
	fieldSpecs             []*FieldSpec
	staticBlock            CodeBlock
	initializerBlock       CodeBlock
	methodSpecs            []*MethodSpec
	typeSpecs              []*TypeSpec
}

// ClassBuilder starts a class declaration.
func ClassBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(kindClass, name, nil)
}

// InterfaceBuilder starts an interface declaration.
func InterfaceBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(kindInterface, name, nil)
}

// EnumBuilder starts an enum declaration. Build panics unless at least one
// constant is added.
func EnumBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(kindEnum, name, nil)
}

// AnnotationTypeBuilder starts an @interface declaration.
func AnnotationTypeBuilder(name string) *TypeSpecBuilder {
	return newTypeSpecBuilder(kindAnnotation, name, nil)
}

// AnonymousClassBuilder starts an anonymous class whose constructor receives
// the given arguments.
func AnonymousClassBuilder(typeArgumentsFormat string, args ...any) *TypeSpecBuilder {
	block := CodeBlockOf(typeArgumentsFormat, args...)
	return newTypeSpecBuilder(kindClass, "", &block)
}

func newTypeSpecBuilder(kind *typeKind, name string, anonymousTypeArguments *CodeBlock) *TypeSpecBuilder {
	check(name == "" || isName(name), "not a valid name: %q", name)
	return &TypeSpecBuilder{
		kind:                   kind,
		name:                   name,
		anonymousTypeArguments: anonymousTypeArguments,
		superclass:             ObjectClass,
	}
}

// Name returns the declared name, or "" for anonymous classes.
func (t *TypeSpec) Name() string { return t.name }

// HasModifier reports whether the type carries the given modifier.
func (t *TypeSpec) HasModifier(modifier Modifier) bool {
	return hasModifier(t.modifiers, modifier)
}

// Equals compares types by their rendered text.
func (t *TypeSpec) Equals(o *TypeSpec) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.String() == o.String()
}

func (t *TypeSpec) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := t.emit(w, "", nil); err != nil {
		panic(err)
	}
	return out.String()
}

// ToBuilder returns a builder preloaded with this type's state, so a
// finalized spec can be extended copy-on-write.
func (t *TypeSpec) ToBuilder() *TypeSpecBuilder {
	b := newTypeSpecBuilder(t.kind, t.name, t.anonymousTypeArguments)
	b.javadoc.AddBlock(t.javadoc)
	b.annotations = append(b.annotations, t.annotations...)
	b.modifiers = append(b.modifiers, t.modifiers...)
	b.typeVariables = append(b.typeVariables, t.typeVariables...)
	b.superclass = t.superclass
	b.superinterfaces = append(b.superinterfaces, t.superinterfaces...)
	b.enumConstants = append(b.enumConstants, t.enumConstants...)
	b.fieldSpecs = append(b.fieldSpecs, t.fieldSpecs...)
	b.staticBlock.AddBlock(t.staticBlock)
	b.initializerBlock.AddBlock(t.initializerBlock)
	b.methodSpecs = append(b.methodSpecs, t.methodSpecs...)
	b.typeSpecs = append(b.typeSpecs, t.typeSpecs...)
	return b
}

// emit renders this type. enumName is non-empty when the type is the body of
// the named enum constant; implicitModifiers come from the enclosing kind.
func (t *TypeSpec) emit(w *codeWriter, enumName string, implicitModifiers []Modifier) (err error) {
	// Nested types interrupt wrapped line indentation. Stash the current
	// wrapping state and put it back when this type is complete.
	previousStatementLine := w.statementLine
	w.statementLine = -1
	w.pushType(t)
	defer func() {
		w.popType()
		w.statementLine = previousStatementLine
	}()

	switch {
	case enumName != "":
		if err = w.emitJavadoc(t.javadoc); err != nil {
			return err
		}
		if err = w.emitAnnotations(t.annotations, false); err != nil {
			return err
		}
		if err = w.emitFormat("$L", enumName); err != nil {
			return err
		}
		if !t.anonymousTypeArguments.IsEmpty() {
			if err = w.emitAndIndent("("); err != nil {
				return err
			}
			if err = w.emitCode(*t.anonymousTypeArguments); err != nil {
				return err
			}
			if err = w.emitAndIndent(")"); err != nil {
				return err
			}
		}
		if len(t.fieldSpecs) == 0 && len(t.methodSpecs) == 0 && len(t.typeSpecs) == 0 {
			return nil // Avoid unnecessary braces "{}".
		}
		if err = w.emitAndIndent(" {\n"); err != nil {
			return err
		}

	case t.anonymousTypeArguments != nil:
		supertype := t.superclass
		if len(t.superinterfaces) > 0 {
			supertype = t.superinterfaces[0]
		}
		if err = w.emitFormat("new $T(", supertype); err != nil {
			return err
		}
		if err = w.emitCode(*t.anonymousTypeArguments); err != nil {
			return err
		}
		if err = w.emitAndIndent(") {\n"); err != nil {
			return err
		}

	default:
		if err = w.emitJavadoc(t.javadoc); err != nil {
			return err
		}
		if err = w.emitAnnotations(t.annotations, false); err != nil {
			return err
		}
		implicit := append(append([]Modifier(nil), implicitModifiers...), t.kind.asMemberModifiers...)
		if err = w.emitModifiers(t.modifiers, implicit); err != nil {
			return err
		}
		if err = w.emitFormat("$L $L", t.kind.keyword, t.name); err != nil {
			return err
		}
		if err = w.emitTypeVariables(t.typeVariables); err != nil {
			return err
		}

		var extendsTypes, implementsTypes []TypeName
		if t.kind == kindInterface {
			extendsTypes = t.superinterfaces
		} else {
			if !isObject(t.superclass) {
				extendsTypes = []TypeName{t.superclass}
			}
			implementsTypes = t.superinterfaces
		}

		if err = emitSupertypeList(w, "extends", extendsTypes); err != nil {
			return err
		}
		if err = emitSupertypeList(w, "implements", implementsTypes); err != nil {
			return err
		}

		if err = w.emitAndIndent(" {\n"); err != nil {
			return err
		}
	}

	w.pushIndent()
	firstMember := true

	for i, constant := range t.enumConstants {
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = constant.spec.emit(w, constant.name, nil); err != nil {
			return err
		}
		firstMember = false
		switch {
		case i < len(t.enumConstants)-1:
			err = w.emitAndIndent(",\n")
		case len(t.fieldSpecs) > 0 || len(t.methodSpecs) > 0 || len(t.typeSpecs) > 0:
			err = w.emitAndIndent(";\n")
		default:
			err = w.emitAndIndent("\n")
		}
		if err != nil {
			return err
		}
	}

	// Static fields.
	for _, fieldSpec := range t.fieldSpecs {
		if !fieldSpec.HasModifier(Static) {
			continue
		}
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = fieldSpec.emit(w, t.kind.implicitFieldModifiers); err != nil {
			return err
		}
		firstMember = false
	}

	if !t.staticBlock.IsEmpty() {
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = w.emitCode(t.staticBlock); err != nil {
			return err
		}
		firstMember = false
	}

	// Non-static fields.
	for _, fieldSpec := range t.fieldSpecs {
		if fieldSpec.HasModifier(Static) {
			continue
		}
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = fieldSpec.emit(w, t.kind.implicitFieldModifiers); err != nil {
			return err
		}
		firstMember = false
	}

	// Initializer block.
	if !t.initializerBlock.IsEmpty() {
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = w.emitCode(t.initializerBlock); err != nil {
			return err
		}
		firstMember = false
	}

	// Constructors.
	for _, methodSpec := range t.methodSpecs {
		if !methodSpec.IsConstructor() {
			continue
		}
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = methodSpec.emit(w, t.name, t.kind.implicitMethodModifiers); err != nil {
			return err
		}
		firstMember = false
	}

	// Methods, static and non-static.
	for _, methodSpec := range t.methodSpecs {
		if methodSpec.IsConstructor() {
			continue
		}
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = methodSpec.emit(w, t.name, t.kind.implicitMethodModifiers); err != nil {
			return err
		}
		firstMember = false
	}

	// Nested types.
	for _, typeSpec := range t.typeSpecs {
		if !firstMember {
			if err = w.emitAndIndent("\n"); err != nil {
				return err
			}
		}
		if err = typeSpec.emit(w, "", t.kind.implicitTypeModifiers); err != nil {
			return err
		}
		firstMember = false
	}

	w.popIndent()

	if err = w.emitAndIndent("}"); err != nil {
		return err
	}
	if enumName == "" && t.anonymousTypeArguments == nil {
		// A file-level type gets a trailing newline; value-position types
		// (enum bodies, anonymous classes) do not.
		return w.emitAndIndent("\n")
	}
	return nil
}

func emitSupertypeList(w *codeWriter, keyword string, types []TypeName) error {
	if len(types) == 0 {
		return nil
	}
	if err := w.emitAndIndent(" " + keyword); err != nil {
		return err
	}
	for i, typeName := range types {
		if i > 0 {
			if err := w.emitAndIndent(","); err != nil {
				return err
			}
		}
		if err := w.emitFormat(" $T", typeName); err != nil {
			return err
		}
	}
	return nil
}

func isObject(t TypeName) bool {
	c, ok := t.(*ClassName)
	return ok && c.Equals(ObjectClass)
}

// TypeSpecBuilder accumulates a type declaration and checks structural
// invariants at Build.
type TypeSpecBuilder struct {
	kind                   *typeKind
	name                   string
	anonymousTypeArguments *CodeBlock

	javadoc          CodeBlockBuilder
	annotations      []*AnnotationSpec
	modifiers        []Modifier
	typeVariables    []*TypeVariableName
	superclass       TypeName
	superclassSet    bool
	superinterfaces  []TypeName
	enumConstants    []enumConstant
	fieldSpecs       []*FieldSpec
	staticBlock      CodeBlockBuilder
	initializerBlock CodeBlockBuilder
	methodSpecs      []*MethodSpec
	typeSpecs        []*TypeSpec
}

// AddJavadoc appends to the type's documentation block.
func (b *TypeSpecBuilder) AddJavadoc(format string, args ...any) *TypeSpecBuilder {
	b.javadoc.Add(format, args...)
	return b
}

// AddAnnotation appends one annotation.
func (b *TypeSpecBuilder) AddAnnotation(annotation *AnnotationSpec) *TypeSpecBuilder {
	check(annotation != nil, "annotation == nil")
	b.annotations = append(b.annotations, annotation)
	return b
}

// AddAnnotationType appends a bare annotation of the given type.
func (b *TypeSpecBuilder) AddAnnotationType(annotation *ClassName) *TypeSpecBuilder {
	return b.AddAnnotation(AnnotationBuilder(annotation).Build())
}

// AddModifiers appends modifiers. Anonymous types cannot carry modifiers.
func (b *TypeSpecBuilder) AddModifiers(modifiers ...Modifier) *TypeSpecBuilder {
	check(b.anonymousTypeArguments == nil, "forbidden on anonymous types")
	for _, modifier := range modifiers {
		check(modifier != nil, "modifier == nil")
		b.modifiers = append(b.modifiers, modifier)
	}
	return b
}

// AddTypeVariable declares a type variable. Anonymous types cannot have any.
func (b *TypeSpecBuilder) AddTypeVariable(typeVariable *TypeVariableName) *TypeSpecBuilder {
	check(b.anonymousTypeArguments == nil, "forbidden on anonymous types")
	check(typeVariable != nil, "typeVariable == nil")
	b.typeVariables = append(b.typeVariables, typeVariable)
	return b
}

// Superclass sets the superclass. Setting it twice, or to a primitive,
// panics.
func (b *TypeSpecBuilder) Superclass(superclass TypeName) *TypeSpecBuilder {
	check(!b.superclassSet, "superclass already set to %s", b.superclass)
	check(!IsPrimitive(superclass) && superclass != Void, "superclass may not be a primitive")
	b.superclass = superclass
	b.superclassSet = true
	return b
}

// AddSuperinterface appends an implemented (or, for interfaces, extended)
// interface.
func (b *TypeSpecBuilder) AddSuperinterface(superinterface TypeName) *TypeSpecBuilder {
	check(superinterface != nil, "superinterface == nil")
	b.superinterfaces = append(b.superinterfaces, superinterface)
	return b
}

// AddEnumConstant adds a constant with an empty body.
func (b *TypeSpecBuilder) AddEnumConstant(name string) *TypeSpecBuilder {
	return b.AddEnumConstantWithSpec(name, AnonymousClassBuilder("").Build())
}

// AddEnumConstantWithSpec adds a constant whose body and constructor
// arguments come from an anonymous type spec.
func (b *TypeSpecBuilder) AddEnumConstantWithSpec(name string, typeSpec *TypeSpec) *TypeSpecBuilder {
	check(b.kind == kindEnum, "%s is not an enum", b.name)
	check(typeSpec.anonymousTypeArguments != nil, "enum constants must have anonymous type arguments")
	check(isName(name), "not a valid enum constant: %q", name)
	b.enumConstants = append(b.enumConstants, enumConstant{name: name, spec: typeSpec})
	return b
}

// AddField appends a field, enforcing the kind's field modifier rules.
func (b *TypeSpecBuilder) AddField(fieldSpec *FieldSpec) *TypeSpecBuilder {
	if b.kind == kindInterface || b.kind == kindAnnotation {
		requireExactlyOneOf(fieldSpec.modifiers, Public, Private)
		required := []Modifier{Static, Final}
		check(containsAllModifiers(fieldSpec.modifiers, required),
			"%s %s.%s requires modifiers %s", b.kind.keyword, b.name, fieldSpec.name,
			modifierNames(required))
	}
	b.fieldSpecs = append(b.fieldSpecs, fieldSpec)
	return b
}

// AddFieldOf appends a field of the given type and name.
func (b *TypeSpecBuilder) AddFieldOf(typeName TypeName, name string, modifiers ...Modifier) *TypeSpecBuilder {
	return b.AddField(FieldBuilder(typeName, name, modifiers...).Build())
}

// AddStaticBlock appends code to the static initializer.
func (b *TypeSpecBuilder) AddStaticBlock(block CodeBlock) *TypeSpecBuilder {
	b.staticBlock.BeginControlFlow("static").AddBlock(block).EndControlFlow()
	return b
}

// AddInitializerBlock appends an instance initializer. Only classes and
// enums may have one.
func (b *TypeSpecBuilder) AddInitializerBlock(block CodeBlock) *TypeSpecBuilder {
	check(b.kind == kindClass || b.kind == kindEnum,
		"%s can't have initializer blocks", b.kind.keyword)
	b.initializerBlock.Add("{\n").Indent().AddBlock(block).Unindent().Add("}\n")
	return b
}

// AddMethod appends a method, enforcing the kind's method modifier rules.
func (b *TypeSpecBuilder) AddMethod(methodSpec *MethodSpec) *TypeSpecBuilder {
	if b.kind == kindInterface {
		requireExactlyOneOf(methodSpec.modifiers, Abstract, Static, Default)
		requireExactlyOneOf(methodSpec.modifiers, Public, Private)
	} else if b.kind == kindAnnotation {
		check(len(methodSpec.modifiers) == len(b.kind.implicitMethodModifiers) &&
			containsAllModifiers(methodSpec.modifiers, b.kind.implicitMethodModifiers),
			"%s %s.%s requires modifiers %s", b.kind.keyword, b.name, methodSpec.name,
			modifierNames(b.kind.implicitMethodModifiers))
	}
	if b.kind != kindAnnotation {
		check(methodSpec.defaultValue == nil, "%s %s.%s cannot have a default value",
			b.kind.keyword, b.name, methodSpec.name)
	}
	if b.kind != kindInterface {
		check(!methodSpec.HasModifier(Default), "%s %s.%s cannot be default",
			b.kind.keyword, b.name, methodSpec.name)
	}
	b.methodSpecs = append(b.methodSpecs, methodSpec)
	return b
}

// AddType appends a nested type, which must carry the modifiers this kind
// makes implicit on nested types.
func (b *TypeSpecBuilder) AddType(typeSpec *TypeSpec) *TypeSpecBuilder {
	check(containsAllModifiers(typeSpec.modifiers, b.kind.implicitTypeModifiers),
		"%s %s.%s requires modifiers %s", b.kind.keyword, b.name, typeSpec.name,
		modifierNames(b.kind.implicitTypeModifiers))
	b.typeSpecs = append(b.typeSpecs, typeSpec)
	return b
}

// Build checks the remaining structural invariants and finalizes the type.
func (b *TypeSpecBuilder) Build() *TypeSpec {
	check(b.kind != kindEnum || len(b.enumConstants) > 0,
		"at least one enum constant is required for %s", b.name)

	isAbstract := hasModifier(b.modifiers, Abstract) || b.kind != kindClass
	for _, methodSpec := range b.methodSpecs {
		check(isAbstract || !methodSpec.HasModifier(Abstract),
			"non-abstract type %s cannot declare abstract method %s", b.name, methodSpec.name)
	}

	interestingSupertypeCount := len(b.superinterfaces)
	if !isObject(b.superclass) {
		interestingSupertypeCount++
	}
	check(b.anonymousTypeArguments == nil || interestingSupertypeCount <= 1,
		"anonymous type has too many supertypes")

	return &TypeSpec{
		kind:                   b.kind,
		name:                   b.name,
		anonymousTypeArguments: b.anonymousTypeArguments,
		javadoc:                b.javadoc.Build(),
		annotations:            append([]*AnnotationSpec(nil), b.annotations...),
		modifiers:              dedupeModifiers(b.modifiers),
		typeVariables:          append([]*TypeVariableName(nil), b.typeVariables...),
		superclass:             b.superclass,
		superinterfaces:        append([]TypeName(nil), b.superinterfaces...),
		enumConstants:          append([]enumConstant(nil), b.enumConstants...),
		fieldSpecs:             append([]*FieldSpec(nil), b.fieldSpecs...),
		staticBlock:            b.staticBlock.Build(),
		initializerBlock:       b.initializerBlock.Build(),
		methodSpecs:            append([]*MethodSpec(nil), b.methodSpecs...),
		typeSpecs:              append([]*TypeSpec(nil), b.typeSpecs...),
	}
}
