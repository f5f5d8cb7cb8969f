package java

import "strings"

// TypeName identifies a referenceable Java type: a primitive, a class or
// interface, an array, a parameterized type, a type variable, or a wildcard.
// Implementations are immutable and freely shareable.
type TypeName interface {
	// String returns the canonical source form, rendered without any
	// import or scope context.
	String() string

	emit(w *codeWriter) error
}

type primitiveType string

// The Java primitive types plus void.
var (
	Void    TypeName = primitiveType("void")
	Boolean TypeName = primitiveType("boolean")
	Byte    TypeName = primitiveType("byte")
	Short   TypeName = primitiveType("short")
	Int     TypeName = primitiveType("int")
	Long    TypeName = primitiveType("long")
	Char    TypeName = primitiveType("char")
	Float   TypeName = primitiveType("float")
	Double  TypeName = primitiveType("double")
)

func (p primitiveType) String() string { return string(p) }

func (p primitiveType) emit(w *codeWriter) error {
	return w.emitAndIndent(string(p))
}

// IsPrimitive reports whether t is one of the primitive types. void does not
// count: it cannot be boxed, declared as a field type, or used as a bound.
func IsPrimitive(t TypeName) bool {
	_, ok := t.(primitiveType)
	return ok && t != Void
}

var boxedTypes = map[TypeName]*ClassName{
	Void:    ClassOf("java.lang", "Void"),
	Boolean: ClassOf("java.lang", "Boolean"),
	Byte:    ClassOf("java.lang", "Byte"),
	Short:   ClassOf("java.lang", "Short"),
	Int:     ClassOf("java.lang", "Integer"),
	Long:    ClassOf("java.lang", "Long"),
	Char:    ClassOf("java.lang", "Character"),
	Float:   ClassOf("java.lang", "Float"),
	Double:  ClassOf("java.lang", "Double"),
}

// Box returns the java.lang wrapper for a primitive or void type, and t
// itself for everything else.
func Box(t TypeName) TypeName {
	if boxed, ok := boxedTypes[t]; ok {
		return boxed
	}
	return t
}

// Unbox returns the primitive counterpart of a java.lang wrapper class.
// The second result is false when t has no primitive counterpart.
func Unbox(t TypeName) (TypeName, bool) {
	if _, ok := t.(primitiveType); ok {
		return t, true
	}
	c, ok := t.(*ClassName)
	if !ok {
		return t, false
	}
	for primitive, boxed := range boxedTypes {
		if boxed.Equals(c) {
			return primitive, true
		}
	}
	return t, false
}

// ArrayTypeName is an array of some component type.
type ArrayTypeName struct {
	componentType TypeName
}

// ArrayOf returns the array type with the given component type.
func ArrayOf(componentType TypeName) *ArrayTypeName {
	check(componentType != nil, "componentType == nil")
	check(componentType != Void, "array of void")
	return &ArrayTypeName{componentType: componentType}
}

// ComponentType returns the element type of the array.
func (a *ArrayTypeName) ComponentType() TypeName { return a.componentType }

func (a *ArrayTypeName) String() string { return typeNameString(a) }

func (a *ArrayTypeName) emit(w *codeWriter) error {
	if err := a.componentType.emit(w); err != nil {
		return err
	}
	return w.emitAndIndent("[]")
}

// ParameterizedTypeName is a generic instantiation such as List<String>.
type ParameterizedTypeName struct {
	rawType       *ClassName
	typeArguments []TypeName
}

// ParameterizedType instantiates rawType with at least one type argument.
func ParameterizedType(rawType *ClassName, typeArguments ...TypeName) *ParameterizedTypeName {
	check(rawType != nil, "rawType == nil")
	check(len(typeArguments) > 0, "no type arguments: %s", rawType.CanonicalName())
	for _, arg := range typeArguments {
		check(arg != nil, "typeArgument == nil")
		check(!IsPrimitive(arg) && arg != Void, "invalid type parameter: %s", arg)
	}
	args := make([]TypeName, len(typeArguments))
	copy(args, typeArguments)
	return &ParameterizedTypeName{rawType: rawType, typeArguments: args}
}

// RawType returns the uninstantiated class name.
func (p *ParameterizedTypeName) RawType() *ClassName { return p.rawType }

// TypeArguments returns a copy of the type argument list.
func (p *ParameterizedTypeName) TypeArguments() []TypeName {
	out := make([]TypeName, len(p.typeArguments))
	copy(out, p.typeArguments)
	return out
}

func (p *ParameterizedTypeName) String() string { return typeNameString(p) }

func (p *ParameterizedTypeName) emit(w *codeWriter) error {
	if err := p.rawType.emit(w); err != nil {
		return err
	}
	if err := w.emitAndIndent("<"); err != nil {
		return err
	}
	for i, arg := range p.typeArguments {
		if i > 0 {
			if err := w.emitAndIndent(", "); err != nil {
				return err
			}
		}
		if err := arg.emit(w); err != nil {
			return err
		}
	}
	return w.emitAndIndent(">")
}

// TypeVariableName is a declared type variable, optionally bounded.
type TypeVariableName struct {
	name   string
	bounds []TypeName
}

// TypeVariable returns a type variable named name with the given bounds.
// Bounds are emitted only where the variable is declared.
func TypeVariable(name string, bounds ...TypeName) *TypeVariableName {
	check(isName(name), "not a valid type variable name: %q", name)
	for _, bound := range bounds {
		check(bound != nil, "bound == nil")
		check(!IsPrimitive(bound) && bound != Void, "invalid bound: %s", bound)
	}
	copied := make([]TypeName, len(bounds))
	copy(copied, bounds)
	return &TypeVariableName{name: name, bounds: copied}
}

// Name returns the variable's name.
func (t *TypeVariableName) Name() string { return t.name }

// Bounds returns a copy of the declared bounds.
func (t *TypeVariableName) Bounds() []TypeName {
	out := make([]TypeName, len(t.bounds))
	copy(out, t.bounds)
	return out
}

func (t *TypeVariableName) String() string { return t.name }

func (t *TypeVariableName) emit(w *codeWriter) error {
	return w.emitAndIndent(t.name)
}

// WildcardTypeName is an unknown type bounded from above or below.
type WildcardTypeName struct {
	upperBounds []TypeName
	lowerBounds []TypeName
}

// SubtypeOf returns "? extends upperBound", or the unbounded wildcard "?"
// when upperBound is java.lang.Object.
func SubtypeOf(upperBound TypeName) *WildcardTypeName {
	check(upperBound != nil, "upperBound == nil")
	return &WildcardTypeName{upperBounds: []TypeName{upperBound}}
}

// SupertypeOf returns "? super lowerBound".
func SupertypeOf(lowerBound TypeName) *WildcardTypeName {
	check(lowerBound != nil, "lowerBound == nil")
	return &WildcardTypeName{
		upperBounds: []TypeName{ObjectClass},
		lowerBounds: []TypeName{lowerBound},
	}
}

func (t *WildcardTypeName) String() string { return typeNameString(t) }

func (t *WildcardTypeName) emit(w *codeWriter) error {
	if len(t.lowerBounds) == 1 {
		if err := w.emitAndIndent("? super "); err != nil {
			return err
		}
		return t.lowerBounds[0].emit(w)
	}
	if upper, ok := t.upperBounds[0].(*ClassName); ok && upper.Equals(ObjectClass) {
		return w.emitAndIndent("?")
	}
	if err := w.emitAndIndent("? extends "); err != nil {
		return err
	}
	return t.upperBounds[0].emit(w)
}

// typeNameString renders t with no package or import context.
func typeNameString(t TypeName) string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := t.emit(w); err != nil {
		panic(err)
	}
	return out.String()
}
