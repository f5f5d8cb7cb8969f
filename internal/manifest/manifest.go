package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"

	"github.com/cmmoran/javagen/pkg/java"
)

// Manifest describes a set of Java types to generate into one package.
type Manifest struct {
	Package      string    `yaml:"package" json:"package"`
	Indent       string    `yaml:"indent,omitempty" json:"indent,omitempty"`
	SkipJavaLang bool      `yaml:"skip_java_lang,omitempty" json:"skip_java_lang,omitempty"`
	FileComment  string    `yaml:"file_comment,omitempty" json:"file_comment,omitempty"`
	Types        []TypeDef `yaml:"types" json:"types"`
}

// TypeDef describes one top-level type.
type TypeDef struct {
	Name       string     `yaml:"name" json:"name"`
	Kind       string     `yaml:"kind,omitempty" json:"kind,omitempty"` // class, interface, enum, annotation
	Javadoc    string     `yaml:"javadoc,omitempty" json:"javadoc,omitempty"`
	Modifiers  []string   `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Extends    string     `yaml:"extends,omitempty" json:"extends,omitempty"`
	Implements []string   `yaml:"implements,omitempty" json:"implements,omitempty"`
	Fields     []FieldDef `yaml:"fields,omitempty" json:"fields,omitempty"`
	Constants  []string   `yaml:"constants,omitempty" json:"constants,omitempty"`
	Accessors  bool       `yaml:"accessors,omitempty" json:"accessors,omitempty"`
}

// FieldDef describes one field of a type.
type FieldDef struct {
	Name      string   `yaml:"name" json:"name"`
	Type      string   `yaml:"type" json:"type"`
	Javadoc   string   `yaml:"javadoc,omitempty" json:"javadoc,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Value     string   `yaml:"value,omitempty" json:"value,omitempty"` // initializer expression, emitted verbatim
}

// Load reads a manifest from the provided path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	if len(m.Types) == 0 {
		return nil, errors.New("manifest declares no types")
	}
	if m.Indent == "" {
		m.Indent = "  "
	}
	return &m, nil
}

// Files builds one JavaFile per declared type. Structural faults raised by
// the underlying builders surface as errors here, naming the offending type.
func (m *Manifest) Files() ([]*java.JavaFile, error) {
	files := make([]*java.JavaFile, 0, len(m.Types))
	for i := range m.Types {
		file, err := m.buildFile(&m.Types[i])
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", m.Types[i].Name, err)
		}
		files = append(files, file)
	}
	return files, nil
}

func (m *Manifest) buildFile(def *TypeDef) (file *java.JavaFile, err error) {
	// The java builders panic on structural misuse; at this boundary the
	// manifest is user input, so misuse becomes an error.
	defer func() {
		if r := recover(); r != nil {
			file = nil
			err = fmt.Errorf("invalid declaration: %v", r)
		}
	}()

	typeSpec, err := m.buildType(def)
	if err != nil {
		return nil, err
	}

	builder := java.FileBuilder(m.Package, typeSpec).
		Indent(m.Indent).
		SkipJavaLangImports(m.SkipJavaLang)
	if m.FileComment != "" {
		builder.AddFileComment("$L", m.FileComment)
	}
	return builder.Build(), nil
}

func (m *Manifest) buildType(def *TypeDef) (*java.TypeSpec, error) {
	var builder *java.TypeSpecBuilder
	switch def.Kind {
	case "", "class":
		builder = java.ClassBuilder(def.Name)
	case "interface":
		builder = java.InterfaceBuilder(def.Name)
	case "enum":
		builder = java.EnumBuilder(def.Name)
	case "annotation":
		builder = java.AnnotationTypeBuilder(def.Name)
	default:
		return nil, fmt.Errorf("unknown kind %q", def.Kind)
	}

	if def.Javadoc != "" {
		builder.AddJavadoc("$L\n", def.Javadoc)
	}

	modifiers, err := parseModifiers(def.Modifiers)
	if err != nil {
		return nil, err
	}
	builder.AddModifiers(modifiers...)

	if def.Extends != "" {
		superclass, err := ParseTypeName(def.Extends)
		if err != nil {
			return nil, err
		}
		builder.Superclass(superclass)
	}
	for _, name := range def.Implements {
		superinterface, err := ParseTypeName(name)
		if err != nil {
			return nil, err
		}
		builder.AddSuperinterface(superinterface)
	}

	for _, constant := range def.Constants {
		builder.AddEnumConstant(constant)
	}

	for i := range def.Fields {
		if err := m.addField(builder, &def.Fields[i], def.Accessors); err != nil {
			return nil, err
		}
	}

	return builder.Build(), nil
}

func (m *Manifest) addField(builder *java.TypeSpecBuilder, def *FieldDef, accessors bool) error {
	typeName, err := ParseTypeName(def.Type)
	if err != nil {
		return fmt.Errorf("field %s: %w", def.Name, err)
	}
	modifiers, err := parseModifiers(def.Modifiers)
	if err != nil {
		return fmt.Errorf("field %s: %w", def.Name, err)
	}

	field := java.FieldBuilder(typeName, def.Name, modifiers...)
	if def.Javadoc != "" {
		field.AddJavadoc("$L\n", def.Javadoc)
	}
	if def.Value != "" {
		field.Initializer("$L", def.Value)
	}
	spec := field.Build()
	builder.AddField(spec)

	if accessors {
		builder.AddMethod(getterFor(spec, typeName))
		if !spec.HasModifier(java.Final) {
			builder.AddMethod(setterFor(spec, typeName))
		}
	}
	return nil
}

// getterFor derives a getter. Collection-typed fields read better plural, so
// a field "tag" of List<String> yields getTags.
func getterFor(field *java.FieldSpec, typeName java.TypeName) *java.MethodSpec {
	property := upperFirst(field.Name())
	if isCollection(typeName) {
		property = inflection.Plural(property)
	}
	return java.MethodBuilder("get" + property).
		AddModifiers(java.Public).
		Returns(typeName).
		AddStatement("return this.$N", field).
		Build()
}

func setterFor(field *java.FieldSpec, typeName java.TypeName) *java.MethodSpec {
	return java.MethodBuilder("set" + upperFirst(field.Name())).
		AddModifiers(java.Public).
		AddParameterOf(typeName, field.Name()).
		AddStatement("this.$N = $N", field, field).
		Build()
}

var collectionRawTypes = map[string]bool{
	"java.lang.Iterable":   true,
	"java.util.Collection": true,
	"java.util.List":       true,
	"java.util.Set":        true,
}

func isCollection(t java.TypeName) bool {
	switch typed := t.(type) {
	case *java.ArrayTypeName:
		return true
	case *java.ParameterizedTypeName:
		return collectionRawTypes[typed.RawType().CanonicalName()]
	default:
		return false
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var modifiersByName = map[string]java.Modifier{
	"public":       java.Public,
	"protected":    java.Protected,
	"private":      java.Private,
	"abstract":     java.Abstract,
	"default":      java.Default,
	"static":       java.Static,
	"final":        java.Final,
	"transient":    java.Transient,
	"volatile":     java.Volatile,
	"synchronized": java.Synchronized,
	"native":       java.Native,
	"strictfp":     java.Strictfp,
	"utility":      java.Utility,
}

func parseModifiers(names []string) ([]java.Modifier, error) {
	out := make([]java.Modifier, 0, len(names))
	for _, name := range names {
		modifier, ok := modifiersByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", name)
		}
		out = append(out, modifier)
	}
	return out, nil
}
