package java

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// JavaFile is a complete Java source file: one top-level type in a package.
type JavaFile struct {
	fileComment         CodeBlock
	packageName         string
	typeSpec            *TypeSpec
	skipJavaLangImports bool
	staticImports       []string
	indent              string
}

// FileBuilder starts a file holding typeSpec in packageName. An empty
// package name means the default package.
func FileBuilder(packageName string, typeSpec *TypeSpec) *JavaFileBuilder {
	check(typeSpec != nil, "typeSpec == nil")
	check(typeSpec.name != "", "file type must be named")
	check(packageName == "" || isName(packageName), "not a valid package name: %q", packageName)
	return &JavaFileBuilder{
		packageName:   packageName,
		typeSpec:      typeSpec,
		indent:        defaultIndent,
		staticImports: make(map[string]bool),
	}
}

// PackageName returns the file's package.
func (f *JavaFile) PackageName() string { return f.packageName }

// Type returns the file's top-level type.
func (f *JavaFile) Type() *TypeSpec { return f.typeSpec }

// WriteTo renders the file into out. Emission runs twice: a first pass into
// a discard sink collects which names had to be fully qualified, and the
// second pass re-renders with those names imported.
func (f *JavaFile) WriteTo(out io.Writer) error {
	importsCollector := newCodeWriter(io.Discard, f.indent, nil, f.staticImports)
	if err := f.emit(importsCollector); err != nil {
		return err
	}
	suggestedImports := importsCollector.suggestedImports()

	w := newCodeWriter(out, f.indent, suggestedImports, f.staticImports)
	return f.emit(w)
}

func (f *JavaFile) emit(w *codeWriter) error {
	w.pushPackage(f.packageName)
	defer w.popPackage()

	if !f.fileComment.IsEmpty() {
		if err := w.emitComment(f.fileComment); err != nil {
			return err
		}
	}

	if f.packageName != "" {
		if err := w.emitFormat("package $L;\n", f.packageName); err != nil {
			return err
		}
		if err := w.emitAndIndent("\n"); err != nil {
			return err
		}
	}

	if len(f.staticImports) > 0 {
		for _, signature := range f.staticImports {
			if err := w.emitFormat("import static $L;\n", signature); err != nil {
				return err
			}
		}
		if err := w.emitAndIndent("\n"); err != nil {
			return err
		}
	}

	importedTypesCount := 0
	for _, className := range sortedClassNames(w.importedTypes) {
		if f.skipJavaLangImports && className.PackageName() == "java.lang" {
			continue
		}
		if err := w.emitFormat("import $L;\n", className.CanonicalName()); err != nil {
			return err
		}
		importedTypesCount++
	}
	if importedTypesCount > 0 {
		if err := w.emitAndIndent("\n"); err != nil {
			return err
		}
	}

	return f.typeSpec.emit(w, "", nil)
}

// String renders the file to memory; structural faults panic, as they do
// during any emission.
func (f *JavaFile) String() string {
	var out strings.Builder
	if err := f.WriteTo(&out); err != nil {
		panic(err)
	}
	return out.String()
}

// Equals compares files by their rendered text.
func (f *JavaFile) Equals(o *JavaFile) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.String() == o.String()
}

// WriteToFs writes the file beneath directory on fsys, substituting package
// segments into the path and creating directories as needed.
func (f *JavaFile) WriteToFs(fsys afero.Fs, directory string) error {
	if info, err := fsys.Stat(directory); err == nil && !info.IsDir() {
		return fmt.Errorf("path %s exists but is not a directory", directory)
	}

	outputDirectory := directory
	if f.packageName != "" {
		outputDirectory = filepath.Join(
			append([]string{directory}, strings.Split(f.packageName, ".")...)...)
	}
	if err := fsys.MkdirAll(outputDirectory, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDirectory, f.typeSpec.name+".java")
	file, err := fsys.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := f.WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputPath, err)
	}
	return nil
}

// WriteToDir writes the file beneath directory on the host filesystem.
func (f *JavaFile) WriteToDir(directory string) error {
	return f.WriteToFs(afero.NewOsFs(), directory)
}

// JavaFileBuilder accumulates a source file.
type JavaFileBuilder struct {
	packageName         string
	typeSpec            *TypeSpec
	fileComment         CodeBlockBuilder
	skipJavaLangImports bool
	staticImports       map[string]bool
	indent              string
}

// AddFileComment appends to the comment emitted above the package clause.
func (b *JavaFileBuilder) AddFileComment(format string, args ...any) *JavaFileBuilder {
	b.fileComment.Add(format, args...)
	return b
}

// AddStaticImport registers members of className as statically imported.
// Use "*" for a wildcard import.
func (b *JavaFileBuilder) AddStaticImport(className *ClassName, names ...string) *JavaFileBuilder {
	check(className != nil, "className == nil")
	check(len(names) > 0, "names is empty")
	for _, name := range names {
		check(name == "*" || isName(name), "not a valid static import member: %q", name)
		b.staticImports[className.CanonicalName()+"."+name] = true
	}
	return b
}

// SkipJavaLangImports controls whether java.lang imports are elided. Types
// in java.lang still import when a name collision forces qualification.
func (b *JavaFileBuilder) SkipJavaLangImports(skip bool) *JavaFileBuilder {
	b.skipJavaLangImports = skip
	return b
}

// Indent sets the literal indent unit, e.g. four spaces or a tab.
func (b *JavaFileBuilder) Indent(indent string) *JavaFileBuilder {
	b.indent = indent
	return b
}

// Build finalizes the file.
func (b *JavaFileBuilder) Build() *JavaFile {
	staticImports := make([]string, 0, len(b.staticImports))
	for signature := range b.staticImports {
		staticImports = append(staticImports, signature)
	}
	sort.Strings(staticImports)
	return &JavaFile{
		fileComment:         b.fileComment.Build(),
		packageName:         b.packageName,
		typeSpec:            b.typeSpec,
		skipJavaLangImports: b.skipJavaLangImports,
		staticImports:       staticImports,
		indent:              b.indent,
	}
}
