package java

import (
	"fmt"
	"strings"
)

// CodeBlock is an immutable fragment of Java code: literal text interleaved
// with typed placeholders bound to positional arguments.
//
// Placeholders:
//
//	$L  literal value (also splices CodeBlock, *TypeSpec, *AnnotationSpec)
//	$N  name of a string, *FieldSpec, *ParameterSpec, or *MethodSpec
//	$S  string, rendered as a double-quoted Java literal; nil renders null
//	$T  TypeName, shortened against scope and imports at emission time
//	$$  a literal dollar sign
//	$>  increase indentation
//	$<  decrease indentation
//	$[  begin a statement (wrapped lines indent two extra levels)
//	$]  end a statement
type CodeBlock struct {
	formatParts []string
	args        []any
}

// CodeBlockOf builds a block from a single format string.
func CodeBlockOf(format string, args ...any) CodeBlock {
	return NewCodeBlock().Add(format, args...).Build()
}

// IsEmpty reports whether the block contains no parts at all.
func (c CodeBlock) IsEmpty() bool { return len(c.formatParts) == 0 }

// Equals compares blocks by their rendered text.
func (c CodeBlock) Equals(o CodeBlock) bool { return c.String() == o.String() }

func (c CodeBlock) String() string {
	var out strings.Builder
	w := newCodeWriter(&out, defaultIndent, nil, nil)
	if err := w.emitCode(c); err != nil {
		panic(err)
	}
	return out.String()
}

// CodeBlockBuilder accumulates format parts and arguments. It is append-only
// and not safe for concurrent use.
type CodeBlockBuilder struct {
	formatParts []string
	args        []any
}

// NewCodeBlock returns an empty builder.
func NewCodeBlock() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

// Add appends a format string and its positional arguments. The number of
// argument-consuming placeholders must equal len(args); a mismatch or an
// unknown placeholder panics.
func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	consumed := 0
	for p := 0; p < len(format); {
		if format[p] != '$' {
			next := strings.IndexByte(format[p+1:], '$')
			if next < 0 {
				b.formatParts = append(b.formatParts, format[p:])
				break
			}
			b.formatParts = append(b.formatParts, format[p:p+1+next])
			p += 1 + next
			continue
		}
		check(p+1 < len(format), "dangling $ in format string %q", format)
		part := format[p : p+2]
		switch format[p+1] {
		case 'L':
			check(consumed < len(args), "expected more arguments for format string %q", format)
			b.args = append(b.args, args[consumed])
			consumed++
		case 'N':
			check(consumed < len(args), "expected more arguments for format string %q", format)
			b.args = append(b.args, argToName(args[consumed]))
			consumed++
		case 'S':
			check(consumed < len(args), "expected more arguments for format string %q", format)
			b.args = append(b.args, argToString(args[consumed]))
			consumed++
		case 'T':
			check(consumed < len(args), "expected more arguments for format string %q", format)
			b.args = append(b.args, argToType(args[consumed]))
			consumed++
		case '$', '>', '<', '[', ']':
			// no argument
		default:
			check(false, "invalid format string: %q", format)
		}
		b.formatParts = append(b.formatParts, part)
		p += 2
	}
	check(consumed == len(args), "expected %d args for format string %q, received %d",
		consumed, format, len(args))
	return b
}

func argToName(arg any) string {
	switch a := arg.(type) {
	case string:
		return a
	case *FieldSpec:
		return a.name
	case *ParameterSpec:
		return a.name
	case *MethodSpec:
		return a.name
	default:
		panic(fmt.Sprintf("expected name but was %v", arg))
	}
}

func argToString(arg any) any {
	if arg == nil {
		return nil
	}
	if s, ok := arg.(string); ok {
		return s
	}
	panic(fmt.Sprintf("expected string but was %v", arg))
}

func argToType(arg any) TypeName {
	t, ok := arg.(TypeName)
	check(ok, "expected type but was %v", arg)
	return t
}

// AddBlock splices another block's parts and arguments in place.
func (b *CodeBlockBuilder) AddBlock(block CodeBlock) *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, block.formatParts...)
	b.args = append(b.args, block.args...)
	return b
}

// AddStatement appends a full statement wrapped in statement markers and
// terminated with a semicolon and newline.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	b.Add("$[")
	b.Add(format, args...)
	b.Add(";\n$]")
	return b
}

// BeginControlFlow opens a brace-delimited flow, e.g. "if (foo)".
func (b *CodeBlockBuilder) BeginControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Add(controlFlow+" {\n", args...)
	return b.Indent()
}

// NextControlFlow continues a flow, e.g. "else if (bar)".
func (b *CodeBlockBuilder) NextControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Unindent()
	b.Add("} "+controlFlow+" {\n", args...)
	return b.Indent()
}

// EndControlFlow closes the current flow with a bare brace.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	b.Unindent()
	return b.Add("}\n")
}

// EndControlFlowFormat closes a do/while-style flow, e.g. "while (foo)".
func (b *CodeBlockBuilder) EndControlFlowFormat(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Unindent()
	return b.Add("} "+controlFlow+";\n", args...)
}

// Indent appends an indent marker.
func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, "$>")
	return b
}

// Unindent appends an unindent marker.
func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	b.formatParts = append(b.formatParts, "$<")
	return b
}

// IsEmpty reports whether nothing has been added yet.
func (b *CodeBlockBuilder) IsEmpty() bool { return len(b.formatParts) == 0 }

// Build finalizes the accumulated parts into an immutable block.
func (b *CodeBlockBuilder) Build() CodeBlock {
	formatParts := make([]string, len(b.formatParts))
	copy(formatParts, b.formatParts)
	args := make([]any, len(b.args))
	copy(args, b.args)
	return CodeBlock{formatParts: formatParts, args: args}
}
