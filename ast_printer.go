package rbsparse

import (
	"fmt"
	"strings"
)

// treePrinter accumulates an indented tree, four spaces per level, the same
// shape langlang's tree printer produces, minus the ANSI theming
// (there is no terminal-highlighting consumer for this grammar).
type treePrinter struct {
	pad    []string
	output strings.Builder
}

func (p *treePrinter) indent(s string) { p.pad = append(p.pad, s) }
func (p *treePrinter) unindent()       { p.pad = p.pad[:len(p.pad)-1] }

func (p *treePrinter) padding() {
	for _, s := range p.pad {
		p.output.WriteString(s)
	}
}

func (p *treePrinter) write(s string)   { p.output.WriteString(s) }
func (p *treePrinter) pwrite(s string)  { p.padding(); p.write(s) }
func (p *treePrinter) pwriteln(s string) {
	p.pwrite(s)
	p.output.WriteByte('\n')
}

// PrettyPrint renders n as an indented tree, used by the CLI's
// `sig`/`type` subcommands to show a tree's overall shape without
// printing every field.
func PrettyPrint(n Node) string {
	p := &treePrinter{}
	printNode(p, "", n)
	return p.output.String()
}

// printNode dispatches over the closed node set with a single type
// switch rather than a full Visitor implementation — the same
// tradeoff langlang's Inspect helper documents: simpler when the
// traversal doesn't need per-kind error propagation.
func printNode(p *treePrinter, label string, n Node) {
	if n == nil {
		p.pwriteln(prefixed(label, "<nil>"))
		return
	}
	switch v := n.(type) {
	case *BaseType:
		p.pwriteln(prefixed(label, baseKindNames[v.Kind]))
	case *LiteralType:
		p.pwriteln(prefixed(label, fmt.Sprintf("literal(%s)", v.Text)))
	case *VariableType:
		p.pwriteln(prefixed(label, "typevar"))
	case *ClassInstanceType:
		p.pwriteln(prefixed(label, "class-instance"))
		printChildren(p, v.Args)
	case *InterfaceType:
		p.pwriteln(prefixed(label, "interface-type"))
		printChildren(p, v.Args)
	case *AliasType:
		p.pwriteln(prefixed(label, "alias-type"))
		printChildren(p, v.Args)
	case *TupleType:
		p.pwriteln(prefixed(label, "tuple"))
		printChildren(p, v.Elements)
	case *RecordType:
		p.pwriteln(prefixed(label, "record"))
		p.indent("    ")
		for _, f := range v.Fields {
			printNode(p, "", f)
		}
		p.unindent()
	case *RecordField:
		p.pwriteln(prefixed(label, "field"))
		p.indent("    ")
		printNode(p, "value", v.Value)
		p.unindent()
	case *UnionType:
		p.pwriteln(prefixed(label, "union"))
		printChildren(p, v.Members)
	case *IntersectionType:
		p.pwriteln(prefixed(label, "intersection"))
		printChildren(p, v.Members)
	case *OptionalType:
		p.pwriteln(prefixed(label, "optional"))
		p.indent("    ")
		printNode(p, "", v.Inner)
		p.unindent()
	case *ProcType:
		p.pwriteln(prefixed(label, "proc"))
		p.indent("    ")
		printNode(p, "fn", v.Fn)
		p.unindent()
	case *FunctionType:
		p.pwriteln(prefixed(label, "function"))
		p.indent("    ")
		printNode(p, "return", v.Return)
		p.unindent()
	case *UntypedFunctionType:
		p.pwriteln(prefixed(label, "untyped-function"))
	case *MethodType:
		p.pwriteln(prefixed(label, "method-type"))
		p.indent("    ")
		printNode(p, "fn", v.Fn)
		p.unindent()
	case *Signature:
		p.pwriteln(prefixed(label, fmt.Sprintf("signature(%d decls)", len(v.Decls))))
	case *ClassDecl:
		p.pwriteln(prefixed(label, "class-decl"))
	case *ModuleDecl:
		p.pwriteln(prefixed(label, "module-decl"))
	case *InterfaceDecl:
		p.pwriteln(prefixed(label, "interface-decl"))
	default:
		p.pwriteln(prefixed(label, n.String()))
	}
}

func prefixed(label, s string) string {
	if label == "" {
		return s
	}
	return label + ": " + s
}

func printChildren(p *treePrinter, children []TypeNode) {
	p.indent("    ")
	for _, c := range children {
		printNode(p, "", c)
	}
	p.unindent()
}
