package ast

import "strings"

// TopLevel is a named binding at the top of a program.
type TopLevel interface {
	// Binding returns the bound name and the expression bound to it.
	Binding() (Identifier, Expression)
	// Keyword returns the reserved word that introduces the binding.
	Keyword() string
	String() string
}

// ValBinding is `val name = value ;`.
type ValBinding struct {
	Name  Identifier
	Value Expression
}

// DefBinding is `def name = value ;`.
type DefBinding struct {
	Name  Identifier
	Value Expression
}

func (b ValBinding) Binding() (Identifier, Expression) { return b.Name, b.Value }
func (b DefBinding) Binding() (Identifier, Expression) { return b.Name, b.Value }

func (ValBinding) Keyword() string { return "val" }
func (DefBinding) Keyword() string { return "def" }

func (b ValBinding) String() string { return format(b) }
func (b DefBinding) String() string { return format(b) }

func format(b TopLevel) string {
	name, value := b.Binding()

	return b.Keyword() + " " + name.Name + " = " + value.String() + " ;"
}

// Program is a sequence of top-level bindings. Each binding may refer to
// the names bound before it.
type Program struct {
	Bindings []TopLevel
}

// Names returns the bound names in program order, duplicates included.
func (p Program) Names() []string {
	names := make([]string, len(p.Bindings))
	for i, b := range p.Bindings {
		name, _ := b.Binding()
		names[i] = name.Name
	}

	return names
}

func (p Program) String() string {
	var sb strings.Builder

	for _, b := range p.Bindings {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
