package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"github.com/ardnew/curry/lang/ast"
)

// node is the encoded form of a binding or expression.
type node struct {
	Kind       string   `json:"kind"                 yaml:"kind"`
	Name       string   `json:"name,omitempty"       yaml:"name,omitempty"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Value      any      `json:"value,omitempty"      yaml:"value,omitempty"`
	Body       *node    `json:"body,omitempty"       yaml:"body,omitempty"`
	Function   *node    `json:"function,omitempty"   yaml:"function,omitempty"`
	Arguments  []*node  `json:"arguments,omitempty"  yaml:"arguments,omitempty"`
}

func encodeBinding(b ast.TopLevel) *node {
	name, value := b.Binding()

	return &node{Kind: b.Keyword(), Name: name.Name, Value: encodeExpression(value)}
}

func encodeExpression(expr ast.Expression) *node {
	switch e := expr.(type) {
	case ast.StringLiteral:
		return &node{Kind: "string", Value: e.Value}
	case ast.NumericLiteral:
		return &node{Kind: "number", Value: e.Value}
	case ast.BooleanLiteral:
		return &node{Kind: "boolean", Value: e.Value}
	case ast.Identifier:
		return &node{Kind: "identifier", Name: e.Name}
	case ast.Abstraction:
		return &node{
			Kind: "abstraction",
			Parameters: lo.Map(e.Parameters, func(p ast.Identifier, _ int) string {
				return p.Name
			}),
			Body: encodeExpression(e.Body),
		}
	case ast.Application:
		return &node{
			Kind:     "application",
			Function: encodeExpression(e.Abstraction),
			Arguments: lo.Map(e.Arguments, func(a ast.Expression, _ int) *node {
				return encodeExpression(a)
			}),
		}
	default:
		return &node{Kind: "unknown"}
	}
}

func (p *Program) nodes() []*node {
	return lo.Map(p.Syntax.Bindings, func(b ast.TopLevel, _ int) *node {
		return encodeBinding(b)
	})
}

// EncodeJSON writes the program's syntax tree as a JSON array of bindings.
// A positive indent pretty-prints with that many spaces per level.
func EncodeJSON(w io.Writer, prog *Program, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(prog.nodes(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(prog.nodes())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// EncodeYAML writes the program's syntax tree as a YAML sequence of
// bindings. A positive indent uses block style with that many spaces per
// level, otherwise flow style.
func EncodeYAML(ctx context.Context, w io.Writer, prog *Program, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, prog.nodes(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
