package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/curry/lang/parser"
)

const fmtSource = "val   id  =  fun x  ->  x ;\n(* combinators *)\ndef k = fun x y -> x ;\nval z = k id ;\n"

func TestNative_Run(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", fmtSource))

	if err := (&Native{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := "val id = fun x -> x ;\ndef k = fun x y -> x ;\nval z = k id ;\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestNative_SourceArgument(t *testing.T) {
	// The positional source replaces the global source files.
	global := writeSource(t, "global.curry", "val ignored = 1 ;")
	ctx, out := testContext(t, global)

	cmd := Native{SourceArg{Source: writeSource(t, "arg.curry", "val used = 2 ;")}}
	if err := cmd.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if out.String() != "val used = 2 ;\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestNative_SyntaxError(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "bad.curry", "val x = ;"))

	err := (&Native{}).Run(ctx)
	if !errors.Is(err, parser.ErrSyntax) {
		t.Errorf("Run() error = %v, want syntax error", err)
	}

	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestJSON_Run(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", "val n = 1.5 ;"))

	if err := (&JSON{Indent: 0}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := `[{"kind":"val","name":"n","value":{"kind":"number","value":1.5}}]` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestJSON_Indent(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", fmtSource))

	if err := (&JSON{Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "\n  {\n    \"kind\": \"val\"") {
		t.Errorf("output not indented:\n%s", out.String())
	}

	var nodes []map[string]any
	if err := json.Unmarshal(out.Bytes(), &nodes); err != nil {
		t.Fatal(err)
	}

	if len(nodes) != 3 {
		t.Fatalf("got %d bindings, want 3", len(nodes))
	}

	if nodes[1]["kind"] != "def" || nodes[1]["name"] != "k" {
		t.Errorf("second binding = %v", nodes[1])
	}
}

func TestYAML_Run(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", fmtSource))

	if err := (&YAML{Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var nodes []struct {
		Kind  string         `yaml:"kind"`
		Name  string         `yaml:"name"`
		Value map[string]any `yaml:"value"`
	}

	if err := yaml.Unmarshal(out.Bytes(), &nodes); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}

	if len(nodes) != 3 {
		t.Fatalf("got %d bindings, want 3", len(nodes))
	}

	if nodes[2].Name != "z" || nodes[2].Value["kind"] != "application" {
		t.Errorf("third binding = %+v", nodes[2])
	}
}

func TestTokens_Run(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", "val x = 1 ;\nval s = `a`"))

	if err := (&Tokens{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"1:1\t\"val\"",
		"1:5\tidentifier x",
		"1:7\t\"=\"",
		"1:9\tnumeric literal 1",
		"1:11\t\";\"",
		"2:1\t\"val\"",
		"2:5\tidentifier s",
		"2:7\t\"=\"",
		"2:9\tstring literal \"a\"",
	}, "\n") + "\n"

	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestTokens_NoSources(t *testing.T) {
	ctx, out := testContext(t)

	if err := (&Tokens{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestDeBruijn_Run(t *testing.T) {
	ctx, out := testContext(t, writeSource(t, "prog.curry", fmtSource))

	if err := (&DeBruijn{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := "id = λ.#0\nk = λ.λ.#1\nz = (#0 #1)\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}
