package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/curry/cli/cmd"
	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/lang/eval"
	"github.com/ardnew/curry/pkg"
)

func TestMain(m *testing.M) {
	// Keep configuration and cache directories out of the user's home.
	dir, err := os.MkdirTemp("", "curry-cli-test-*")
	if err != nil {
		panic(err)
	}

	os.Setenv("HOME", dir)
	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// run executes the CLI with args and returns what the command wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	lang.ClearCache()

	var out bytes.Buffer

	ctx := cmd.WithOutput(context.Background(), &out)
	err := Run(ctx, func(code int) { t.Errorf("exit(%d)", code) }, args...)

	return out.String(), err
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.curry")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun(t *testing.T) {
	path := writeProgram(t, "val k = fun x y -> x ;\nval answer = k 42 `ignored` ;\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default command", []string{"-s", path}, "42\n"},
		{"named binding", []string{"-s", path, "eval", "k"}, "<closure/0>\n"},
		{"apply", []string{"-s", path, "eval", "k", "true", "false"}, "true\n"},
		{"expression", []string{"-s", path, "eval", "-e", "k answer 0"}, "42\n"},
		{"flags after command", []string{"eval", "answer", "-s", path}, "42\n"},
		{"no cache", []string{"--no-cache", "-s", path}, "42\n"},
		{"fmt", []string{"fmt", path}, "val k = fun x y -> x ;\nval answer = k 42 `ignored` ;\n"},
		{"debruijn", []string{"-s", path, "fmt", "debruijn"}, "k = λ.λ.#1\nanswer = ((#0 42) `ignored`)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Run(%v) error: %v", tt.args, err)
			}

			if got != tt.want {
				t.Errorf("Run(%v) output = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	got, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix([]byte(got), []byte("curry version ")) {
		t.Errorf("output = %q", got)
	}
}

func TestRun_MaxDepth(t *testing.T) {
	path := writeProgram(t, "val id = fun x -> x ;\n")

	_, err := run(t, "--max-depth", "1", "-s", path, "eval", "-e", "id (id 1)")
	if !errors.Is(err, eval.ErrFault) {
		t.Errorf("err = %v, want evaluation fault", err)
	}

	got, err := run(t, "--max-depth", "0", "-s", path, "eval", "-e", "id (id 1)")
	if err != nil || got != "1\n" {
		t.Errorf("unbounded: got %q, %v", got, err)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	conf := configFile(pkg.Extension)
	if filepath.Base(conf) != "config.curry" {
		t.Errorf("config file = %s", conf)
	}

	if err := os.WriteFile(conf, []byte("val max_depth = 1 ;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { os.Remove(conf) })

	path := writeProgram(t, "val id = fun x -> x ;\n")

	_, err := run(t, "-s", path, "eval", "-e", "id 1")
	if !errors.Is(err, eval.ErrFault) {
		t.Errorf("err = %v, want depth fault from config", err)
	}

	got, err := run(t, "--max-depth", "8", "-s", path, "eval", "-e", "id 1")
	if err != nil || got != "1\n" {
		t.Errorf("flag override: got %q, %v", got, err)
	}
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			"separate values",
			[]string{"--log-level", "debug", "--log-format", "text", "eval"},
			logConfig{Level: "debug", Format: "text", TimeLayout: "RFC3339", Pretty: true},
		},
		{
			"assigned values",
			[]string{"--log-level=warn", "--log-time-layout=Kitchen", "--log-caller"},
			logConfig{Level: "warn", Format: "json", TimeLayout: "Kitchen", Caller: true, Pretty: true},
		},
		{
			"negated",
			[]string{"--no-log-pretty", "--log-caller=false"},
			logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339"},
		},
		{
			"ignores others",
			[]string{"--source", "-", "--no-cache", "--log"},
			logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Level: "info", Format: "json", TimeLayout: "RFC3339", Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
