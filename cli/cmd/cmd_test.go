package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/curry/lang"
)

// writeSource writes content to a new file in a temporary directory and
// returns its path.
func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context reading the given sources and writing
// command output to the returned buffer.
func testContext(t *testing.T, sources ...string) (context.Context, *bytes.Buffer) {
	t.Helper()

	lang.ClearCache()

	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	ctx = WithOptions(ctx, lang.WithCache(false))

	if len(sources) > 0 {
		ctx = WithSourceFiles(ctx, sources)
	}

	return ctx, &out
}

func TestWithSourceFiles_Empty(t *testing.T) {
	for _, sources := range [][]string{nil, {}} {
		ctx := WithSourceFiles(context.Background(), sources)
		if src := sourceFilesFrom(ctx); src != nil {
			t.Errorf("WithSourceFiles(%v) stored %v, want nil", sources, src)
		}
	}
}

func TestWithSourceFiles_SingleFile(t *testing.T) {
	path := writeSource(t, "one.curry", "val x = 1 ;")

	src := sourceFilesFrom(WithSourceFiles(context.Background(), []string{path}))
	if src == nil {
		t.Fatal("WithSourceFiles returned nil for a readable file")
	}

	defer src.Close()

	if src.IsZero() {
		t.Error("IsZero() = true, want false")
	}

	if src.Stdin() != nil {
		t.Error("Stdin() != nil without \"-\"")
	}

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "val x = 1 ;" {
		t.Errorf("read %q", data)
	}
}

func TestWithSourceFiles_Order(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.curry")
	second := filepath.Join(dir, "second.curry")

	if err := os.WriteFile(first, []byte("first\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(second, []byte("second\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src := sourceFilesFrom(WithSourceFiles(context.Background(), []string{second, first}))
	defer src.Close()

	var buf bytes.Buffer
	if _, err := src.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "second\nfirst\n" {
		t.Errorf("WriteTo() wrote %q", buf.String())
	}
}

func TestWithSourceFiles_Dedupe(t *testing.T) {
	path := writeSource(t, "dup.curry", "dup\n")

	link := filepath.Join(t.TempDir(), "link.curry")
	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	src := sourceFilesFrom(WithSourceFiles(context.Background(), []string{path, link, path}))
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "dup\n" {
		t.Errorf("read %q, want a single copy", data)
	}
}

func TestWithSourceFiles_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.curry")

	if src := sourceFilesFrom(WithSourceFiles(context.Background(), []string{missing})); src != nil {
		t.Errorf("WithSourceFiles(missing) = %v, want nil", src)
	}
}

func TestOutputFrom_Default(t *testing.T) {
	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", w)
	}
}

func TestLoadProgram_NoSources(t *testing.T) {
	ctx, _ := testContext(t)

	prog, err := loadProgram(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(prog.Bindings) != 0 {
		t.Errorf("Bindings = %v, want none", prog.Bindings)
	}
}

func TestVersion(t *testing.T) {
	ctx, out := testContext(t)

	if err := (Version{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(out.Bytes(), []byte("curry version ")) {
		t.Errorf("output = %q", out.String())
	}
}
