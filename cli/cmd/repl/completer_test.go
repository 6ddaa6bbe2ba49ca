package repl

import (
	"slices"
	"testing"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after space", "f fo", 4, "fo", 2, 4},
		{"after paren", "(fun x -> fo", 12, "fo", 10, 12},
		{"before paren", "id(x)", 2, "id", 0, 2},
		{"arrow is a word", "fun x ->", 8, "->", 6, 8},
		{"empty at boundary", "f ", 2, "", 2, 2},
		{"mid word", "foobar", 3, "foobar", 0, 6},
		{"at start", "foo", 0, "foo", 0, 3},
		{"hyphenated", "log-level", 9, "log-level", 0, 9},
		{"semicolon inside word", "x;", 2, "x;", 0, 2},
		{"cursor past end", "ab", 10, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestInString(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  bool
	}{
		{"`abc", 2, true},
		{"`abc` d", 6, false},
		{"`a\\`b", 5, true},
		{"x", 1, false},
	}

	for _, tt := range tests {
		if got := inString(tt.input, tt.pos); got != tt.want {
			t.Errorf("inString(%q, %d) = %v, want %v", tt.input, tt.pos, got, tt.want)
		}
	}
}

func TestCandidates(t *testing.T) {
	got := candidates("fo", []string{"foo", "bar", "foo"})

	want := []string{"foo", "bar", "def", "val", "fun", "true", "false"}
	if !slices.Equal(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}

	got = candidates(":he", []string{"foo"})
	if !slices.Equal(got, []string{":help", ":list", ":clear", ":quit"}) {
		t.Errorf("command candidates = %v", got)
	}
}

func TestComplete(t *testing.T) {
	names := []string{"flip", "const", "identity"}

	matches, start, end := complete("id fli", 6, names)
	if start != 3 || end != 6 {
		t.Errorf("bounds = %d, %d", start, end)
	}

	if len(matches) == 0 || matches[0].Str != "flip" {
		t.Errorf("matches = %v, want flip first", matches)
	}

	if m, _, _ := complete("`fl", 3, names); m != nil {
		t.Errorf("completed inside string: %v", m)
	}

	if m, _, _ := complete("id ", 3, names); m != nil {
		t.Errorf("completed empty word: %v", m)
	}

	m, _, _ := complete(":q", 2, names)
	if len(m) != 1 || m[0].Str != ":quit" {
		t.Errorf("command matches = %v", m)
	}
}

func TestPreview(t *testing.T) {
	short := "`abc`"
	if preview(short) != short {
		t.Errorf("preview(%q) = %q", short, preview(short))
	}

	long := "`" + string(make([]rune, 60)) + "`"
	if got := []rune(preview(long)); len(got) != 40 || string(got[37:]) != "..." {
		t.Errorf("preview of long value = %q", string(got))
	}
}
