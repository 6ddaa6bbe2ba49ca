package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/ardnew/curry/lang/token"
)

// commandPrefix starts a REPL command line.
const commandPrefix = ":"

// commands are the available REPL commands, without the prefix.
var commands = []string{"help", "list", "clear", "quit"}

// isWordBoundary reports whether r separates words for completion. These
// are the runes that end an identifier in curry source.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '(', ')', '{', '}', '[', ']', '`':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// inString reports whether pos falls inside a string literal, counting
// unescaped backticks before it.
func inString(input string, pos int) bool {
	open := false

	for i := 0; i < pos && i < len(input); i++ {
		switch input[i] {
		case '\\':
			if open && i+1 < len(input) && input[i+1] == '`' {
				i++
			}
		case '`':
			open = !open
		}
	}

	return open
}

// candidates returns the completion candidates for input: command names
// when input is a command line, otherwise the session's bound names
// followed by the language keywords.
func candidates(input string, names []string) []string {
	if strings.HasPrefix(input, commandPrefix) {
		return lo.Map(commands, func(c string, _ int) string {
			return commandPrefix + c
		})
	}

	keywords := slices.Collect(token.Keywords())
	keywords = lo.Filter(keywords, func(k string, _ int) bool {
		return utf8.RuneCountInString(k) > 1 && k != "->"
	})

	return lo.Uniq(append(slices.Clone(names), keywords...))
}

// complete ranks candidates against the word at cursor. An empty word, or
// a cursor inside a string literal, has no matches.
func complete(input string, cursor int, names []string) (
	matches fuzzy.Matches,
	start, end int,
) {
	word, start, end := wordBounds(input, cursor)
	if word == "" || inString(input, start) {
		return nil, start, end
	}

	cands := candidates(input, names)
	if len(cands) == 0 {
		return nil, start, end
	}

	return fuzzy.Find(word, cands), start, end
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing)
// uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)
		entryWidth := lipgloss.Width(rendered)

		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}

// preview shortens the printed form of a value to fit a listing line.
func preview(s string) string {
	const limit = 40

	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit-3]) + "..."
}
