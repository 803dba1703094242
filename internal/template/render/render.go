// Package render substitutes placeholders in scaffolding templates and
// computes where the editor cursor should land.
package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tacogips/csnew/internal/debug"
)

// Placeholder tokens recognised in templates.
const (
	TokenClassName = "${classname}"
	TokenNamespace = "${namespace}"
	TokenCursor    = "${cursor}"
)

// Position is a zero-based line/column pair. Column counts characters, not bytes.
type Position struct {
	Line   int
	Column int
}

// Rendered is the output of Render.
type Rendered struct {
	// Text is the final file content with the cursor token removed.
	Text string
	// Cursor is where the cursor token was before it was removed.
	Cursor Position
}

// Render substitutes the namespace and class name (first occurrence of each),
// records the position of the first cursor token and strips it.
// A template without a cursor token is an authoring error.
func Render(body, className, namespace string) (*Rendered, error) {
	text := strings.Replace(body, TokenNamespace, namespace, 1)
	text = strings.Replace(text, TokenClassName, className, 1)

	idx := strings.Index(text, TokenCursor)
	if idx < 0 {
		return nil, &RenderError{
			Type:    MissingCursor,
			Message: "template has no cursor token",
			Line:    -1,
			Token:   TokenCursor,
		}
	}

	pos := positionAt(text, idx)
	text = text[:idx] + text[idx+len(TokenCursor):]

	debug.Debug("[render] class=%s namespace=%s cursor=%d:%d size=%d",
		className, namespace, pos.Line, pos.Column, len(text))

	return &Rendered{Text: text, Cursor: pos}, nil
}

// positionAt converts a byte offset into a Position.
func positionAt(text string, offset int) Position {
	before := text[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Line:   strings.Count(before, "\n"),
		Column: utf8.RuneCountInString(before[lineStart:]),
	}
}

var tokenPattern = regexp.MustCompile(`\$\{[^}]*\}`)

// Check reports template authoring problems without rendering: a missing
// cursor token and any ${...} token that is not recognised.
func Check(body string) []error {
	var errs []error

	for _, loc := range tokenPattern.FindAllStringIndex(body, -1) {
		token := body[loc[0]:loc[1]]
		switch token {
		case TokenClassName, TokenNamespace, TokenCursor:
			continue
		}
		errs = append(errs, &RenderError{
			Type:    UnknownToken,
			Message: "unknown placeholder",
			Line:    positionAt(body, loc[0]).Line,
			Token:   token,
		})
	}

	if !strings.Contains(body, TokenCursor) {
		errs = append(errs, &RenderError{
			Type:    MissingCursor,
			Message: "template has no cursor token",
			Line:    -1,
			Token:   TokenCursor,
		})
	}

	return errs
}
