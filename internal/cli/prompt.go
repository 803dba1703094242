package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/tacogips/csnew/internal/app"
)

// askOne is survey.AskOne; replaced in tests.
var askOne = survey.AskOne

// surveyPrompter asks for file names on the terminal.
type surveyPrompter struct{}

// Prompt shows a single-line input pre-filled with the default file name.
// Ctrl-C or Esc cancels.
func (surveyPrompter) Prompt(ctx context.Context, opts app.PromptOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", app.ErrCancelled
	}

	prompt := &survey.Input{
		Message: opts.Message,
		Default: opts.Default,
		Help:    promptHelp(opts),
	}

	var askOpts []survey.AskOpt
	if opts.Validate != nil {
		askOpts = append(askOpts, survey.WithValidator(filenameValidator(opts.Validate)))
	}

	var result string
	if err := askOne(prompt, &result, askOpts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", app.ErrCancelled
		}
		return "", err
	}
	return result, nil
}

// promptHelp builds the text shown for '?'.
func promptHelp(opts app.PromptOptions) string {
	help := opts.Placeholder
	if opts.Default != "" {
		runes := []rune(opts.Default)
		start, end := opts.Selection.Start, opts.Selection.End
		if start >= 0 && start <= end && end <= len(runes) && start < end {
			help += fmt.Sprintf(" (press enter to accept %q, or replace %q)", opts.Default, string(runes[start:end]))
		}
	}
	return help
}

// filenameValidator adapts an app validator to survey.
func filenameValidator(validate func(string) string) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if msg := validate(str); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
