package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/csnew/internal/app"
)

func stubAskOne(t *testing.T, fn func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error) {
	t.Helper()
	orig := askOne
	askOne = fn
	t.Cleanup(func() { askOne = orig })
}

func TestSurveyPrompter(t *testing.T) {
	opts := app.PromptOptions{
		Message:     "Please enter a name for your class",
		Placeholder: "Class name",
		Default:     "Models/Class.cs",
		Selection:   app.Selection{Start: 7, End: 15},
		Validate:    app.ValidateFilename,
	}

	t.Run("returns answer", func(t *testing.T) {
		var seen *survey.Input
		stubAskOne(t, func(p survey.Prompt, response interface{}, askOpts ...survey.AskOpt) error {
			seen = p.(*survey.Input)
			*(response.(*string)) = "Models/Order.cs"
			return nil
		})

		got, err := surveyPrompter{}.Prompt(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, "Models/Order.cs", got)
		require.NotNil(t, seen)
		assert.Equal(t, opts.Message, seen.Message)
		assert.Equal(t, opts.Default, seen.Default)
		assert.Contains(t, seen.Help, "Class name")
		assert.Contains(t, seen.Help, `"Class.cs"`)
	})

	t.Run("interrupt cancels", func(t *testing.T) {
		stubAskOne(t, func(p survey.Prompt, response interface{}, askOpts ...survey.AskOpt) error {
			return terminal.InterruptErr
		})

		_, err := surveyPrompter{}.Prompt(context.Background(), opts)
		assert.ErrorIs(t, err, app.ErrCancelled)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("not a terminal")
		stubAskOne(t, func(p survey.Prompt, response interface{}, askOpts ...survey.AskOpt) error {
			return boom
		})

		_, err := surveyPrompter{}.Prompt(context.Background(), opts)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context skips prompt", func(t *testing.T) {
		stubAskOne(t, func(p survey.Prompt, response interface{}, askOpts ...survey.AskOpt) error {
			t.Fatal("prompt must not be shown")
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := surveyPrompter{}.Prompt(ctx, opts)
		assert.ErrorIs(t, err, app.ErrCancelled)
	})
}

func TestFilenameValidator(t *testing.T) {
	v := filenameValidator(app.ValidateFilename)

	assert.NoError(t, v("Customer.cs"))
	assert.EqualError(t, v(""), app.MsgEmptyFilename)
	assert.EqualError(t, v("Customer"), app.MsgInvalidExtension)
	assert.EqualError(t, v(".cs"), app.MsgMissingStem)
	assert.Error(t, v(42))
}
