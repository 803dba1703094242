package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/tacogips/csnew/internal/debug"
	"github.com/tacogips/csnew/internal/template/render"
)

// Editor command placeholders. Line and column are 1-based.
const (
	editorPathToken   = "{path}"
	editorLineToken   = "{line}"
	editorColumnToken = "{column}"
)

// runEditor starts the editor process; replaced in tests.
var runEditor = func(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// editorOpener reports the cursor location of a created file and, when a
// command is configured, launches the editor there.
type editorOpener struct {
	command string
	launch  bool
}

// Open prints path:line:column and runs the editor command.
func (o editorOpener) Open(ctx context.Context, path string, cursor render.Position) error {
	printInfo(fmt.Sprintf("%s:%d:%d", path, cursor.Line+1, cursor.Column+1))

	if !o.launch || o.command == "" {
		return nil
	}

	args, err := editorArgs(o.command, path, cursor)
	if err != nil {
		return err
	}
	debug.Debug("[cli] Running editor: %v", args)
	return runEditor(ctx, args)
}

// editorArgs splits command with shell quoting rules and expands the
// placeholders in every argument. The path is appended when the command
// does not mention it.
func editorArgs(command, path string, cursor render.Position) ([]string, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	replacer := strings.NewReplacer(
		editorPathToken, path,
		editorLineToken, strconv.Itoa(cursor.Line+1),
		editorColumnToken, strconv.Itoa(cursor.Column+1),
	)

	hasPath := false
	for i, arg := range args {
		if strings.Contains(arg, editorPathToken) {
			hasPath = true
		}
		args[i] = replacer.Replace(arg)
	}
	if !hasPath {
		args = append(args, path)
	}
	return args, nil
}
