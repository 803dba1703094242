package app

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/csnew/internal/template/model"
)

// Filename validation messages.
const (
	MsgEmptyFilename    = "You must type something"
	MsgInvalidExtension = "Filename must end in a valid C# file extension"
	MsgMissingStem      = "You must provide a filename"
)

// ValidateFilename checks a filename typed at the prompt. It returns an empty
// string when the name is acceptable, otherwise the message for the first
// failing rule. The stem rule applies to the last path element, so
// "src/.cs" is rejected like ".cs".
func ValidateFilename(filename string) string {
	if filename == "" {
		return MsgEmptyFilename
	}
	if !strings.HasSuffix(filename, model.SourceExtension) {
		return MsgInvalidExtension
	}
	if filepath.Base(filename) == model.SourceExtension {
		return MsgMissingStem
	}
	return ""
}
