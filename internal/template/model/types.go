package model

import (
	"fmt"
	"strings"
)

// Well-known names used when scaffolding C# files.
const (
	// SourceExtension is the only accepted extension for scaffolded files.
	SourceExtension = ".cs"
	// TemplateExtension is the file extension of template files.
	TemplateExtension = ".tmpl"
)

// FileKind identifies what kind of source file is being scaffolded.
type FileKind int

const (
	// KindClass scaffolds a class.
	KindClass FileKind = iota
	// KindInterface scaffolds an interface.
	KindInterface
)

// String returns the lowercase kind name.
func (k FileKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	default:
		return fmt.Sprintf("FileKind(%d)", int(k))
	}
}

// ParseFileKind converts "class" or "interface" (case-insensitive) to a FileKind.
func ParseFileKind(s string) (FileKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "class":
		return KindClass, nil
	case "interface":
		return KindInterface, nil
	default:
		return 0, fmt.Errorf("unknown file kind: %q (expected class or interface)", s)
	}
}

// AllKinds returns every supported kind in declaration order.
func AllKinds() []FileKind {
	return []FileKind{KindClass, KindInterface}
}

// KindSpec carries everything that varies by FileKind.
type KindSpec struct {
	// Kind is the kind this spec describes.
	Kind FileKind
	// DefaultFilename pre-fills the prompt.
	DefaultFilename string
	// Prompt is the message shown above the input.
	Prompt string
	// Placeholder is the hint shown for an empty input.
	Placeholder string
	// TemplateFile is the template file name inside the template directory.
	TemplateFile string
}

var kindSpecs = map[FileKind]KindSpec{
	KindClass: {
		Kind:            KindClass,
		DefaultFilename: "Class" + SourceExtension,
		Prompt:          "Please enter a name for your class",
		Placeholder:     "Class name",
		TemplateFile:    "Class" + TemplateExtension,
	},
	KindInterface: {
		Kind:            KindInterface,
		DefaultFilename: "IInterface" + SourceExtension,
		Prompt:          "Please enter a name for your interface",
		Placeholder:     "Interface name",
		TemplateFile:    "Interface" + TemplateExtension,
	},
}

// SpecFor returns the KindSpec for kind.
func SpecFor(kind FileKind) (KindSpec, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return KindSpec{}, fmt.Errorf("unsupported file kind: %s", kind)
	}
	return spec, nil
}

// DefaultStem returns the default filename without its extension.
func (s KindSpec) DefaultStem() string {
	return strings.TrimSuffix(s.DefaultFilename, SourceExtension)
}
