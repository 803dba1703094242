package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/csnew/internal/debug"
)

const (
	rootNamespaceOpenTag  = "<RootNamespace>"
	rootNamespaceCloseTag = "</RootNamespace>"
)

// DescriptorFormat is the on-disk format of a project descriptor.
type DescriptorFormat int

const (
	// FormatUnknown is any descriptor the resolver cannot read a namespace from.
	FormatUnknown DescriptorFormat = iota
	// FormatJSON is a project.json style descriptor.
	FormatJSON
	// FormatProjectFile is an MSBuild project file (.csproj and friends).
	FormatProjectFile
)

// Format derives the descriptor format from its file extension.
func (d *Descriptor) Format() DescriptorFormat {
	ext := strings.ToLower(filepath.Ext(d.Path))
	switch {
	case ext == ".json":
		return FormatJSON
	case strings.HasSuffix(ext, "proj"):
		return FormatProjectFile
	default:
		return FormatUnknown
	}
}

// Declaration is either a root namespace declared by a descriptor or nothing.
type Declaration struct {
	value    string
	declared bool
}

// Declared returns a Declaration holding value.
func Declared(value string) Declaration {
	return Declaration{value: value, declared: true}
}

// NotDeclared returns an empty Declaration.
func NotDeclared() Declaration {
	return Declaration{}
}

// Value returns the declared namespace and whether there was one.
func (d Declaration) Value() (string, bool) {
	return d.value, d.declared
}

// OrElse returns the declared namespace, or fallback when there is none.
func (d Declaration) OrElse(fallback string) string {
	if d.declared {
		return d.value
	}
	return fallback
}

// DeclaredNamespace reads the descriptor and extracts its declared root
// namespace. Unreadable, empty or malformed descriptors declare nothing.
func DeclaredNamespace(d *Descriptor) Declaration {
	content, err := os.ReadFile(d.Path)
	if err != nil {
		debug.Debug("[project] Cannot read descriptor %s: %v", d.Path, err)
		return NotDeclared()
	}
	if len(content) == 0 {
		debug.Debug("[project] Descriptor is empty: %s", d.Path)
		return NotDeclared()
	}

	switch d.Format() {
	case FormatJSON:
		return parseJSONDescriptor(content)
	case FormatProjectFile:
		return parseProjectFile(string(content))
	default:
		return NotDeclared()
	}
}

// RootNamespace returns the descriptor's declared root namespace or, failing
// that, the name of the descriptor's directory. The bool reports which.
func RootNamespace(d *Descriptor) (string, bool) {
	decl := DeclaredNamespace(d)
	_, declared := decl.Value()
	return decl.OrElse(filepath.Base(d.RootDir)), declared
}

type jsonDescriptor struct {
	Tooling *struct {
		DefaultNamespace *string `json:"defaultNamespace"`
	} `json:"tooling"`
}

// parseJSONDescriptor looks up tooling.defaultNamespace.
func parseJSONDescriptor(content []byte) Declaration {
	var doc jsonDescriptor
	if err := json.Unmarshal(content, &doc); err != nil {
		debug.Debug("[project] Malformed JSON descriptor: %v", err)
		return NotDeclared()
	}
	if doc.Tooling == nil || doc.Tooling.DefaultNamespace == nil {
		return NotDeclared()
	}

	ns := strings.TrimSpace(*doc.Tooling.DefaultNamespace)
	if ns == "" {
		return NotDeclared()
	}
	return Declared(ns)
}

// parseProjectFile returns the text between the first RootNamespace tags.
func parseProjectFile(content string) Declaration {
	open := strings.Index(content, rootNamespaceOpenTag)
	if open < 0 {
		return NotDeclared()
	}
	start := open + len(rootNamespaceOpenTag)

	end := strings.Index(content[start:], rootNamespaceCloseTag)
	if end < 0 {
		debug.Debug("[project] Unterminated %s in project file", rootNamespaceOpenTag)
		return NotDeclared()
	}

	ns := strings.TrimSpace(content[start : start+end])
	if ns == "" {
		return NotDeclared()
	}
	return Declared(ns)
}
