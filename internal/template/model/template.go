package model

// Template is a loaded template body for one FileKind.
type Template struct {
	// Kind is the kind the template scaffolds.
	Kind FileKind
	// Name is the template file name (e.g. "Class.tmpl").
	Name string
	// Source describes where the template was loaded from: a file path or "embedded:<name>".
	Source string
	// Body is the raw template text.
	Body string
}
