package provider

// NewProvider returns a LocalProvider for dir, or the EmbeddedProvider when
// dir is empty.
func NewProvider(dir string) (Provider, error) {
	if dir == "" {
		return NewEmbeddedProvider(), nil
	}
	return NewLocalProvider(dir)
}
