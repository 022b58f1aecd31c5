package assets

import "errors"

// AssetResolver serves assets from a custom directory when one is
// configured, falling back to the embedded assets for anything the
// directory does not provide.
type AssetResolver struct {
	custom   AssetLoader // nil without a custom directory
	embedded AssetLoader
}

var _ AssetLoader = (*AssetResolver)(nil)

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// the embedded assets only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads a style sheet, custom directory first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.load(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads an HTML template, custom directory first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.load(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// load falls back only when the custom directory lacks the asset.
// Validation and read errors are returned as they are.
func (r *AssetResolver) load(fn func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return fn(r.embedded)
	}
	content, err := fn(r.custom)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return fn(r.embedded)
}
