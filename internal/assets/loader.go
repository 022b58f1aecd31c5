package assets

import (
	"fmt"
	"strings"
)

// AssetLoader loads style sheets and HTML templates by name.
type AssetLoader interface {
	// LoadStyle loads a style sheet by name (without .css).
	// Returns ErrStyleNotFound or ErrInvalidAssetName.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html).
	// Returns ErrTemplateNotFound or ErrInvalidAssetName.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that are empty or could reach outside the
// asset directory or change the extension: path separators and dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
