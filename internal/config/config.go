// Package config loads the YAML configuration of the md2kb command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-md2kb/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxTitleLength    = 200
	MaxStyleLength    = 4096 // a name or a path; inline CSS belongs in a file
	MaxTOCTitleLength = 100
	MaxEnumLength     = 20
)

// Defaults applied by DefaultConfig.
const (
	DefaultTitle       = "Voice Agent Documentation"
	DefaultEngine      = "kb"
	DefaultTOCTitle    = "Contents"
	DefaultTOCMinDepth = 2
	DefaultTOCMaxDepth = 3
	DefaultPageSize    = "letter"
	DefaultPDFTimeout  = "30s"
)

// Accepted enum values.
var (
	Engines   = []string{"kb", "commonmark"}
	PageSizes = []string{"letter", "a4", "legal"}
)

// Config holds all configuration for page generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Engine   string         `yaml:"engine"` // "kb" or "commonmark"
	Style    string         `yaml:"style"`  // name, path or raw CSS; empty = built-in style
	Assets   AssetsConfig   `yaml:"assets"`
	TOC      TOCConfig      `yaml:"toc"`
	Fences   FencesConfig   `yaml:"fences"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source file
}

// DocumentConfig defines page title options.
type DocumentConfig struct {
	Title        string `yaml:"title"`        // forces the title of every page
	DefaultTitle string `yaml:"defaultTitle"` // used when a document has no "# " line
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	MinDepth int    `yaml:"minDepth"` // 1-6
	MaxDepth int    `yaml:"maxDepth"` // 1-6
}

// FencesConfig defines code fence handling.
type FencesConfig struct {
	DiscardUnterminated bool `yaml:"discardUnterminated"`
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled  bool   `yaml:"enabled"`
	PageSize string `yaml:"pageSize"` // "letter", "a4", "legal"
	Timeout  string `yaml:"timeout"`  // Go duration, e.g. "30s"
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{DefaultTitle: DefaultTitle},
		Engine:   DefaultEngine,
		TOC: TOCConfig{
			Title:    DefaultTOCTitle,
			MinDepth: DefaultTOCMinDepth,
			MaxDepth: DefaultTOCMaxDepth,
		},
		PDF: PDFConfig{PageSize: DefaultPageSize, Timeout: DefaultPDFTimeout},
	}
}

// Validate checks field lengths and enum values. LoadConfig calls it; the
// CLI calls it again after applying flags.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.defaultTitle", c.Document.DefaultTitle, MaxTitleLength},
		{"engine", c.Engine, MaxEnumLength},
		{"style", c.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"toc.title", c.TOC.Title, MaxTOCTitleLength},
		{"pdf.pageSize", c.PDF.PageSize, MaxEnumLength},
		{"pdf.timeout", c.PDF.Timeout, MaxEnumLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Engine != "" && !slices.Contains(Engines, strings.ToLower(c.Engine)) {
		return fmt.Errorf("%w: engine %q (must be one of %s)", ErrInvalidValue, c.Engine, strings.Join(Engines, ", "))
	}
	if c.PDF.PageSize != "" && !slices.Contains(PageSizes, strings.ToLower(c.PDF.PageSize)) {
		return fmt.Errorf("%w: pdf.pageSize %q (must be one of %s)", ErrInvalidValue, c.PDF.PageSize, strings.Join(PageSizes, ", "))
	}
	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: pdf.timeout %q (must be a positive duration like 30s)", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	if c.TOC.Enabled {
		if c.TOC.MinDepth < 1 || c.TOC.MinDepth > 6 {
			return fmt.Errorf("%w: toc.minDepth must be between 1 and 6, got %d", ErrInvalidValue, c.TOC.MinDepth)
		}
		if c.TOC.MaxDepth < 1 || c.TOC.MaxDepth > 6 {
			return fmt.Errorf("%w: toc.maxDepth must be between 1 and 6, got %d", ErrInvalidValue, c.TOC.MaxDepth)
		}
		if c.TOC.MinDepth > c.TOC.MaxDepth {
			return fmt.Errorf("%w: toc.minDepth (%d) exceeds toc.maxDepth (%d)", ErrInvalidValue, c.TOC.MinDepth, c.TOC.MaxDepth)
		}
	}

	return nil
}

// PDFTimeout returns pdf.timeout as a duration, or 0 when unset.
// Validate reports malformed values.
func (c *Config) PDFTimeout() time.Duration {
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil {
		return 0
	}
	return d
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a config file by path or by name. A value containing a
// path separator is a path; anything else is a name searched for as
// name.yaml or name.yml in the current directory, then in the user config
// directory under go-md2kb/. Keys absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, "go-md2kb", name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
