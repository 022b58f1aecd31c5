package md2kb

import (
	"errors"

	"github.com/alnah/go-md2kb/internal/assets"
	"github.com/alnah/go-md2kb/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageRender     = pipeline.ErrPageRender
	ErrInvalidEngine  = errors.New("invalid engine")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
