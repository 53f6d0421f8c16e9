// Package render turns assembled documents into output artifacts. One
// renderer exists per output format; formats without a working renderer yet
// produce no artifact.
package render

import (
	"github.com/privacykit-dev/privacykit/internal/domain"
)

// Renderer produces one output format from an assembled document.
type Renderer interface {
	Format() domain.OutputFormat
	// Ext is the file extension including the leading dot.
	Ext() string
	// Render returns the rendered document, or nil when the format is
	// declared but not yet implemented.
	Render(sections []domain.DisclaimerSection, metadata domain.DisclaimerMetadata) []byte
}

// For returns the renderer for the format. Unknown formats return false.
func For(format domain.OutputFormat) (Renderer, bool) {
	switch format {
	case domain.FormatMarkdown:
		return markdownRenderer{}, true
	case domain.FormatDOCX:
		return stubRenderer{format: domain.FormatDOCX, ext: ".docx"}, true
	case domain.FormatHTML:
		return stubRenderer{format: domain.FormatHTML, ext: ".html"}, true
	default:
		return nil, false
	}
}

// stubRenderer stands in for formats that are part of the public surface but
// have no renderer yet. It emits nothing.
type stubRenderer struct {
	format domain.OutputFormat
	ext    string
}

func (s stubRenderer) Format() domain.OutputFormat { return s.format }
func (s stubRenderer) Ext() string                 { return s.ext }
func (s stubRenderer) Render([]domain.DisclaimerSection, domain.DisclaimerMetadata) []byte {
	return nil
}
