package domain

import "fmt"

// OutputFormat names a document rendering target. Markdown is fully
// implemented; docx and html are accepted but produce no output yet.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "md"
	FormatDOCX     OutputFormat = "docx"
	FormatHTML     OutputFormat = "html"
)

var outputFormats = map[OutputFormat]struct{}{
	FormatMarkdown: {},
	FormatDOCX:     {},
	FormatHTML:     {},
}

// Validate returns an error if the format is not part of the vocabulary.
func (f OutputFormat) Validate() error {
	if _, ok := outputFormats[f]; !ok {
		return fmt.Errorf("invalid output format: %s", string(f))
	}
	return nil
}

func (f OutputFormat) String() string {
	return string(f)
}
