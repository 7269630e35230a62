package export

import "context"

// Document is the content rendered into an export file.
type Document struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// Exporter renders a Document into a downloadable file
type Exporter interface {
	DOCX(ctx context.Context, doc Document) ([]byte, error)
}
