package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName     = "Times New Roman"
	fontSize     = 13
	defaultTitle = "Video Transcript"
)

// ErrEmptyDocument is returned when there is nothing to export.
var ErrEmptyDocument = errors.New("export: transcript and summary are both empty")

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// DOCX renders the summary (markdown aware) followed by the transcript.
// godocx only saves to a path, so the file goes through a working file that is always removed.
func (e *implExporter) DOCX(ctx context.Context, doc Document) ([]byte, error) {
	if strings.TrimSpace(doc.Transcript) == "" && strings.TrimSpace(doc.Summary) == "" {
		return nil, ErrEmptyDocument
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = defaultTitle
	}

	d, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	addStyledRun(d.AddParagraph(""), title, true, 16)

	if strings.TrimSpace(doc.Summary) != "" {
		addStyledRun(d.AddParagraph(""), "Summary", true, 15)
		writeMarkdown(d, doc.Summary)
	}

	if strings.TrimSpace(doc.Transcript) != "" {
		addStyledRun(d.AddParagraph(""), "Transcript", true, 15)
		writePlain(d, doc.Transcript)
	}

	if err := os.MkdirAll(e.workDir, 0755); err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	tmp, err := os.CreateTemp(e.workDir, "export-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.logger.Warn(ctx, "Failed to cleanup export file %s: %v", path, err)
		}
	}()

	if err := d.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	e.logger.Debug(ctx, "Exported docx %q (%d bytes)", title, len(data))
	return data, nil
}

// writeMarkdown converts the LLM summary (headings, bullets, bold) into paragraphs
func writeMarkdown(d *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(d.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(d.AddParagraph(""), "• "+m[1])
			continue
		}

		addRichText(d.AddParagraph(""), trimmed)
	}
}

// writePlain adds one paragraph per non-empty transcript line
func writePlain(d *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		d.AddParagraph("").AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
