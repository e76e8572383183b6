package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat defaults to markdown when s is empty.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/markdown; charset=utf-8"
	}
}

func (f Format) Extension() string {
	return string(f)
}

// PDFPrinter turns a standalone HTML page into a PDF.
type PDFPrinter interface {
	Render(ctx context.Context, htmlDoc string) ([]byte, error)
}

// Generator renders reports in every supported format.
type Generator struct {
	pdf PDFPrinter
	now func() time.Time
}

func NewGenerator(pdf PDFPrinter) *Generator {
	return &Generator{pdf: pdf, now: time.Now}
}

func (g *Generator) Render(ctx context.Context, result *models.AnalysisResult, lang scoring.Language, format Format) ([]byte, error) {
	lang = scoring.ParseLanguage(string(lang))
	markdown := Markdown(result, lang, g.now())
	if format == FormatMarkdown {
		return []byte(markdown), nil
	}

	page, err := HTML(markdown, reportLabels[lang].title)
	if err != nil {
		return nil, err
	}
	if format == FormatHTML {
		return []byte(page), nil
	}

	if g.pdf == nil {
		return nil, errors.New("PDF rendering is not configured")
	}
	out, err := g.pdf.Render(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return out, nil
}
