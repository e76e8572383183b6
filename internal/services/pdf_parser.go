package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF")

var ErrNotPDF = errors.New("file is not a PDF")

type PDFParserService interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// IsPDF reports whether data starts with the PDF magic number.
func IsPDF(data []byte) bool {
	return len(data) >= len(pdfMagic) && bytes.Equal(data[:len(pdfMagic)], pdfMagic)
}

// ExtractText reads the text of every page of an in-memory PDF.
func (p *pdfParserService) ExtractText(data []byte) (content *PDFContent, err error) {
	if !IsPDF(data) {
		return nil, ErrNotPDF
	}

	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages, the rest of the profile is still useful
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return &PDFContent{
		Text:      CleanText(textBuilder.String()),
		PageCount: totalPage,
	}, nil
}

// CleanText trims every line and drops the empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
