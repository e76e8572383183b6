package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

var fixedNow = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Objective:      "recruiters",
		GlobalScore:    58,
		GlobalLabel:    "Average",
		GlobalAnalysis: "Decent profile with a generic headline.",
		Criteria: []models.CriterionScore{
			{Key: "headline", Name: "Headline", Score: 35, Weight: 22, Explanation: "Just a job title.", Actions: []string{"Add a value proposition"}},
			{Key: "experience", Name: "Experience | roles", Score: 82, Weight: 28, Explanation: "Quantified results.", Actions: []string{"Keep\nit up"}},
		},
		Roadmap: []models.RoadmapStep{
			{Priority: 1, Title: "Rewrite the headline", Description: "Lead with the value you bring."},
		},
	}
}

type fakePrinter struct {
	got string
	out []byte
	err error
}

func (f *fakePrinter) Render(_ context.Context, htmlDoc string) ([]byte, error) {
	f.got = htmlDoc
	return f.out, f.err
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		en    string
		fr    string
	}{
		{0, "Weak", "Faible"},
		{39, "Weak", "Faible"},
		{40, "Average", "Moyen"},
		{59, "Average", "Moyen"},
		{60, "Good", "Bon"},
		{79, "Good", "Bon"},
		{80, "Excellent", "Excellent"},
		{100, "Excellent", "Excellent"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.en, ScoreLabel(scoring.LanguageEnglish, tt.score), tt.score)
		assert.Equal(t, tt.fr, ScoreLabel(scoring.LanguageFrench, tt.score), tt.score)
	}
}

func TestMarkdown_English(t *testing.T) {
	out := Markdown(sampleResult(), scoring.LanguageEnglish, fixedNow)

	assert.Contains(t, out, "# Your LinkedIn Analysis")
	assert.Contains(t, out, "**Goal:** Get noticed by recruiters")
	assert.Contains(t, out, "**Date:** March 4, 2026")
	assert.Contains(t, out, "## Global score: 58/100 (Average)")
	assert.Contains(t, out, "| Headline | 35/100 | 22% |")
	assert.Contains(t, out, `| Experience \| roles | 82/100 | 28% |`)
	assert.Contains(t, out, "### Headline: 35/100 (Weak)")
	assert.Contains(t, out, "- Keep it up")
	assert.Contains(t, out, "1. **Rewrite the headline**: Lead with the value you bring.")
}

func TestMarkdown_French(t *testing.T) {
	result := sampleResult()
	result.GlobalLabel = ""

	out := Markdown(result, scoring.LanguageFrench, fixedNow)

	assert.Contains(t, out, "# Votre analyse LinkedIn")
	assert.Contains(t, out, "**Objectif:** Être repéré par des recruteurs")
	assert.Contains(t, out, "**Date:** 04/03/2026")
	assert.Contains(t, out, "## Score global: 58/100 (Moyen)")
	assert.Contains(t, out, "## Feuille de route prioritaire")
}

func TestHTML(t *testing.T) {
	page, err := HTML(Markdown(sampleResult(), scoring.LanguageEnglish, fixedNow), "Report <1>")
	require.NoError(t, err)

	assert.Contains(t, page, "<title>Report &lt;1&gt;</title>")
	assert.Contains(t, page, "<h1>Your LinkedIn Analysis</h1>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>Headline</td>")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatMarkdown, "md": FormatMarkdown, "markdown": FormatMarkdown, "HTML": FormatHTML, "pdf": FormatPDF} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestGenerator_Render(t *testing.T) {
	printer := &fakePrinter{out: []byte("%PDF-fake")}
	g := NewGenerator(printer)
	g.now = func() time.Time { return fixedNow }

	md, err := g.Render(context.Background(), sampleResult(), scoring.LanguageEnglish, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Your LinkedIn Analysis")
	assert.Empty(t, printer.got)

	page, err := g.Render(context.Background(), sampleResult(), scoring.LanguageEnglish, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<!doctype html>")

	pdf, err := g.Render(context.Background(), sampleResult(), scoring.LanguageEnglish, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, printer.got, "<h1>Your LinkedIn Analysis</h1>")
}

func TestGenerator_RenderPDFErrors(t *testing.T) {
	_, err := NewGenerator(nil).Render(context.Background(), sampleResult(), scoring.LanguageFrench, FormatPDF)
	assert.Error(t, err)

	printer := &fakePrinter{err: errors.New("no chrome")}
	_, err = NewGenerator(printer).Render(context.Background(), sampleResult(), scoring.LanguageFrench, FormatPDF)
	assert.ErrorContains(t, err, "no chrome")
}
