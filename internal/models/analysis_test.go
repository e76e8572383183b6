package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *AnalysisResult {
	return &AnalysisResult{
		ID:             uuid.NewString(),
		Objective:      "clients",
		GlobalScore:    64,
		GlobalLabel:    "Good",
		GlobalAnalysis: "Clear positioning.",
		Criteria: []CriterionScore{
			{Key: "headline", Name: "Headline", Score: 70, Weight: 24, Explanation: "ok", Actions: []string{"a"}},
			{Key: "summary", Name: "Summary", Score: 55, Weight: 24, Explanation: "ok", Actions: []string{"b"}},
		},
		Roadmap: []RoadmapStep{{Priority: 1, Title: "Summary", Description: "Add a hook."}},
	}
}

func TestNewAnalysisEntry(t *testing.T) {
	result := sampleResult()

	entry, err := NewAnalysisEntry(result, "en", "profile text", true, false)
	require.NoError(t, err)

	assert.Equal(t, result.ID, entry.ID.String())
	assert.Equal(t, "en", entry.Lang)
	assert.Equal(t, "clients", entry.Objective)
	require.NotNil(t, entry.ScoreGlobal)
	assert.Equal(t, 64, *entry.ScoreGlobal)
	assert.Equal(t, map[string]int{"headline": 70, "summary": 55}, entry.CriteriaScores)
	assert.True(t, entry.HasBanner)
	assert.False(t, entry.HasPhoto)
	assert.JSONEq(t, mustJSON(t, result), entry.Result)
}

func TestNewAnalysisEntry_BadID(t *testing.T) {
	result := sampleResult()
	result.ID = "not-a-uuid"

	_, err := NewAnalysisEntry(result, "fr", "", false, false)
	assert.Error(t, err)
}

func TestAnalysis_AnalysisResult(t *testing.T) {
	result := sampleResult()
	entry, err := NewAnalysisEntry(result, "en", "", false, false)
	require.NoError(t, err)

	got, err := entry.AnalysisResult()
	require.NoError(t, err)
	assert.Equal(t, result, got)

	entry.Result = ""
	got, err = entry.AnalysisResult()
	require.NoError(t, err)
	assert.Equal(t, 64, got.GlobalScore)
	assert.Equal(t, "Good", got.GlobalLabel)
	assert.Empty(t, got.Criteria)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
