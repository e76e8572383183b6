package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		field   string
		wantErr bool
	}{
		{
			name: "valid",
			req:  AnalyzeRequest{Objective: "clients", Lang: "en", TurnstileToken: "tok"},
		},
		{
			name:    "missing objective",
			req:     AnalyzeRequest{Lang: "fr"},
			field:   "Objective",
			wantErr: true,
		},
		{
			name:    "unknown objective",
			req:     AnalyzeRequest{Objective: "recruteurs"},
			field:   "Objective",
			wantErr: true,
		},
		{
			name:    "lang too long",
			req:     AnalyzeRequest{Objective: "talents", Lang: "english-please"},
			field:   "Lang",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.field, InvalidField(err))
		})
	}
}

func TestScoresByKey(t *testing.T) {
	r := AnalysisResult{
		Criteria: []CriterionScore{
			{Key: "headline", Name: "Headline", Score: 72},
			{Name: "Unknown", Score: 10},
			{Key: "skills", Name: "Key Skills", Score: 55},
		},
	}
	assert.Equal(t, map[string]int{"headline": 72, "skills": 55}, r.ScoresByKey())
}
