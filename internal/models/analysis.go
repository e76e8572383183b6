package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Analysis is one entry of the append-only analysis log. Rows are inserted
// once and never updated.
type Analysis struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Lang           string         `gorm:"type:text;not null" json:"lang"`
	Objective      string         `gorm:"type:text;not null" json:"objective"`
	ScoreGlobal    *int           `json:"score_global,omitempty"`
	LabelGlobal    *string        `gorm:"type:text" json:"label_global,omitempty"`
	CriteriaScores map[string]int `gorm:"type:jsonb;serializer:json" json:"criteria_scores"`
	GlobalAnalysis *string        `gorm:"type:text" json:"global_analysis,omitempty"`
	Roadmap        []RoadmapStep  `gorm:"type:jsonb;serializer:json" json:"roadmap"`
	Result         string         `gorm:"type:jsonb" json:"-"`
	ProfileText    string         `gorm:"type:text" json:"profile_text"`
	HasBanner      bool           `gorm:"not null;default:false" json:"has_banner"`
	HasPhoto       bool           `gorm:"not null;default:false" json:"has_photo"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// NewAnalysisEntry builds the log entry of a completed analysis.
func NewAnalysisEntry(result *AnalysisResult, lang, profileText string, hasBanner, hasPhoto bool) (*Analysis, error) {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis id: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	score := result.GlobalScore
	label := result.GlobalLabel
	analysis := result.GlobalAnalysis

	return &Analysis{
		ID:             id,
		Lang:           lang,
		Objective:      result.Objective,
		ScoreGlobal:    &score,
		LabelGlobal:    &label,
		CriteriaScores: result.ScoresByKey(),
		GlobalAnalysis: &analysis,
		Roadmap:        result.Roadmap,
		Result:         string(raw),
		ProfileText:    profileText,
		HasBanner:      hasBanner,
		HasPhoto:       hasPhoto,
	}, nil
}

// AnalysisResult decodes the stored result, falling back to the summary
// columns for entries written without one.
func (a *Analysis) AnalysisResult() (*AnalysisResult, error) {
	if a.Result != "" {
		var result AnalysisResult
		if err := json.Unmarshal([]byte(a.Result), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
		}
		return &result, nil
	}

	result := &AnalysisResult{
		ID:        a.ID.String(),
		Objective: a.Objective,
		Roadmap:   a.Roadmap,
	}
	if a.ScoreGlobal != nil {
		result.GlobalScore = *a.ScoreGlobal
	}
	if a.LabelGlobal != nil {
		result.GlobalLabel = *a.LabelGlobal
	}
	if a.GlobalAnalysis != nil {
		result.GlobalAnalysis = *a.GlobalAnalysis
	}
	return result, nil
}
