package models

// AnalysisResult is the critique returned by the analyze endpoint.
type AnalysisResult struct {
	ID             string           `json:"id,omitempty"`
	Objective      string           `json:"objective,omitempty"`
	GlobalScore    int              `json:"globalScore"`
	GlobalLabel    string           `json:"globalLabel"`
	GlobalAnalysis string           `json:"globalAnalysis"`
	Criteria       []CriterionScore `json:"criteria"`
	Roadmap        []RoadmapStep    `json:"roadmap"`
}

type CriterionScore struct {
	Key         string   `json:"key,omitempty"`
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	Weight      int      `json:"weight"`
	Explanation string   `json:"explanation"`
	Actions     []string `json:"actions"`
}

type RoadmapStep struct {
	Priority    int    `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ScoresByKey indexes criterion scores by their key, skipping entries the
// model returned without one.
func (r *AnalysisResult) ScoresByKey() map[string]int {
	scores := make(map[string]int, len(r.Criteria))
	for _, c := range r.Criteria {
		if c.Key != "" {
			scores[c.Key] = c.Score
		}
	}
	return scores
}

type ErrorResponse struct {
	Error string `json:"error"`
}
