// Package scoring holds the criteria, objectives and weight tables used to
// grade a LinkedIn profile, along with the redistribution applied when the
// banner or photo criterion is left out of an analysis.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownObjective = errors.New("unknown objective")

// ConfigurationError reports a weight table that cannot be used, either as
// given or after removing the skipped criteria.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid weight configuration: %s", e.Reason)
}

// WeightTable maps each criterion to its percentage of the global score.
type WeightTable map[Criterion]int

var baseWeights = map[Objective]WeightTable{
	ObjectiveClients: {
		CriterionPhoto:      10,
		CriterionBanner:     15,
		CriterionHeadline:   20,
		CriterionSummary:    20,
		CriterionExperience: 10,
		CriterionSkills:     10,
		CriterionCoherence:  15,
	},
	ObjectiveTalents: {
		CriterionPhoto:      10,
		CriterionBanner:     15,
		CriterionHeadline:   15,
		CriterionSummary:    20,
		CriterionExperience: 15,
		CriterionSkills:     10,
		CriterionCoherence:  15,
	},
	ObjectiveRecruiters: {
		CriterionPhoto:      10,
		CriterionBanner:     10,
		CriterionHeadline:   20,
		CriterionSummary:    15,
		CriterionExperience: 25,
		CriterionSkills:     15,
		CriterionCoherence:  5,
	},
	ObjectiveBranding: {
		CriterionPhoto:      10,
		CriterionBanner:     20,
		CriterionHeadline:   15,
		CriterionSummary:    20,
		CriterionExperience: 10,
		CriterionSkills:     10,
		CriterionCoherence:  15,
	},
}

// BaseWeights returns a copy of the weight table for the objective.
func BaseWeights(o Objective) (WeightTable, error) {
	table, ok := baseWeights[o]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjective, o)
	}
	return table.clone(), nil
}

// Sum adds up every weight present in the table.
func (t WeightTable) Sum() int {
	total := 0
	for _, w := range t {
		total += w
	}
	return total
}

// Keys returns the criteria present in the table in presentation order.
func (t WeightTable) Keys() []Criterion {
	keys := make([]Criterion, 0, len(t))
	for _, c := range AllCriteria {
		if _, ok := t[c]; ok {
			keys = append(keys, c)
		}
	}
	return keys
}

// Validate checks that t is a complete base table: all seven criteria,
// no negative weight, summing to 100.
func (t WeightTable) Validate() error {
	if len(t) != len(AllCriteria) {
		return &ConfigurationError{Reason: fmt.Sprintf("expected %d criteria, got %d", len(AllCriteria), len(t))}
	}
	for c, w := range t {
		if !c.Valid() {
			return &ConfigurationError{Reason: fmt.Sprintf("unknown criterion %q", c)}
		}
		if w < 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("negative weight %d for %s", w, c)}
		}
	}
	if sum := t.Sum(); sum != 100 {
		return &ConfigurationError{Reason: fmt.Sprintf("weights sum to %d, must sum to 100", sum)}
	}
	return nil
}

func (t WeightTable) clone() WeightTable {
	out := make(WeightTable, len(t))
	for c, w := range t {
		out[c] = w
	}
	return out
}

// Redistribute removes the skipped banner and photo criteria from base and
// rescales the remaining weights back to a percentage scale. Each weight is
// rounded on its own, so the result may sum to 100 plus or minus up to
// len(result)-1.
func Redistribute(base WeightTable, skipBanner, skipPhoto bool) (WeightTable, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	weights := base.clone()
	if !skipBanner && !skipPhoto {
		return weights, nil
	}

	var removed []Criterion
	if skipBanner {
		removed = append(removed, CriterionBanner)
	}
	if skipPhoto {
		removed = append(removed, CriterionPhoto)
	}

	removedTotal := 0
	for _, c := range removed {
		removedTotal += weights[c]
		delete(weights, c)
	}

	remainingTotal := 100 - removedTotal
	if remainingTotal <= 0 {
		return nil, &ConfigurationError{Reason: "no weight left after removing skipped criteria"}
	}

	for c, w := range weights {
		weights[c] = int(math.Round(float64(w) / float64(remainingTotal) * 100))
	}

	return weights, nil
}

// RedistributeFor looks up the base table for the objective and
// redistributes it.
func RedistributeFor(o Objective, skipBanner, skipPhoto bool) (WeightTable, error) {
	base, err := BaseWeights(o)
	if err != nil {
		return nil, err
	}
	return Redistribute(base, skipBanner, skipPhoto)
}
