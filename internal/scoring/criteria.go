package scoring

import "fmt"

type Criterion string

const (
	CriterionPhoto      Criterion = "photo"
	CriterionBanner     Criterion = "banner"
	CriterionHeadline   Criterion = "headline"
	CriterionSummary    Criterion = "summary"
	CriterionExperience Criterion = "experience"
	CriterionSkills     Criterion = "skills"
	CriterionCoherence  Criterion = "coherence"
)

// AllCriteria lists every criterion in the order they are presented.
var AllCriteria = []Criterion{
	CriterionPhoto,
	CriterionBanner,
	CriterionHeadline,
	CriterionSummary,
	CriterionExperience,
	CriterionSkills,
	CriterionCoherence,
}

func (c Criterion) Valid() bool {
	for _, known := range AllCriteria {
		if c == known {
			return true
		}
	}
	return false
}

type Objective string

const (
	ObjectiveClients    Objective = "clients"
	ObjectiveTalents    Objective = "talents"
	ObjectiveRecruiters Objective = "recruiters"
	ObjectiveBranding   Objective = "branding"
)

var AllObjectives = []Objective{
	ObjectiveClients,
	ObjectiveTalents,
	ObjectiveRecruiters,
	ObjectiveBranding,
}

// ParseObjective accepts the objective names used by the API.
func ParseObjective(s string) (Objective, error) {
	o := Objective(s)
	for _, known := range AllObjectives {
		if o == known {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownObjective, s)
}

type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// ParseLanguage falls back to French for anything that is not "en".
func ParseLanguage(s string) Language {
	if Language(s) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageFrench
}

var objectiveLabels = map[Language]map[Objective]string{
	LanguageFrench: {
		ObjectiveClients:    "Trouver des clients",
		ObjectiveTalents:    "Attirer des talents",
		ObjectiveRecruiters: "Être repéré par des recruteurs",
		ObjectiveBranding:   "Construire son personal branding",
	},
	LanguageEnglish: {
		ObjectiveClients:    "Find clients",
		ObjectiveTalents:    "Attract talent",
		ObjectiveRecruiters: "Get noticed by recruiters",
		ObjectiveBranding:   "Build your personal brand",
	},
}

var criterionLabels = map[Language]map[Criterion]string{
	LanguageFrench: {
		CriterionPhoto:      "Photo de profil",
		CriterionBanner:     "Bannière",
		CriterionHeadline:   "Titre",
		CriterionSummary:    "Résumé",
		CriterionExperience: "Expériences",
		CriterionSkills:     "Compétences clés",
		CriterionCoherence:  "Cohérence globale",
	},
	LanguageEnglish: {
		CriterionPhoto:      "Profile photo",
		CriterionBanner:     "Banner",
		CriterionHeadline:   "Headline",
		CriterionSummary:    "Summary",
		CriterionExperience: "Experience",
		CriterionSkills:     "Key Skills",
		CriterionCoherence:  "Overall coherence",
	},
}

func ObjectiveLabel(lang Language, o Objective) string {
	if label, ok := objectiveLabels[ParseLanguage(string(lang))][o]; ok {
		return label
	}
	return string(o)
}

func CriterionLabel(lang Language, c Criterion) string {
	if label, ok := criterionLabels[ParseLanguage(string(lang))][c]; ok {
		return label
	}
	return string(c)
}
