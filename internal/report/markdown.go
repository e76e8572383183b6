// Package report renders an analysis result as a downloadable document.
package report

import (
	"fmt"
	"strings"
	"time"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type labels struct {
	title       string
	objective   string
	date        string
	globalScore string
	criteria    string
	criterion   string
	score       string
	weight      string
	actions     string
	roadmap     string
	footer      string
	dateLayout  string
}

var reportLabels = map[scoring.Language]labels{
	scoring.LanguageFrench: {
		title:       "Votre analyse LinkedIn",
		objective:   "Objectif",
		date:        "Date",
		globalScore: "Score global",
		criteria:    "Détail par critère",
		criterion:   "Critère",
		score:       "Score",
		weight:      "Poids",
		actions:     "Actions recommandées",
		roadmap:     "Feuille de route prioritaire",
		footer:      "Généré par LinkedIn Analyzer",
		dateLayout:  "02/01/2006",
	},
	scoring.LanguageEnglish: {
		title:       "Your LinkedIn Analysis",
		objective:   "Goal",
		date:        "Date",
		globalScore: "Global score",
		criteria:    "Criteria breakdown",
		criterion:   "Criterion",
		score:       "Score",
		weight:      "Weight",
		actions:     "Recommended actions",
		roadmap:     "Priority roadmap",
		footer:      "Generated by LinkedIn Analyzer",
		dateLayout:  "January 2, 2006",
	},
}

// ScoreLabel buckets a 0-100 score the same way the model is asked to.
func ScoreLabel(lang scoring.Language, score int) string {
	en := scoring.ParseLanguage(string(lang)) == scoring.LanguageEnglish
	switch {
	case score < 40 && en:
		return "Weak"
	case score < 40:
		return "Faible"
	case score < 60 && en:
		return "Average"
	case score < 60:
		return "Moyen"
	case score < 80 && en:
		return "Good"
	case score < 80:
		return "Bon"
	default:
		return "Excellent"
	}
}

// Markdown renders result as a GitHub flavored markdown document.
func Markdown(result *models.AnalysisResult, lang scoring.Language, now time.Time) string {
	lang = scoring.ParseLanguage(string(lang))
	l := reportLabels[lang]

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", l.title)
	if result.Objective != "" {
		fmt.Fprintf(&sb, "**%s:** %s  \n", l.objective, scoring.ObjectiveLabel(lang, scoring.Objective(result.Objective)))
	}
	fmt.Fprintf(&sb, "**%s:** %s\n\n", l.date, now.Format(l.dateLayout))

	label := result.GlobalLabel
	if label == "" {
		label = ScoreLabel(lang, result.GlobalScore)
	}
	fmt.Fprintf(&sb, "## %s: %d/100 (%s)\n\n", l.globalScore, result.GlobalScore, label)
	if text := strings.TrimSpace(result.GlobalAnalysis); text != "" {
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	if len(result.Criteria) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n", l.criteria)
		fmt.Fprintf(&sb, "| %s | %s | %s |\n|---|---:|---:|\n", l.criterion, l.score, l.weight)
		for _, c := range result.Criteria {
			fmt.Fprintf(&sb, "| %s | %d/100 | %d%% |\n", tableCell(c.Name), c.Score, c.Weight)
		}
		sb.WriteString("\n")

		for _, c := range result.Criteria {
			fmt.Fprintf(&sb, "### %s: %d/100 (%s)\n\n", c.Name, c.Score, ScoreLabel(lang, c.Score))
			if text := strings.TrimSpace(c.Explanation); text != "" {
				sb.WriteString(text)
				sb.WriteString("\n\n")
			}
			if len(c.Actions) > 0 {
				fmt.Fprintf(&sb, "**%s:**\n\n", l.actions)
				for _, a := range c.Actions {
					fmt.Fprintf(&sb, "- %s\n", oneLine(a))
				}
				sb.WriteString("\n")
			}
		}
	}

	if len(result.Roadmap) > 0 {
		fmt.Fprintf(&sb, "## %s\n\n", l.roadmap)
		for _, step := range result.Roadmap {
			fmt.Fprintf(&sb, "%d. **%s**: %s\n", step.Priority, oneLine(step.Title), oneLine(step.Description))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "---\n\n_%s_\n", l.footer)
	return sb.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func tableCell(s string) string {
	return strings.ReplaceAll(oneLine(s), "|", `\|`)
}
