package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

func TestBuildSystemPrompt_English(t *testing.T) {
	weights, err := scoring.RedistributeFor(scoring.ObjectiveClients, false, false)
	require.NoError(t, err)

	prompt := NewPromptBuilder().BuildSystemPrompt(scoring.ObjectiveClients, weights, true, false, scoring.LanguageEnglish)

	assert.Contains(t, prompt, "Find clients")
	assert.Contains(t, prompt, "- Headline : 20%")
	assert.Contains(t, prompt, "- Banner : 15%")
	assert.Contains(t, prompt, "provided their LinkedIn banner as an image")
	assert.Contains(t, prompt, "neutral score of 50")
	assert.Contains(t, prompt, `"key": "coherence"`)
	assert.Contains(t, prompt, `"name": "Key Skills"`)
	assert.Contains(t, prompt, "All of your response must be in English.")
}

func TestBuildSystemPrompt_French(t *testing.T) {
	weights, err := scoring.RedistributeFor(scoring.ObjectiveRecruiters, false, false)
	require.NoError(t, err)

	prompt := NewPromptBuilder().BuildSystemPrompt(scoring.ObjectiveRecruiters, weights, false, true, "")

	assert.Contains(t, prompt, "Expériences : 25%")
	assert.Contains(t, prompt, "Utilise le vouvoiement.")
	assert.Contains(t, prompt, "sa photo de profil en image")
	assert.NotContains(t, prompt, "in English")
}

func TestBuildSystemPrompt_SkippedCriteriaAreExcluded(t *testing.T) {
	weights, err := scoring.RedistributeFor(scoring.ObjectiveBranding, true, true)
	require.NoError(t, err)

	prompt := NewPromptBuilder().BuildSystemPrompt(scoring.ObjectiveBranding, weights, false, false, scoring.LanguageEnglish)

	assert.NotContains(t, prompt, "- Banner :")
	assert.NotContains(t, prompt, "- Profile photo :")
	assert.NotContains(t, prompt, `"key": "banner"`)
	assert.NotContains(t, prompt, `"key": "photo"`)
	assert.Contains(t, prompt, "The banner has been excluded from the analysis")
	assert.Contains(t, prompt, "The profile photo has been excluded from the analysis")
}

func TestBuildUserText(t *testing.T) {
	pb := NewPromptBuilder()
	assert.Equal(t, "Here is the text extracted from the LinkedIn profile:\n\nJane", pb.BuildUserText("Jane", scoring.LanguageEnglish))
	assert.Equal(t, "Voici le texte extrait du profil LinkedIn :\n\nJane", pb.BuildUserText("Jane", scoring.LanguageFrench))
}

func TestImageCaption(t *testing.T) {
	pb := NewPromptBuilder()
	assert.Contains(t, pb.ImageCaption(scoring.CriterionBanner, scoring.LanguageEnglish), "LinkedIn banner")
	assert.Contains(t, pb.ImageCaption(scoring.CriterionPhoto, scoring.LanguageFrench), "photo de profil")
	assert.Empty(t, pb.ImageCaption(scoring.CriterionSkills, scoring.LanguageEnglish))
}
