package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSystemPrompt creates the system prompt for one profile analysis.
// Only the criteria present in weights are requested from the model.
func (pb *PromptBuilder) BuildSystemPrompt(objective scoring.Objective, weights scoring.WeightTable, hasBanner, hasPhoto bool, lang scoring.Language) string {
	lang = scoring.ParseLanguage(string(lang))
	_, bannerScored := weights[scoring.CriterionBanner]
	_, photoScored := weights[scoring.CriterionPhoto]

	objectiveLabel := scoring.ObjectiveLabel(lang, objective)
	weightsTable := pb.buildWeightsTable(weights, lang)
	bannerInstruction := bannerInstruction(lang, hasBanner, bannerScored)
	photoInstruction := photoInstruction(lang, hasPhoto, photoScored)
	criteria := pb.buildCriteriaContract(weights, lang)

	if lang == scoring.LanguageEnglish {
		return fmt.Sprintf(`You are an expert in LinkedIn profile optimization. You analyze LinkedIn profiles and provide detailed scores and actionable recommendations.

The user has the following goal: %s

Here are the criteria weights for this goal:
%s

%s

%s
%s

Analyze the following LinkedIn profile and return ONLY a valid JSON object (no markdown, no backticks, no comments) with this exact structure:

{
  "globalScore": <integer 0-100>,
  "globalLabel": "<Weak|Average|Good|Excellent>",
  "globalAnalysis": "<3-5 sentences describing strengths, weaknesses and overall impression>",
  "criteria": %s,
  "roadmap": [
    { "priority": 1, "title": "<string>", "description": "<1-2 sentences>" },
    { "priority": 2, "title": "<string>", "description": "<1-2 sentences>" },
    { "priority": 3, "title": "<string>", "description": "<1-2 sentences>" },
    { "priority": 4, "title": "<string>", "description": "<1-2 sentences>" }
  ]
}

SCORING RULES:
- globalScore is the weighted average of the criteria scores using the weights above.
- Each criterion is scored out of 100.
- Be demanding but fair. An average profile should score between 40 and 60.
- Recommendations must be SPECIFIC to the analyzed profile, not generic.
- Address the user directly.
- globalLabel: Weak (0-39), Average (40-59), Good (60-79), Excellent (80-100).
- Roadmap actions must be concrete and directly actionable.
- Return ONLY the JSON, with no text before or after.
- All of your response must be in English.`,
			objectiveLabel, weightsTable, bannerInstruction, photoInstruction, scoringGridsEN, criteria)
	}

	return fmt.Sprintf(`Tu es un expert en optimisation de profils LinkedIn. Tu analyses des profils LinkedIn et fournis des scores détaillés et des recommandations actionnables.

L'utilisateur a l'objectif suivant : %s

Voici les pondérations des critères pour cet objectif :
%s

%s

%s
%s

Analyse le profil LinkedIn suivant et retourne UNIQUEMENT un objet JSON valide (sans markdown, sans backticks, sans commentaires) avec cette structure exacte :

{
  "globalScore": <entier 0-100>,
  "globalLabel": "<Faible|Moyen|Bon|Excellent>",
  "globalAnalysis": "<3-5 phrases décrivant les points forts, points faibles et impression générale>",
  "criteria": %s,
  "roadmap": [
    { "priority": 1, "title": "<string>", "description": "<1-2 phrases>" },
    { "priority": 2, "title": "<string>", "description": "<1-2 phrases>" },
    { "priority": 3, "title": "<string>", "description": "<1-2 phrases>" },
    { "priority": 4, "title": "<string>", "description": "<1-2 phrases>" }
  ]
}

RÈGLES DE SCORING :
- globalScore est la moyenne pondérée des scores de chaque critère selon les poids fournis.
- Chaque critère est noté sur 100.
- Sois exigeant mais juste. Un profil moyen devrait avoir entre 40 et 60.
- Les recommandations doivent être SPÉCIFIQUES au profil analysé, pas génériques.
- Utilise le vouvoiement.
- globalLabel : Faible (0-39), Moyen (40-59), Bon (60-79), Excellent (80-100).
- Les actions de la feuille de route doivent être concrètes et directement actionnables.
- Retourne UNIQUEMENT le JSON, sans aucun texte avant ou après.`,
		objectiveLabel, weightsTable, bannerInstruction, photoInstruction, scoringGridsFR, criteria)
}

// BuildUserText wraps the extracted profile text for the user message.
func (pb *PromptBuilder) BuildUserText(profileText string, lang scoring.Language) string {
	if scoring.ParseLanguage(string(lang)) == scoring.LanguageEnglish {
		return "Here is the text extracted from the LinkedIn profile:\n\n" + profileText
	}
	return "Voici le texte extrait du profil LinkedIn :\n\n" + profileText
}

// ImageCaption is the text that follows an attached banner or photo.
func (pb *PromptBuilder) ImageCaption(c scoring.Criterion, lang scoring.Language) string {
	en := scoring.ParseLanguage(string(lang)) == scoring.LanguageEnglish
	switch c {
	case scoring.CriterionBanner:
		if en {
			return "Above is the user's LinkedIn banner. Analyze it visually."
		}
		return "Ci-dessus la bannière LinkedIn de l'utilisateur. Analysez-la visuellement."
	case scoring.CriterionPhoto:
		if en {
			return "Above is the user's profile photo. Analyze it visually: professionalism, quality, smile, background, consistency with their goal."
		}
		return "Ci-dessus la photo de profil de l'utilisateur. Analysez-la visuellement : professionnalisme, qualité, sourire, arrière-plan, cohérence avec l'objectif."
	}
	return ""
}

func (pb *PromptBuilder) buildWeightsTable(weights scoring.WeightTable, lang scoring.Language) string {
	lines := make([]string, 0, len(weights))
	for _, c := range weights.Keys() {
		lines = append(lines, fmt.Sprintf("- %s : %d%%", scoring.CriterionLabel(lang, c), weights[c]))
	}
	return strings.Join(lines, "\n")
}

func (pb *PromptBuilder) buildCriteriaContract(weights scoring.WeightTable, lang scoring.Language) string {
	sentences := "phrases"
	if lang == scoring.LanguageEnglish {
		sentences = "sentences"
	}

	entries := make([]string, 0, len(weights))
	for _, c := range weights.Keys() {
		entries = append(entries, fmt.Sprintf(
			`{ "key": %q, "name": %q, "score": <0-100>, "weight": %d, "explanation": "<2-3 %s>", "actions": ["<action 1>", "<action 2>"] }`,
			string(c), scoring.CriterionLabel(lang, c), weights[c], sentences,
		))
	}
	return "[\n    " + strings.Join(entries, ",\n    ") + "\n  ]"
}

func bannerInstruction(lang scoring.Language, provided, scored bool) string {
	en := lang == scoring.LanguageEnglish
	switch {
	case provided && en:
		return "The user has provided their LinkedIn banner as an image. Analyze it visually: message clarity, graphic quality, consistency with professional positioning."
	case provided:
		return "L'utilisateur a fourni sa bannière LinkedIn en image. Analysez-la visuellement : clarté du message, qualité graphique, cohérence avec le positionnement professionnel."
	case scored && en:
		return "The banner was not provided as an image. Evaluate this criterion cautiously based on any mentions in the profile. If no information is available, assign a neutral score of 50 and recommend adding a professional banner consistent with their positioning."
	case scored:
		return "La bannière n'a pas été fournie en image. Évaluez ce critère avec prudence en vous basant sur les éventuelles mentions dans le profil. Si aucune information n'est disponible, attribuez un score neutre de 50 et recommandez d'ajouter une bannière professionnelle et cohérente avec son positionnement."
	case en:
		return "The banner has been excluded from the analysis by the user. Do not include it in the criteria."
	default:
		return "La bannière a été exclue de l'analyse par l'utilisateur. Ne l'incluez pas dans les critères."
	}
}

func photoInstruction(lang scoring.Language, provided, scored bool) string {
	en := lang == scoring.LanguageEnglish
	switch {
	case provided && en:
		return "The user has provided their profile photo as an image. Analyze it visually: professionalism, image quality, smile, background, consistency with their stated goal."
	case provided:
		return "L'utilisateur a fourni sa photo de profil en image. Analysez-la visuellement : professionnalisme, qualité de l'image, sourire, arrière-plan, cohérence avec l'objectif."
	case scored && en:
		return "The profile photo was not provided as an image and is not available in the exported LinkedIn PDF. Evaluate this criterion cautiously based on available clues. If no information is available, assign a neutral score of 50 and recommend a high-quality professional photo."
	case scored:
		return "La photo de profil n'a pas été fournie en image et n'est pas disponible dans le PDF LinkedIn exporté. Évaluez ce critère avec prudence, en vous basant sur les indices disponibles. Si aucune information n'est disponible, attribuez un score neutre de 50 et recommandez une photo professionnelle de haute qualité."
	case en:
		return "The profile photo has been excluded from the analysis by the user. Do not include it in the criteria."
	default:
		return "La photo de profil a été exclue de l'analyse par l'utilisateur. Ne l'incluez pas dans les critères."
	}
}
