package services

import "alfredoptarigan/linkedin-analyzer/internal/scoring"

// MessageKey identifies a user-facing error message.
type MessageKey string

const (
	MsgPDFRequired        MessageKey = "pdf_required"
	MsgPDFTooLarge        MessageKey = "pdf_too_large"
	MsgNotPDF             MessageKey = "not_pdf"
	MsgUnreadablePDF      MessageKey = "unreadable_pdf"
	MsgNotProfile         MessageKey = "not_profile"
	MsgImageTooLarge      MessageKey = "image_too_large"
	MsgImageType          MessageKey = "image_type"
	MsgInvalidObjective   MessageKey = "invalid_objective"
	MsgInvalidForm        MessageKey = "invalid_form"
	MsgVerificationFailed MessageKey = "verification_failed"
	MsgConfiguration      MessageKey = "configuration"
	MsgUnavailable        MessageKey = "unavailable"
	MsgRateLimited        MessageKey = "rate_limited"
	MsgTooManyRequests    MessageKey = "too_many_requests"
	MsgCredits            MessageKey = "credits"
	MsgModelCall          MessageKey = "model_call"
	MsgAnalysisFailed     MessageKey = "analysis_failed"
	MsgGeneric            MessageKey = "generic"
	MsgForbidden          MessageKey = "forbidden"
	MsgNotFound           MessageKey = "not_found"
)

var messages = map[scoring.Language]map[MessageKey]string{
	scoring.LanguageFrench: {
		MsgPDFRequired:        "Le fichier PDF est requis.",
		MsgPDFTooLarge:        "Fichier trop volumineux (max 10 Mo).",
		MsgNotPDF:             "Le fichier ne semble pas être un PDF valide.",
		MsgUnreadablePDF:      "Impossible de lire le PDF. Vérifiez que le fichier n'est pas corrompu.",
		MsgNotProfile:         "Le PDF ne semble pas contenir un profil LinkedIn valide. Assurez-vous d'exporter votre profil via \"Enregistrer en PDF\" sur LinkedIn.",
		MsgImageTooLarge:      "L'image dépasse la taille maximale de 5 Mo.",
		MsgImageType:          "Type de fichier non autorisé. Formats acceptés : JPEG, PNG, WebP.",
		MsgInvalidObjective:   "Objectif invalide.",
		MsgInvalidForm:        "Formulaire invalide.",
		MsgVerificationFailed: "Vérification CAPTCHA échouée. Veuillez rafraîchir la page et réessayer.",
		MsgConfiguration:      "Configuration de notation invalide.",
		MsgUnavailable:        "Service temporairement indisponible. Veuillez réessayer plus tard.",
		MsgRateLimited:        "Limite de l'API atteinte. Réessayez dans quelques minutes.",
		MsgTooManyRequests:    "Trop de requêtes. Veuillez réessayer plus tard.",
		MsgCredits:            "Crédits du fournisseur d'IA insuffisants.",
		MsgModelCall:          "Erreur lors de l'appel au modèle d'IA. Veuillez réessayer.",
		MsgAnalysisFailed:     "L'analyse a échoué. Veuillez réessayer.",
		MsgGeneric:            "Une erreur est survenue. Veuillez réessayer.",
		MsgForbidden:          "Accès interdit.",
		MsgNotFound:           "Analyse introuvable.",
	},
	scoring.LanguageEnglish: {
		MsgPDFRequired:        "The PDF file is required.",
		MsgPDFTooLarge:        "File too large (max 10 MB).",
		MsgNotPDF:             "The file does not look like a valid PDF.",
		MsgUnreadablePDF:      "Unable to read the PDF. Check that the file is not corrupted.",
		MsgNotProfile:         "The PDF does not look like a valid LinkedIn profile. Make sure you export your profile with \"Save to PDF\" on LinkedIn.",
		MsgImageTooLarge:      "The image exceeds the maximum size of 5 MB.",
		MsgImageType:          "File type not allowed. Accepted formats: JPEG, PNG, WebP.",
		MsgInvalidObjective:   "Invalid objective.",
		MsgInvalidForm:        "Invalid form.",
		MsgVerificationFailed: "CAPTCHA verification failed. Please refresh the page and try again.",
		MsgConfiguration:      "Invalid scoring configuration.",
		MsgUnavailable:        "Service temporarily unavailable. Please try again later.",
		MsgRateLimited:        "API limit reached. Try again in a few minutes.",
		MsgTooManyRequests:    "Too many requests. Please try again later.",
		MsgCredits:            "Insufficient AI provider credits.",
		MsgModelCall:          "Error while calling the AI model. Please try again.",
		MsgAnalysisFailed:     "The analysis failed. Please try again.",
		MsgGeneric:            "An error occurred. Please try again.",
		MsgForbidden:          "Access denied.",
		MsgNotFound:           "Analysis not found.",
	},
}

// Message returns the localized text for key, in French when lang is not
// supported.
func Message(lang scoring.Language, key MessageKey) string {
	if msg, ok := messages[scoring.ParseLanguage(string(lang))][key]; ok {
		return msg
	}
	return string(key)
}
