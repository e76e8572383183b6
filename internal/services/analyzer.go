package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/repositories"
	"alfredoptarigan/linkedin-analyzer/internal/schemas"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
)

// MinProfileTextLength is the shortest extracted text accepted as a
// LinkedIn profile.
const MinProfileTextLength = 50

type ImageUpload struct {
	MediaType string
	Data      []byte
}

// AnalyzeInput is one validated analyze request.
type AnalyzeInput struct {
	PDF        []byte
	Banner     *ImageUpload
	Photo      *ImageUpload
	Objective  string
	SkipBanner bool
	SkipPhoto  bool
	Language   scoring.Language
}

type AnalyzerService interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*models.AnalysisResult, error)
}

type analyzerService struct {
	llm           LLMService
	pdfParser     PDFParserService
	analysisRepo  repositories.AnalysisRepository
	promptBuilder *PromptBuilder
	retry         RetryPolicy
	maxTextLength int
}

// NewAnalyzerService wires the analysis pipeline. analysisRepo may be nil,
// in which case nothing is logged.
func NewAnalyzerService(
	llm LLMService,
	pdfParser PDFParserService,
	analysisRepo repositories.AnalysisRepository,
	maxRetries int,
) AnalyzerService {
	return &analyzerService{
		llm:           llm,
		pdfParser:     pdfParser,
		analysisRepo:  analysisRepo,
		promptBuilder: NewPromptBuilder(),
		retry:         NewRetryPolicy(maxRetries),
		maxTextLength: DefaultMaxTextLength,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, in AnalyzeInput) (*models.AnalysisResult, error) {
	lang := scoring.ParseLanguage(string(in.Language))

	objective, err := scoring.ParseObjective(in.Objective)
	if err != nil {
		return nil, inputError(lang, MsgInvalidObjective, err)
	}

	weights, err := scoring.RedistributeFor(objective, in.SkipBanner, in.SkipPhoto)
	if err != nil {
		log.Printf("❌ Invalid weights for objective %s: %v\n", objective, err)
		return nil, configurationError(lang, err)
	}

	log.Println("📄 Parsing profile PDF...")
	content, err := a.pdfParser.ExtractText(in.PDF)
	if err != nil {
		if errors.Is(err, ErrNotPDF) {
			return nil, inputError(lang, MsgNotPDF, err)
		}
		log.Printf("❌ PDF parse error: %v\n", err)
		return nil, inputError(lang, MsgUnreadablePDF, err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(content.Text)) < MinProfileTextLength {
		return nil, inputError(lang, MsgNotProfile, nil)
	}
	profileText := SanitizeText(content.Text, a.maxTextLength)

	hasBanner := !in.SkipBanner && in.Banner != nil
	hasPhoto := !in.SkipPhoto && in.Photo != nil

	req := ModelRequest{
		System: a.promptBuilder.BuildSystemPrompt(objective, weights, hasBanner, hasPhoto, lang),
		Text:   a.promptBuilder.BuildUserText(profileText, lang),
	}
	if hasBanner {
		req.Images = append(req.Images, ImageInput{
			MediaType: in.Banner.MediaType,
			Data:      in.Banner.Data,
			Caption:   a.promptBuilder.ImageCaption(scoring.CriterionBanner, lang),
		})
	}
	if hasPhoto {
		req.Images = append(req.Images, ImageInput{
			MediaType: in.Photo.MediaType,
			Data:      in.Photo.Data,
			Caption:   a.promptBuilder.ImageCaption(scoring.CriterionPhoto, lang),
		})
	}

	log.Printf("🤖 Analyzing profile with %s (objective: %s, %d pages)...\n", a.llm.Name(), objective, content.PageCount)
	result, outcome, err := Retry(ctx, a.retry, func(ctx context.Context, attempt int) (*models.AnalysisResult, error) {
		if attempt > 0 {
			log.Println("⚠️  Model output was malformed, retrying...")
		}
		text, err := a.llm.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		return parseAnalysis(text)
	})
	switch outcome {
	case RetrySucceeded:
	case RetryExhausted:
		log.Printf("❌ Model output still malformed after retry: %v\n", err)
		return nil, malformedError(lang, err)
	default:
		log.Printf("❌ Model call failed: %v\n", err)
		return nil, upstreamError(lang, err)
	}

	fillCriterionKeys(result, weights, lang)
	result.Objective = string(objective)
	result.ID = uuid.NewString()

	a.record(ctx, result, lang, profileText, hasBanner, hasPhoto)

	log.Printf("✅ Analysis %s completed with global score %d\n", result.ID, result.GlobalScore)
	return result, nil
}

// record appends the analysis to the log. Failures are only logged, the
// user still gets their result.
func (a *analyzerService) record(ctx context.Context, result *models.AnalysisResult, lang scoring.Language, profileText string, hasBanner, hasPhoto bool) {
	if a.analysisRepo == nil {
		return
	}

	entry, err := models.NewAnalysisEntry(result, string(lang), profileText, hasBanner, hasPhoto)
	if err != nil {
		log.Printf("⚠️  Failed to build analysis log entry: %v\n", err)
		return
	}

	log.Println("💾 Saving analysis...")
	if err := a.analysisRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("⚠️  Failed to save analysis %s: %v\n", result.ID, err)
	}
}

func parseAnalysis(text string) (*models.AnalysisResult, error) {
	raw := schemas.ExtractJSON(text)
	if err := schemas.ValidateAnalysis([]byte(raw)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal JSON: %v", ErrMalformedOutput, err)
	}
	return &result, nil
}

// fillCriterionKeys restores the key of criteria the model returned with
// only a label.
func fillCriterionKeys(result *models.AnalysisResult, weights scoring.WeightTable, lang scoring.Language) {
	byLabel := make(map[string]scoring.Criterion, len(weights))
	for _, c := range weights.Keys() {
		byLabel[strings.ToLower(scoring.CriterionLabel(lang, c))] = c
	}

	for i := range result.Criteria {
		c := &result.Criteria[i]
		if c.Key != "" {
			continue
		}
		if key, ok := byLabel[strings.ToLower(strings.TrimSpace(c.Name))]; ok {
			c.Key = string(key)
		}
	}
}
