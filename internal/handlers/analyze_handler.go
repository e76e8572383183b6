package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
	"alfredoptarigan/linkedin-analyzer/internal/services"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	verifier     services.TurnstileVerifier
	maxPDFSize   int64
	maxImageSize int64
	production   bool
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	verifier services.TurnstileVerifier,
	maxPDFSize int64,
	maxImageSize int64,
	production bool,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		verifier:     verifier,
		maxPDFSize:   maxPDFSize,
		maxImageSize: maxImageSize,
		production:   production,
	}
}

func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	lang := scoring.ParseLanguage(c.FormValue("lang"))

	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgInvalidForm))
	}

	req := models.AnalyzeRequest{
		Objective:      c.FormValue("objective"),
		SkipBanner:     formBool(c.FormValue("skipBanner")),
		SkipPhoto:      formBool(c.FormValue("skipPhoto")),
		Lang:           c.FormValue("lang"),
		TurnstileToken: c.FormValue("turnstileToken"),
	}

	if err := h.verifier.Verify(c.UserContext(), req.TurnstileToken, c.IP()); err != nil {
		log.Printf("⚠️  Captcha rejected for %s: %v\n", c.IP(), err)
		return h.analysisError(c, services.VerificationError(lang, err))
	}

	pdfHeader := firstFile(form, "pdf")
	if pdfHeader == nil {
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgPDFRequired))
	}
	if pdfHeader.Size > h.maxPDFSize {
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgPDFTooLarge))
	}

	if err := req.Validate(); err != nil {
		if models.InvalidField(err) == "Objective" {
			return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgInvalidObjective))
		}
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgInvalidForm))
	}

	pdfData, err := readFile(pdfHeader)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgUnreadablePDF))
	}
	if !services.IsPDF(pdfData) {
		return errorJSON(c, fiber.StatusBadRequest, services.Message(lang, services.MsgNotPDF))
	}

	input := services.AnalyzeInput{
		PDF:        pdfData,
		Objective:  req.Objective,
		SkipBanner: req.SkipBanner,
		SkipPhoto:  req.SkipPhoto,
		Language:   lang,
	}

	if !req.SkipBanner {
		if input.Banner, err = h.readImage(form, "banner", lang); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if !req.SkipPhoto {
		if input.Photo, err = h.readImage(form, "photo", lang); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
	}

	result, err := h.analyzer.Analyze(c.UserContext(), input)
	if err != nil {
		var ae *services.AnalysisError
		if errors.As(err, &ae) {
			return h.analysisError(c, ae)
		}
		log.Printf("❌ Analyze error: %v\n", err)
		return errorJSON(c, fiber.StatusInternalServerError, services.Message(lang, services.MsgGeneric))
	}

	return c.JSON(result)
}

func (h *AnalyzeHandler) analysisError(c *fiber.Ctx, ae *services.AnalysisError) error {
	return errorJSON(c, ae.Status, ae.PublicMessage(h.production))
}

// readImage returns nil when the field was not uploaded. The media type is
// sniffed from the content rather than taken from the part header.
func (h *AnalyzeHandler) readImage(form *multipart.Form, field string, lang scoring.Language) (*services.ImageUpload, error) {
	header := firstFile(form, field)
	if header == nil {
		return nil, nil
	}
	if header.Size > h.maxImageSize {
		return nil, errors.New(services.Message(lang, services.MsgImageTooLarge))
	}

	data, err := readFile(header)
	if err != nil {
		return nil, errors.New(services.Message(lang, services.MsgInvalidForm))
	}

	mediaType := http.DetectContentType(data)
	if !slices.Contains(allowedImageTypes, mediaType) {
		return nil, errors.New(services.Message(lang, services.MsgImageType))
	}

	return &services.ImageUpload{MediaType: mediaType, Data: data}, nil
}

func firstFile(form *multipart.Form, field string) *multipart.FileHeader {
	if files, exists := form.File[field]; exists && len(files) > 0 {
		return files[0]
	}
	return nil
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return data, nil
}

func formBool(value string) bool {
	b, _ := strconv.ParseBool(value)
	return b
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// LimitReached answers requests rejected by the rate limiter.
func LimitReached(c *fiber.Ctx) error {
	lang := scoring.ParseLanguage(c.Query("lang", c.FormValue("lang")))
	return errorJSON(c, fiber.StatusTooManyRequests, services.Message(lang, services.MsgTooManyRequests))
}
