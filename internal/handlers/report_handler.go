package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/linkedin-analyzer/internal/models"
	"alfredoptarigan/linkedin-analyzer/internal/report"
	"alfredoptarigan/linkedin-analyzer/internal/repositories"
	"alfredoptarigan/linkedin-analyzer/internal/schemas"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
	"alfredoptarigan/linkedin-analyzer/internal/services"
)

type ReportHandler struct {
	analysisRepo repositories.AnalysisRepository
	generator    *report.Generator
}

func NewReportHandler(analysisRepo repositories.AnalysisRepository, generator *report.Generator) *ReportHandler {
	return &ReportHandler{
		analysisRepo: analysisRepo,
		generator:    generator,
	}
}

// HandleRenderReport renders the analysis result posted as the body.
func (h *ReportHandler) HandleRenderReport(c *fiber.Ctx) error {
	lang := scoring.ParseLanguage(c.Query("lang"))

	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	body := c.Body()
	if err := schemas.ValidateAnalysis(body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("invalid analysis result: %v", err))
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Sprintf("invalid analysis result: %v", err))
	}

	return h.send(c, &result, lang, format)
}

// HandleAnalysisReport renders the report of a logged analysis.
func (h *ReportHandler) HandleAnalysisReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid analysis ID format")
	}

	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	if h.analysisRepo == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "analysis log is not configured")
	}

	entry, err := h.analysisRepo.FindByID(c.UserContext(), id)
	if err != nil {
		lang := scoring.ParseLanguage(c.Query("lang"))
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return errorJSON(c, fiber.StatusNotFound, services.Message(lang, services.MsgNotFound))
		}
		log.Printf("❌ Failed to load analysis %s: %v\n", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, services.Message(lang, services.MsgGeneric))
	}

	lang := scoring.ParseLanguage(c.Query("lang", entry.Lang))

	result, err := entry.AnalysisResult()
	if err != nil {
		log.Printf("❌ Stored analysis %s is unreadable: %v\n", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, services.Message(lang, services.MsgGeneric))
	}

	return h.send(c, result, lang, format)
}

func (h *ReportHandler) send(c *fiber.Ctx, result *models.AnalysisResult, lang scoring.Language, format report.Format) error {
	out, err := h.generator.Render(c.UserContext(), result, lang, format)
	if err != nil {
		log.Printf("❌ Failed to render %s report: %v\n", format, err)
		return errorJSON(c, fiber.StatusInternalServerError, services.Message(lang, services.MsgGeneric))
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="linkedin-analysis.%s"`, format.Extension()))
	return c.Send(out)
}
