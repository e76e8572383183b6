package handlers

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/linkedin-analyzer/internal/repositories"
	"alfredoptarigan/linkedin-analyzer/internal/scoring"
	"alfredoptarigan/linkedin-analyzer/internal/services"
)

type AdminHandler struct {
	analysisRepo repositories.AnalysisRepository
	adminKey     string
}

func NewAdminHandler(analysisRepo repositories.AnalysisRepository, adminKey string) *AdminHandler {
	return &AdminHandler{
		analysisRepo: analysisRepo,
		adminKey:     strings.TrimSpace(adminKey),
	}
}

// HandleListAnalyses returns the analysis log, newest first.
func (h *AdminHandler) HandleListAnalyses(c *fiber.Ctx) error {
	lang := scoring.ParseLanguage(c.Query("lang"))

	key := strings.TrimSpace(c.Query("key"))
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
		return errorJSON(c, fiber.StatusForbidden, services.Message(lang, services.MsgForbidden))
	}

	if h.analysisRepo == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "analysis log is not configured")
	}

	analyses, err := h.analysisRepo.List(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		log.Printf("❌ Failed to read analysis log: %v\n", err)
		return errorJSON(c, fiber.StatusInternalServerError, services.Message(lang, services.MsgGeneric))
	}

	return c.JSON(analyses)
}
