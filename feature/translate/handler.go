package translate

import (
	"errors"
	"strconv"

	"cs2-localizer/core/history"
	"cs2-localizer/core/jsonio"
	"cs2-localizer/core/logger"
	"cs2-localizer/core/match"
	"cs2-localizer/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response headers set by HandleTranslate.
const (
	HeaderTotal      = "X-Total-Count"
	HeaderTranslated = "X-Translated-Count"
)

// Handler handles HTTP requests for translations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the translation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/translate")
	group.Get("/categories", h.HandleCategories)
	group.Get("/history", h.HandleHistory)
	group.Post("/:category", h.HandleTranslate)
}

// HandleTranslate translates the uploaded record array.
// The response body is the translated array, formatted like the CLI output.
// @Summary Translate Records
// @Description Translates an uploaded JSON array of one category. Records that cannot be matched are returned unchanged. The counts are reported in the X-Total-Count and X-Translated-Count headers.
// @Tags translate
// @Accept json
// @Produce json
// @Param category path string true "Category name or alias (e.g. 'skins', 'stickers')"
// @Param glove query boolean false "Treat the records as gloves"
// @Param records body []object true "Records to translate"
// @Success 200 {array} object "Translated records"
// @Failure 400 {object} map[string]string "Malformed input"
// @Failure 404 {object} map[string]string "Unknown category"
// @Failure 502 {object} map[string]string "Dataset unavailable"
// @Security ApiKeyAuth
// @Router /translate/{category} [post]
func (h *Handler) HandleTranslate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cat, err := FindCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	recs, err := jsonio.DecodeRecords(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	opts := match.Options{Glove: utils.ToBool(c.Query("glove"))}
	out, stats, err := h.service.TranslateRecords(c.UserContext(), cat, recs, opts)
	if err != nil {
		l.Error("Translation failed", zap.String("category", cat.Name), zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrDatasetUnavailable) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	body, err := jsonio.Encode(out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Translated upload",
		zap.String("category", cat.Name),
		zap.Bool("glove", opts.Glove),
		zap.Int("total", stats.Total),
		zap.Int("translated", stats.Translated),
	)

	c.Set(HeaderTotal, strconv.Itoa(stats.Total))
	c.Set(HeaderTranslated, strconv.Itoa(stats.Translated))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// CategoryInfo describes a category for API clients.
type CategoryInfo struct {
	Name       string   `json:"name"`
	Label      string   `json:"label"`
	Dataset    string   `json:"dataset"`
	Inputs     []Input  `json:"inputs"`
	Strategies []string `json:"strategies"`
}

// HandleCategories lists the categories.
// @Summary List Categories
// @Description Lists the translatable categories with their input files and matching strategies.
// @Tags translate
// @Produce json
// @Success 200 {array} CategoryInfo
// @Security ApiKeyAuth
// @Router /translate/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	cats := Categories()
	infos := make([]CategoryInfo, 0, len(cats))
	for _, cat := range cats {
		infos = append(infos, CategoryInfo{
			Name:       cat.Name,
			Label:      cat.Label,
			Dataset:    cat.Dataset,
			Inputs:     cat.Inputs,
			Strategies: cat.Table().StrategyNames(),
		})
	}
	return c.JSON(infos)
}

// HandleHistory lists recent runs.
// @Summary List Run History
// @Description Lists recorded translation runs, newest first.
// @Tags translate
// @Produce json
// @Param category query string false "Only runs of this category"
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} history.Run
// @Failure 404 {object} map[string]string "Unknown category"
// @Failure 503 {object} map[string]string "History disabled"
// @Security ApiKeyAuth
// @Router /translate/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	category := c.Query("category")
	if category != "" {
		cat, err := FindCategory(category)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		category = cat.Name
	}

	runs, err := h.service.History().Recent(c.UserContext(), category, utils.ToInt(c.Query("limit")))
	if err != nil {
		if errors.Is(err, history.ErrDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("History query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}
