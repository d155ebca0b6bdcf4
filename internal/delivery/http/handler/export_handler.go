package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/route-trajectory-service/internal/domain"
	"github.com/route-trajectory-service/internal/pkg/errors"
	"github.com/route-trajectory-service/internal/pkg/utils"
	"github.com/route-trajectory-service/internal/pkg/validator"
	"github.com/route-trajectory-service/internal/usecase"
	"github.com/route-trajectory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// ExportHandler turns a selected pattern into a downloadable GPX file.
type ExportHandler struct {
	routeUC   *usecase.RouteUseCase
	exportUC  *usecase.ExportUseCase
	selection *usecase.SelectionManager
	logger    *zap.Logger
}

func NewExportHandler(
	routeUC *usecase.RouteUseCase,
	exportUC *usecase.ExportUseCase,
	selection *usecase.SelectionManager,
	logger *zap.Logger,
) *ExportHandler {
	return &ExportHandler{
		routeUC:   routeUC,
		exportUC:  exportUC,
		selection: selection,
		logger:    logger,
	}
}

// DownloadGPX resolves the pattern, selects it, fetches its shape through
// the selection manager and streams back the rendered GPX document.
func (h *ExportHandler) DownloadGPX(c *fiber.Ctx) error {
	var query dto.ExportQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if err := validator.Validate(&query); err != nil {
		return utils.SendError(c, errors.New(
			errors.CodeValidation,
			"Invalid query parameters",
			fiber.StatusBadRequest,
		).WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	line, err := h.routeUC.ResolveLine(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	patterns, err := h.routeUC.ResolvePatterns(c.Context(), line.ID, []string{c.Params("patternId")})
	if err != nil {
		return utils.SendError(c, err)
	}
	pattern := patterns[0]

	shape, err := h.selection.Select(c.Context(), pattern)
	if err != nil {
		return utils.SendError(c, err)
	}

	parts := domain.SplitHeadsign(pattern.Headsign)
	trackName := query.TrackName
	if trackName == "" {
		trackName = pattern.Headsign
	}

	document, err := h.exportUC.ToGPX(shape, parts.Origin, parts.Destination, trackName)
	if err != nil {
		return utils.SendError(c, err)
	}

	filename := h.exportUC.Filename(line.ShortName, pattern.Headsign)
	c.Set(fiber.HeaderContentType, "application/gpx+xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	h.logger.Info("GPX export",
		zap.String("line_id", line.ID),
		zap.String("pattern_id", pattern.ID),
		zap.String("filename", filename))

	return c.SendString(document)
}

// GetSelection exposes the current selection snapshot for the debug UI.
func (h *ExportHandler) GetSelection(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.ConvertSelection(h.selection.Current()), nil)
}
