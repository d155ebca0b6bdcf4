package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-trajectory-service/internal/pkg/utils"
	"github.com/route-trajectory-service/internal/usecase"
	"github.com/route-trajectory-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// LineHandler serves line lookups to the presentation layer.
type LineHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewLineHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *LineHandler {
	return &LineHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetLine resolves one line and all of its patterns, parent-route long
// names included, in the line's own pattern order.
func (h *LineHandler) GetLine(c *fiber.Ctx) error {
	lineID := c.Params("id")

	line, err := h.routeUC.ResolveLine(c.Context(), lineID)
	if err != nil {
		return utils.SendError(c, err)
	}

	patterns, err := h.routeUC.ResolvePatterns(c.Context(), line.ID, line.Patterns)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ConvertLine(line, patterns), &utils.Meta{
		Total: len(patterns),
	})
}

// GetShape returns the raw geographic payload of one shape.
func (h *LineHandler) GetShape(c *fiber.Ctx) error {
	shape, err := h.routeUC.ResolveShape(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, shape, nil)
}
