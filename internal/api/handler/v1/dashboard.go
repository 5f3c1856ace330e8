package v1

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/service"
)

type DashboardService interface {
	GetStats(ctx context.Context) (service.DashboardStats, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboardStats godoc
// @Summary      Aggregate counts for the dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard/stats [get]
// @Security BearerAuth
func (h *DashboardHandler) HandleGetDashboardStats(ctx *gin.Context) {
	stats, err := h.svc.GetStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboardStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, stats)
}
