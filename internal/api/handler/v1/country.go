package v1

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/domain"
)

type CountryService interface {
	ListCountries(ctx context.Context, page domain.PageRequest, search string) (domain.Page[domain.Country], error)
}

type CountryHandler struct {
	svc CountryService
}

func NewCountryHandler(svc CountryService) *CountryHandler {
	return &CountryHandler{
		svc: svc,
	}
}

// HandleListCountries godoc
// @Summary      List countries
// @Description  Countries are created on first use when a contact references them.
// @Tags         countries
// @Produce      json
// @Param        page    query     int     false  "page number"
// @Param        limit   query     int     false  "page size"
// @Param        search  query     string  false  "search term"
// @Success      200     {object}  response.Envelope
// @Failure      401     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /countries [get]
// @Security BearerAuth
func (h *CountryHandler) HandleListCountries(ctx *gin.Context) {
	page, err := h.svc.ListCountries(ctx.Request.Context(), parsePageRequest(ctx), ctx.Query("search"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListCountries -> h.svc.ListCountries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}
