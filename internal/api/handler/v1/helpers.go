package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/domain"
)

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}

// parsePageRequest reads page/limit query parameters. Missing or malformed
// values are left zero; the service clamps them to defaults.
func parsePageRequest(ctx *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(ctx.Query("page"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	return domain.PageRequest{
		Page:  page,
		Limit: limit,
	}
}
