package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/service"
	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type UserService interface {
	ListUsers(ctx context.Context, query service.UserListQuery) (domain.Page[domain.User], error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc   UserService
	cache *viewcache.Cache
}

func NewUserHandler(svc UserService, cache *viewcache.Cache) *UserHandler {
	return &UserHandler{
		svc:   svc,
		cache: cache,
	}
}

func (h *UserHandler) invalidateViews() {
	h.cache.Invalidate("/api/v1/users")
}

// HandleListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page    query     int     false  "page number"
// @Param        limit   query     int     false  "page size"
// @Param        search  query     string  false  "search term"
// @Param        role    query     string  false  "role filter"
// @Success      200     {object}  response.Envelope
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	page, err := h.svc.ListUsers(ctx.Request.Context(), service.UserListQuery{
		Page:   parsePageRequest(ctx),
		Search: ctx.Query("search"),
		Role:   domain.UserRole(ctx.Query("role")),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, page)
}

// HandleGetUser godoc
// @Summary      Get one user
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, user)
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users [post]
// @Security BearerAuth
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateUser(ctx.Request.Context(), domain.User{
		Email:             req.Email,
		Password:          req.Password,
		Name:              req.Name,
		Role:              domain.UserRole(req.Role),
		Department:        req.Department,
		Status:            req.Status,
		CanManageEvents:   req.CanManageEvents,
		CanManageUsers:    req.CanManageUsers,
		CanManageInvoices: req.CanManageInvoices,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderCreated(ctx, created)
}

// HandleUpdateUser godoc
// @Summary      Update a user
// @Description  Email and password never change through this endpoint.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      int                        true  "user ID"
// @Param        request  body      request.UpdateUserRequest  true  "request body"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [put]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateUserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateUser(ctx.Request.Context(), domain.User{
		ID:                id,
		Name:              req.Name,
		Role:              domain.UserRole(req.Role),
		Department:        req.Department,
		Status:            req.Status,
		CanManageEvents:   req.CanManageEvents,
		CanManageUsers:    req.CanManageUsers,
		CanManageInvoices: req.CanManageInvoices,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, updated)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  response.Envelope
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID} [delete]
// @Security BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.invalidateViews()
	response.RenderOK(ctx, gin.H{"deleted": id})
}
