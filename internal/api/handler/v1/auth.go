package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/request"
	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/config"
	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/pkg/jwthelper"
	"github.com/eventdesk/eventdesk-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// LoginResponse carries the signed token alongside the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.SignupRequest  true  "request body"
// @Success      201      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleViewer
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       role,
		Department: req.Department,
		Status:     "active",
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderCreated(ctx, user)
}

// HandleLogin godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized("incorrect email or password"))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, user.ID, string(user.Role))
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, LoginResponse{
		Token: token,
		User:  user,
	})
}
