package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/api/handler/v1/response"
	"github.com/eventdesk/eventdesk-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT rejects any request without a valid bearer token and stores the
// caller's identity in the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing authorization header"))
			ctx.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized("malformed authorization header"))
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid or expired token"))
			ctx.Abort()
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireRole allows the request through only for the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(ctx *gin.Context) {
		role := ctx.GetString(ContextKeyRole)
		if !allowed[role] {
			response.RenderErr(ctx, &response.Err{
				StatusCode: 403,
				Message:    "permission denied",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
