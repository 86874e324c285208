package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
	"github.com/oksasatya/go-catalog-admin/pkg/response"
)

const (
	CtxSubjectKey = "subject"
	CtxRoleKey    = "role"
)

// Auth validates the bearer access token and stores its subject and role in
// the Gin context. A nil manager disables the check.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	if jwt == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, response.Error[any](c, http.StatusUnauthorized, "missing access token", nil))
			return
		}
		claims, err := jwt.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error()))
			return
		}
		c.Set(CtxSubjectKey, claims.Subject)
		c.Set(CtxRoleKey, claims.Role)
		c.Next()
	}
}
