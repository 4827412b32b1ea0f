package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/jwt"
	"github.com/xiebiao/storecatalog/pkg/logger"
	"github.com/xiebiao/storecatalog/pkg/response"
)

const claimsKey = "claims"

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Bearer Token
// 2. 验证Token并检查角色可写
// 3. 将载荷注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware 创建认证中间件，jwtManager为nil时不做校验
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireWriter 要求具有写权限的Token
// 使用方式：
//
//	admin := r.Group("/api/v1")
//	admin.Use(authMiddleware.RequireWriter())
//	admin.PUT("/items/:id/position", handler.ChangeItemPosition)
func (m *AuthMiddleware) RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			c.Next()
			return
		}

		// 格式：Authorization: Bearer <token>
		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			// ErrTokenExpired、ErrInvalidToken由response.Error映射为401
			response.Error(c, err)
			return
		}
		if !claims.CanWrite() {
			response.Error(c, apperrors.ErrForbidden)
			return
		}

		c.Set(claimsKey, claims)
		ctx := c.Request.Context()
		log := logger.FromContext(ctx, zap.NewNop()).With(zap.String("operator", claims.Subject))
		c.Request = c.Request.WithContext(logger.WithContext(ctx, log))
		c.Next()
	}
}

// GetClaims 从Context获取已校验的Token载荷
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
