package middleware

import (
	"strings"

	"github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UserAuthTokenWithConfig 用户 Token 认证中间件（使用注入的密钥）
func UserAuthTokenWithConfig(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		response := app.NewResponse(c)

		if s, exist := c.GetQuery("authorization"); exist {
			token = s
		} else if s := c.GetHeader("Authorization"); len(s) != 0 {
			token = s
		} else if s, exist := c.GetQuery("token"); exist {
			token = s
		} else if s := c.GetHeader("Token"); len(s) != 0 {
			token = s
		}

		// Bearer 前缀可选
		token = strings.TrimPrefix(token, "Bearer ")

		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := app.ParseTokenWithKey(token, secretKey)
		if err != nil {
			response.ToResponse(code.ErrorInvalidAuthToken)
			c.Abort()
			return
		}
		c.Set("user_token", user)

		c.Next()
	}
}
