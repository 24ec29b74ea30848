package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors creates cross-origin resource sharing middleware
// Cors 创建跨域资源共享中间件
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, Token")
		c.Header("Access-Control-Max-Age", "3600")

		// 预检请求直接放行
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
