// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"context"

	"github.com/haierkeys/env-share-service/internal/app"
	"github.com/haierkeys/env-share-service/internal/middleware"

	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有 API Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// logError records error log, including Trace ID
// logError 记录错误日志，附带 Trace ID
func (h *Handler) logError(ctx context.Context, scene string, err error) {
	h.App.Logger().Error(scene+" failed",
		zap.String("trace_id", middleware.GetTraceID(ctx)),
		zap.Error(err),
	)
}
