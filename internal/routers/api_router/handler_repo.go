package api_router

import (
	"github.com/haierkeys/env-share-service/internal/app"
	"github.com/haierkeys/env-share-service/internal/dto"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"
	apperrors "github.com/haierkeys/env-share-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// RepoHandler repository API router handler
// RepoHandler 仓库 API 路由处理器
type RepoHandler struct {
	*Handler
}

// NewRepoHandler creates RepoHandler instance
// NewRepoHandler 创建 RepoHandler 实例
func NewRepoHandler(a *app.App) *RepoHandler {
	return &RepoHandler{
		Handler: NewHandler(a),
	}
}

// List lists the authenticated user's repositories
// List 列出当前用户的仓库，支持全名子串过滤
func (h *RepoHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.RepoListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	list, err := h.App.RepoService.List(ctx, uid, params.Query)
	if err != nil {
		h.logError(ctx, "RepoHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}

// RemoteList proxies the hosting provider's repository listing
// RemoteList 代理托管平台的仓库列表，访问令牌只透传不落库
func (h *RepoHandler) RemoteList(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.RepoRemoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()

	list, err := h.App.RepoService.RemoteList(ctx, params.AccessToken, params.Query)
	if err != nil {
		h.logError(ctx, "RepoHandler.RemoteList", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}
