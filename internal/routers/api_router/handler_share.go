package api_router

import (
	"net/http"

	"github.com/haierkeys/env-share-service/internal/app"
	"github.com/haierkeys/env-share-service/internal/dto"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"
	apperrors "github.com/haierkeys/env-share-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ShareHandler share link API router handler
// ShareHandler 分享链接 API 路由处理器
// Issue/List/Revoke 需要认证，Resolve/ResolveRaw 凭 Token 公开访问
type ShareHandler struct {
	*Handler
}

// NewShareHandler creates ShareHandler instance
// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(a *app.App) *ShareHandler {
	return &ShareHandler{
		Handler: NewHandler(a),
	}
}

// Issue creates a share link bound to one scope
// Issue 签发绑定单一范围的分享链接，仅返回 Token 与过期时间
func (h *ShareHandler) Issue(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	result, err := h.App.ShareService.Issue(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "ShareHandler.Issue", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessCreated.WithData(result))
}

// List lists the authenticated user's share links, newest first
// List 列出当前用户的分享链接，按创建时间倒序
func (h *ShareHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	list, err := h.App.ShareService.List(ctx, uid)
	if err != nil {
		h.logError(ctx, "ShareHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponseList(code.Success, list, len(list))
}

// Revoke marks a share link revoked
// Revoke 撤销分享链接，仅限所有者
func (h *ShareHandler) Revoke(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareRevokeRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.ShareService.Revoke(ctx, uid, params.ID); err != nil {
		h.logError(ctx, "ShareHandler.Revoke", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// Resolve exchanges a token for the scoped variable view
// Resolve 凭 Token 换取范围内变量视图，无需登录
func (h *ShareHandler) Resolve(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	view, err := h.App.ShareService.Resolve(ctx, c.Param("token"))
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(view))
}

// ResolveRaw downloads the resolved scope as a .env file
// ResolveRaw 凭 Token 下载范围内变量渲染的 .env 附件
func (h *ShareHandler) ResolveRaw(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := h.App.ShareService.ResolveRaw(ctx, c.Param("token"))
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=.env`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(raw))
}
