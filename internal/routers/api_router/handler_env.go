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

// EnvHandler variable store API router handler
// EnvHandler 环境变量 API 路由处理器
type EnvHandler struct {
	*Handler
}

// NewEnvHandler creates EnvHandler instance
// NewEnvHandler 创建 EnvHandler 实例
func NewEnvHandler(a *app.App) *EnvHandler {
	return &EnvHandler{
		Handler: NewHandler(a),
	}
}

// Set writes one variable, overwriting on key conflict
// Set 写入单个变量，同键覆盖
func (h *EnvHandler) Set(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EnvSetRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	envDTO, err := h.App.EnvService.Set(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EnvHandler.Set", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(envDTO))
}

// Import bulk imports dotenv text into one scope
// Import 批量导入 dotenv 文本到单一范围
func (h *EnvHandler) Import(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EnvImportRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	result, err := h.App.EnvService.Import(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "EnvHandler.Import", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(result))
}

// List lists or searches the authenticated user's variables
// 带 query 参数时走搜索，否则按范围列出
func (h *EnvHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if query, exist := c.GetQuery("query"); exist && query != "" {
		list, err := h.App.EnvService.Search(ctx, uid, query)
		if err != nil {
			h.logError(ctx, "EnvHandler.Search", err)
			apperrors.ErrorResponse(c, err)
			return
		}
		response.ToResponse(code.Success.WithData(list))
		return
	}

	params := &dto.EnvListRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	list, err := h.App.EnvService.List(ctx, uid, params.RepoFullName)
	if err != nil {
		h.logError(ctx, "EnvHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(list))
}

// Download renders one scope as a downloadable .env file
// Download 将单一范围渲染为 .env 附件下载
func (h *EnvHandler) Download(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EnvListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	raw, err := h.App.EnvService.Download(ctx, uid, params.RepoFullName)
	if err != nil {
		h.logError(ctx, "EnvHandler.Download", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=.env`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(raw))
}

// Delete removes one variable
// Delete 删除单个变量
func (h *EnvHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EnvDeleteRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	ctx := c.Request.Context()
	uid := pkgapp.GetUID(c)

	if err := h.App.EnvService.Delete(ctx, uid, params.ID); err != nil {
		h.logError(ctx, "EnvHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}
