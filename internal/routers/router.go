package routers

import (
	"time"

	"github.com/haierkeys/env-share-service/internal/app"
	"github.com/haierkeys/env-share-service/internal/middleware"
	"github.com/haierkeys/env-share-service/internal/routers/api_router"
	"github.com/haierkeys/env-share-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// 登录与分享解析是最容易被刷的入口，单独限流
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/user/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/user/register",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter creates the public API router
// NewRouter 创建公开 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo(app.Name, appContainer.VersionInfo().Version))
		api.Use(middleware.TracerWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		repoHandler := api_router.NewRepoHandler(appContainer)
		envHandler := api_router.NewEnvHandler(appContainer)
		shareHandler := api_router.NewShareHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 公开接口
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)

		// 分享链接解析，凭 Token 访问，无需认证
		api.GET("/share/:token", shareHandler.Resolve)
		api.GET("/share/:token/raw", shareHandler.ResolveRaw)

		// 认证接口
		auth := middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey)

		api.Use(auth).POST("/user/change_password", userHandler.UserChangePassword)
		api.Use(auth).GET("/user/info", userHandler.UserInfo)

		api.Use(auth).GET("/repos", repoHandler.List)
		api.Use(auth).GET("/repos/remote", repoHandler.RemoteList)

		api.Use(auth).GET("/env", envHandler.List)
		api.Use(auth).POST("/env", envHandler.Set)
		api.Use(auth).DELETE("/env", envHandler.Delete)
		api.Use(auth).POST("/env/bulk", envHandler.Import)
		api.Use(auth).GET("/env/download", envHandler.Download)

		api.Use(auth).POST("/share", shareHandler.Issue)
		api.Use(auth).GET("/shares", shareHandler.List)
		api.Use(auth).DELETE("/share", shareHandler.Revoke)

		api.Use(auth).GET("/system", healthHandler.GetSystemInfo)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
