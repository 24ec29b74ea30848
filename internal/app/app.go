// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"

	"github.com/haierkeys/env-share-service/internal/dao"
	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/service"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/github"
	"github.com/haierkeys/env-share-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo  domain.UserRepository
	RepoRepo  domain.RepoRepository
	EnvRepo   domain.EnvRepository
	ShareRepo domain.ShareLinkRepository

	// Service 层
	UserService  service.UserService
	RepoService  service.RepoService
	EnvService   service.EnvService
	ShareService service.ShareService

	// 基础设施组件
	TokenManager pkgapp.TokenManager

	// StartTime 进程启动时间，健康检查用
	StartTime timex.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: timex.Now(),
	}

	// 创建 DatabaseConfig 用于 DAO
	dbConfig := &dao.DatabaseConfig{
		Type:            cfg.Database.Type,
		Path:            cfg.Database.Path,
		UserName:        cfg.Database.UserName,
		Password:        cfg.Database.Password,
		Host:            cfg.Database.Host,
		Name:            cfg.Database.Name,
		TablePrefix:     cfg.Database.TablePrefix,
		AutoMigrate:     cfg.Database.AutoMigrate,
		Charset:         cfg.Database.Charset,
		ParseTime:       cfg.Database.ParseTime,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RunMode:         cfg.Server.RunMode,
	}

	// 初始化 DAO（使用依赖注入）
	a.Dao = dao.New(db, context.Background(),
		dao.WithConfig(dbConfig),
		dao.WithLogger(logger),
	)

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    "env-share-service",
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.RepoRepo = dao.NewRepoRepository(a.Dao)
	a.EnvRepo = dao.NewEnvRepository(a.Dao)
	a.ShareRepo = dao.NewShareLinkRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
		Share: service.ShareServiceConfig{
			DefaultTTLMinutes: cfg.Share.DefaultTTLMinutes,
			MaxTTLMinutes:     cfg.Share.MaxTTLMinutes,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.RepoService = service.NewRepoService(a.RepoRepo, github.NewClient(), logger)
	a.EnvService = service.NewEnvService(a.EnvRepo, a.RepoService, logger)
	a.ShareService = service.NewShareService(a.ShareRepo, a.EnvRepo, a.RepoRepo, timex.SystemClock(), logger, svcConfig)

	logger.Info("App container initialized successfully")

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// VersionInfo 获取版本信息
func (a *App) VersionInfo() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}
