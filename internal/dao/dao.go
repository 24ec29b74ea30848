// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/haierkeys/env-share-service/internal/model"
	"github.com/haierkeys/env-share-service/pkg/fileurl"
	"github.com/haierkeys/env-share-service/pkg/util"

	"github.com/glebarez/sqlite"
	"github.com/haierkeys/gormTracing"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao 数据访问对象，持有数据库连接与迁移状态
type Dao struct {
	db     *gorm.DB
	ctx    context.Context
	logger *zap.Logger
	config *DatabaseConfig

	migrateMu   sync.Mutex
	migrateDone map[string]struct{}
}

// Option Dao 选项
type Option func(*Dao)

// WithLogger 注入日志器
func WithLogger(l *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = l
	}
}

// WithConfig 注入数据库配置
func WithConfig(c *DatabaseConfig) Option {
	return func(d *Dao) {
		d.config = c
	}
}

// New 创建 Dao 实例
func New(db *gorm.DB, ctx context.Context, opts ...Option) *Dao {
	d := &Dao{
		db:          db,
		ctx:         ctx,
		logger:      zap.NewNop(),
		migrateDone: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB 返回底层连接
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// use 返回某模型的连接，首次使用时按需迁移
// use 每个模型只迁移一次
func (d *Dao) use(key string) *gorm.DB {
	if d.config == nil || !d.config.AutoMigrate {
		return d.db
	}

	d.migrateMu.Lock()
	defer d.migrateMu.Unlock()
	if _, ok := d.migrateDone[key]; !ok {
		if err := model.AutoMigrate(d.db, key); err != nil {
			d.logger.Error("model auto migrate failed",
				zap.String("model", key), zap.Error(err))
		} else {
			d.migrateDone[key] = struct{}{}
		}
	}
	return d.db
}

// NewDBEngine 创建数据库连接
func NewDBEngine(c *DatabaseConfig) (*gorm.DB, error) {
	dialector, err := newDialector(c)
	if err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if c.RunMode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: true,
		},
		// 统一各方言的重复键错误为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)

	if lifetime, err := util.ParseDuration(c.ConnMaxLifetime); err == nil && lifetime > 0 {
		sqlDB.SetConnMaxLifetime(lifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Minute * 30)
	}
	if idleTime, err := util.ParseDuration(c.ConnMaxIdleTime); err == nil && idleTime > 0 {
		sqlDB.SetConnMaxIdleTime(idleTime)
	}

	_ = db.Use(&gormTracing.OpentracingPlugin{})

	return db, nil
}

func newDialector(c *DatabaseConfig) (gorm.Dialector, error) {
	switch c.Type {
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		)), nil
	case "postgres":
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=Local",
			c.Host,
			c.UserName,
			c.Password,
			c.Name,
		)), nil
	case "sqlite":
		if !fileurl.IsExist(c.Path) {
			fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path), nil
	}
	return nil, fmt.Errorf("unsupported database type: %s", c.Type)
}
