// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User  UserServiceConfig  // User related config // 用户相关配置
	Share ShareServiceConfig // Share related config // 分享相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // Whether registration is enabled // 注册是否启用
}

// ShareServiceConfig share service configuration
// ShareServiceConfig 分享服务配置
type ShareServiceConfig struct {
	// DefaultTTLMinutes applied when the request omits a ttl, default 10
	// DefaultTTLMinutes 请求未携带有效期时的默认值，默认 10
	DefaultTTLMinutes int64
	// MaxTTLMinutes upper ttl bound, default 60
	// MaxTTLMinutes 有效期上限，默认 60
	MaxTTLMinutes int64
	// TokenRetry bounded regeneration attempts on token collision
	// TokenRetry Token 碰撞时的重试次数上限
	TokenRetry int
}
