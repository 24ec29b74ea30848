package dto

import "github.com/haierkeys/env-share-service/pkg/timex"

// ShareCreateRequest Share link issue request parameters
// 分享链接签发请求参数
type ShareCreateRequest struct {
	TTLMinutes   *int64 `json:"ttlMinutes" form:"ttlMinutes"`       // 1..60, nil = default // 有效期（分钟），缺省取默认值
	RepoFullName string `json:"repoFullName" form:"repoFullName"`   // Empty = global scope // 空值表示全局范围
	Name         string `json:"name" form:"name" binding:"max=128"` // Optional label // 可选标签
}

// ShareRevokeRequest Share link revoke request parameters
// 分享链接撤销请求参数
type ShareRevokeRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"` // Share link ID // 分享链接 ID
}

// ---------------- DTO / Response ----------------

// ShareCreateResponse Share link issue result
// ShareCreateResponse 分享链接签发结果
type ShareCreateResponse struct {
	Token     string     `json:"token"`     // Capability token // 凭证 Token
	ExpiresAt timex.Time `json:"expiresAt"` // Expiry time // 过期时间
}

// ShareDTO Share link data transfer object, value-free owner view
// ShareDTO 分享链接数据传输对象，所有者视图
type ShareDTO struct {
	ID           int64      `json:"id"`           // Share link ID // 分享链接 ID
	Token        string     `json:"token"`        // Capability token // 凭证 Token
	RepoID       int64      `json:"repoId"`       // 0 = global scope // 0 表示全局范围
	RepoFullName string     `json:"repoFullName"` // Bound repo full name // 绑定仓库全名
	Name         string     `json:"name"`         // Optional label // 可选标签
	Status       int64      `json:"status"`       // 1 active, 2 revoked // 1 有效，2 已撤销
	ExpiresAt    timex.Time `json:"expiresAt"`    // Expiry time // 过期时间
	CreatedAt    timex.Time `json:"createdAt"`    // Created time // 创建时间
}

// ShareResolvedHeaderDTO Public metadata of a resolved share
// ShareResolvedHeaderDTO 分享解析结果的公开元数据
type ShareResolvedHeaderDTO struct {
	ID           int64      `json:"id"`                     // Share link ID // 分享链接 ID
	Token        string     `json:"token"`                  // Capability token // 凭证 Token
	Name         string     `json:"name"`                   // Optional label // 可选标签
	RepoFullName string     `json:"repoFullName,omitempty"` // Empty for global scope // 全局范围时为空
	ExpiresAt    timex.Time `json:"expiresAt"`              // Expiry time // 过期时间
	CreatedAt    timex.Time `json:"createdAt"`              // Created time // 创建时间
}

// ShareEnvDTO One variable exposed through a share link
// ShareEnvDTO 通过分享链接暴露的单个变量
type ShareEnvDTO struct {
	ID    int64  `json:"id"`    // Variable ID // 变量 ID
	Key   string `json:"key"`   // Variable key // 变量键名
	Value string `json:"value"` // Variable value // 变量值
	Link  string `json:"link"`  // Optional doc link // 可选文档链接
}

// ShareResolvedDTO Full resolved view returned to the token holder
// ShareResolvedDTO 返回给持有者的完整解析视图
type ShareResolvedDTO struct {
	Share ShareResolvedHeaderDTO `json:"share"` // Share metadata // 分享元数据
	Envs  []ShareEnvDTO          `json:"envs"`  // Scoped variables, key ascending // 范围内变量，按键名升序
}
