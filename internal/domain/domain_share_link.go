package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrShareExpired  = errors.New("share link has expired")
	ErrShareRevoked  = errors.New("share link has been revoked")
	ErrShareNotOwned = errors.New("share link does not belong to the user")
)

// ShareLink 状态
const (
	ShareStatusActive  int64 = 1
	ShareStatusRevoked int64 = 2
)

// ShareLink is a bearer capability: holding the token grants read access
// to the bound scope until expiry. Immutable after creation except status.
// ShareLink 是持有即授权的凭证：持有 Token 即可在过期前读取绑定范围
// 创建后除状态外不可变更
type ShareLink struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`  // 全局唯一、不可猜测
	UID       int64     `json:"uid"`    // 所有者 ID
	RepoID    int64     `json:"repoId"` // GlobalRepoID = 全局范围
	Name      string    `json:"name"`   // 可选标签
	Status    int64     `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsGlobal reports whether the link exposes the owner's unattached variables
// IsGlobal 返回链接是否暴露所有者的全局变量
func (s *ShareLink) IsGlobal() bool {
	return s.RepoID == GlobalRepoID
}

// ShareLinkRepository 分享链接持久化接口
// Token uniqueness is enforced by a storage-level unique constraint,
// Create must surface the duplicate-key error so the caller can regenerate
// Token 唯一性由存储层唯一约束保证
// Create 必须透出重复键错误，调用方据此重新生成
type ShareLinkRepository interface {
	Create(ctx context.Context, link *ShareLink) error
	GetByToken(ctx context.Context, token string) (*ShareLink, error)
	// ListByUID 按创建时间倒序
	ListByUID(ctx context.Context, uid int64) ([]*ShareLink, error)
	UpdateStatus(ctx context.Context, uid int64, id int64, status int64) error
	// DeleteInert removes revoked or long-expired rows, maintenance only
	// DeleteInert 清理已撤销或过期已久的行，仅用于维护
	DeleteInert(ctx context.Context, before time.Time) (int64, error)
}
