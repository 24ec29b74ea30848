package domain

import (
	"context"
	"time"
)

// Repo represents one source-control repository record
// FullName is unique across the whole system, the first claimant owns the name
// Repo 代表一条源码仓库记录
// FullName 全局唯一，先到先得
type Repo struct {
	ID        int64     `json:"id"`
	UID       int64     `json:"uid"` // 所有者 ID
	FullName  string    `json:"fullName"`
	Name      string    `json:"name"` // 展示名，取全名最后一段
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RepoRepository 仓库持久化接口
type RepoRepository interface {
	Create(ctx context.Context, repo *Repo) (*Repo, error)
	GetByID(ctx context.Context, id int64) (*Repo, error)
	// GetByFullName 全局按全名查找，不限所有者
	GetByFullName(ctx context.Context, fullName string) (*Repo, error)
	// ListByUID 按所有者列出，支持全名子串过滤，按更新时间倒序
	ListByUID(ctx context.Context, uid int64, query string) ([]*Repo, error)
	Touch(ctx context.Context, id int64) error
}
