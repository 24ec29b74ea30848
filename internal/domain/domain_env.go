package domain

import (
	"context"
	"time"
)

// GlobalRepoID marks a variable with no repository attached (global scope)
// GlobalRepoID 表示未挂接仓库的变量（全局范围）
const GlobalRepoID int64 = 0

// Env one key/value pair owned by a user, optionally scoped to a repo
// Env 一条用户拥有的键值对，可选挂接到仓库
type Env struct {
	ID        int64     `json:"id"`
	UID       int64     `json:"uid"`
	RepoID    int64     `json:"repoId"` // GlobalRepoID = 全局范围
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Link      string    `json:"link"` // 可选的文档链接
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnvRepository 环境变量持久化接口
type EnvRepository interface {
	// Upsert writes the value for (uid, repoID, key), overwriting an existing row
	// Upsert 以 (uid, repoID, key) 为键写入，存在则覆盖
	Upsert(ctx context.Context, env *Env) (*Env, error)
	GetByID(ctx context.Context, id int64, uid int64) (*Env, error)
	// ListByScope lists variables of exactly one scope, ordered by key ascending
	// ListByScope 列出单一范围内的变量，按键名升序
	ListByScope(ctx context.Context, uid int64, repoID int64) ([]*Env, error)
	// Search matches key or owning repo full name, ordered by updated_at descending
	// Search 匹配键名或所属仓库全名，按更新时间倒序
	Search(ctx context.Context, uid int64, query string) ([]*Env, error)
	Delete(ctx context.Context, id int64, uid int64) error
}
