// Package domain defines domain models and repository interfaces
// Package domain 定义领域模型与持久化接口
package domain

import (
	"context"
	"time"
)

// User 用户领域模型
type User struct {
	UID       int64     `json:"uid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash // bcrypt 哈希
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRepository 用户持久化接口
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUID(ctx context.Context, uid int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdatePassword(ctx context.Context, password string, uid int64) error
}
