package model

import (
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// User 用户表
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid"`
	Username  string     `gorm:"column:username;size:64;not null;default:''" json:"username"`
	Email     string     `gorm:"column:email;size:128;not null;default:'';uniqueIndex:idx_user_email" json:"email"`
	Password  string     `gorm:"column:password;size:128;not null;default:''" json:"-"`
	Avatar    string     `gorm:"column:avatar;size:255;not null;default:''" json:"avatar"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (User) TableName() string {
	return "user"
}
