package model

import (
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// Repo 仓库表
// full_name 全局唯一，先到先得
type Repo struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID       int64      `gorm:"column:uid;not null;default:0;index:idx_repo_uid" json:"uid"`
	FullName  string     `gorm:"column:full_name;size:255;not null;default:'';uniqueIndex:idx_repo_full_name" json:"full_name"`
	Name      string     `gorm:"column:name;size:128;not null;default:''" json:"name"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Repo) TableName() string {
	return "repo"
}
