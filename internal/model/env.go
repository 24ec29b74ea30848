package model

import (
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// Env 环境变量表
// (uid, repo_id, key) 唯一，repo_id = 0 表示全局范围
type Env struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID       int64      `gorm:"column:uid;not null;default:0;uniqueIndex:idx_env_scope_key,priority:1" json:"uid"`
	RepoID    int64      `gorm:"column:repo_id;not null;default:0;uniqueIndex:idx_env_scope_key,priority:2" json:"repo_id"`
	Key       string     `gorm:"column:key;size:255;not null;default:'';uniqueIndex:idx_env_scope_key,priority:3" json:"key"`
	Value     string     `gorm:"column:value;type:text" json:"value"`
	Link      string     `gorm:"column:link;size:512;not null;default:''" json:"link"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Env) TableName() string {
	return "env"
}
