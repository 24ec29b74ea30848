package model

import (
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// ShareLink 分享链接表
// token 全局唯一，唯一索引兜底随机碰撞
type ShareLink struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token     string     `gorm:"column:token;size:64;not null;default:'';uniqueIndex:idx_share_link_token" json:"token"`
	UID       int64      `gorm:"column:uid;not null;default:0;index:idx_share_link_uid" json:"uid"`
	RepoID    int64      `gorm:"column:repo_id;not null;default:0" json:"repo_id"`
	Name      string     `gorm:"column:name;size:128;not null;default:''" json:"name"`
	Status    int64      `gorm:"column:status;not null;default:1" json:"status"`
	ExpiresAt timex.Time `gorm:"column:expires_at;index:idx_share_link_expires_at" json:"expires_at"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName 表名
func (ShareLink) TableName() string {
	return "share_link"
}
