// Package model 定义数据库表模型
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate 按模型名迁移单张表
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Repo":
		return db.AutoMigrate(Repo{})

	case "Env":
		return db.AutoMigrate(Env{})

	case "ShareLink":
		return db.AutoMigrate(ShareLink{})
	}
	return nil
}

// AutoMigrateAll 迁移全部表
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(User{}, Repo{}, Env{}, ShareLink{})
}
