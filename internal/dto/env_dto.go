package dto

import "github.com/haierkeys/env-share-service/pkg/timex"

// EnvSetRequest Variable write request, overwrites the value on key conflict
// 变量写入请求，同键覆盖
type EnvSetRequest struct {
	Key          string `json:"key" form:"key" binding:"required,max=255"` // Variable key // 变量键名
	Value        string `json:"value" form:"value"`                        // Variable value // 变量值
	Link         string `json:"link" form:"link"`                          // Optional doc link // 可选文档链接
	RepoFullName string `json:"repoFullName" form:"repoFullName"`          // Empty = global scope // 空值表示全局范围
}

// EnvImportRequest Bulk dotenv import request
// 批量 dotenv 导入请求
type EnvImportRequest struct {
	Content      string `json:"content" form:"content" binding:"required"` // Raw dotenv text // dotenv 原文
	RepoFullName string `json:"repoFullName" form:"repoFullName"`          // Empty = global scope // 空值表示全局范围
}

// EnvListRequest Variable list request parameters
// 变量列表请求参数
type EnvListRequest struct {
	RepoFullName string `json:"repoFullName" form:"repoFullName"` // Empty = global scope // 空值表示全局范围
}

// EnvSearchRequest Variable search request parameters
// 变量搜索请求参数
type EnvSearchRequest struct {
	Query string `json:"query" form:"query" binding:"required"` // Key or repo full-name substring // 键名或仓库全名子串
}

// EnvDeleteRequest Variable delete request parameters
// 变量删除请求参数
type EnvDeleteRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"` // Variable ID // 变量 ID
}

// ---------------- DTO / Response ----------------

// EnvDTO Variable data transfer object
// EnvDTO 变量数据传输对象
type EnvDTO struct {
	ID           int64      `json:"id"`           // Variable ID // 变量 ID
	Key          string     `json:"key"`          // Variable key // 变量键名
	Value        string     `json:"value"`        // Variable value // 变量值
	Link         string     `json:"link"`         // Optional doc link // 可选文档链接
	RepoID       int64      `json:"repoId"`       // 0 = global scope // 0 表示全局范围
	RepoFullName string     `json:"repoFullName"` // Owning repo full name // 所属仓库全名
	UpdatedAt    timex.Time `json:"updatedAt"`    // Last updated time // 最后更新时间
	CreatedAt    timex.Time `json:"createdAt"`    // Created time // 创建时间
}

// EnvImportResultDTO Bulk import result
// EnvImportResultDTO 批量导入结果
type EnvImportResultDTO struct {
	Imported int      `json:"imported"` // Imported pair count // 导入条数
	Skipped  int      `json:"skipped"`  // Skipped line count // 跳过行数
	Keys     []string `json:"keys"`     // Imported keys // 导入的键名
}
