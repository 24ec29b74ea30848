package dto

import "github.com/haierkeys/env-share-service/pkg/timex"

// RepoListRequest Repository list request parameters
// 仓库列表请求参数
type RepoListRequest struct {
	Query string `json:"query" form:"query"` // Full-name substring filter // 全名子串过滤
}

// RepoRemoteListRequest Remote repository list request parameters
// 远端仓库列表请求参数
type RepoRemoteListRequest struct {
	AccessToken string `json:"accessToken" form:"accessToken" binding:"required"` // Provider access token // 托管平台访问令牌
	Query       string `json:"query" form:"query"`                                // Full-name substring filter // 全名子串过滤
}

// ---------------- DTO / Response ----------------

// RepoDTO Repository data transfer object
// RepoDTO 仓库数据传输对象
type RepoDTO struct {
	ID        int64      `json:"id"`        // Repository ID // 仓库 ID
	FullName  string     `json:"fullName"`  // Globally unique full name // 全局唯一全名
	Name      string     `json:"name"`      // Display name // 展示名
	UpdatedAt timex.Time `json:"updatedAt"` // Last updated time // 最后更新时间
	CreatedAt timex.Time `json:"createdAt"` // Created time // 创建时间
}

// RemoteRepoDTO Remote repository entry
// RemoteRepoDTO 远端仓库条目
type RemoteRepoDTO struct {
	FullName string `json:"fullName"` // owner/name // 全名
	Name     string `json:"name"`     // Display name // 展示名
	Private  bool   `json:"private"`  // Visibility // 是否私有
}
