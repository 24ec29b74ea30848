// Package github is a minimal client for listing the authenticated user's repositories
// Package github 是列出已认证用户仓库的最小客户端
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 50
	// maxPages caps the fetch at 200 repos
	// maxPages 最多抓取 200 个仓库
	maxPages = 4
)

// Repo remote repository summary
// Repo 远端仓库摘要
type Repo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
}

// Client GitHub API 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewClientWithBaseURL 用于测试注入的构造函数
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ListUserRepos lists the token owner's repositories, newest updated first
// An optional query filters by substring match on the full name
// ListUserRepos 列出 Token 所有者的仓库，按更新时间倒序
// 可选的 query 按全名子串过滤
func (c *Client) ListUserRepos(ctx context.Context, accessToken string, query string) ([]*Repo, error) {
	query = strings.ToLower(query)

	var repos []*Repo
	for page := 1; page <= maxPages; page++ {
		pageRepos, err := c.listPage(ctx, accessToken, page)
		if err != nil {
			return nil, err
		}
		if len(pageRepos) == 0 {
			break
		}
		for _, r := range pageRepos {
			if query != "" && !strings.Contains(strings.ToLower(r.FullName), query) {
				continue
			}
			repos = append(repos, r)
		}
	}
	return repos, nil
}

func (c *Client) listPage(ctx context.Context, accessToken string, page int) ([]*Repo, error) {
	url := fmt.Sprintf("%s/user/repos?per_page=%d&page=%d&sort=updated", c.baseURL, perPage, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api status %d", resp.StatusCode)
	}

	var repos []*Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}
