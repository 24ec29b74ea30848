package util

import (
	"regexp"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{2,32}$`)
	// repoFullNameRegex matches "org/name" style qualified repository names
	// repoFullNameRegex 匹配 "org/name" 形式的仓库全名
	repoFullNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+/[a-zA-Z0-9_.\-]+$`)
)

// IsValidEmail checks whether the string is an email address
// IsValidEmail 检查字符串是否为邮箱地址
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidUsername checks username format
// IsValidUsername 检查用户名格式
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsValidRepoFullName checks repository qualified name format
// IsValidRepoFullName 检查仓库全名格式
func IsValidRepoFullName(s string) bool {
	return repoFullNameRegex.MatchString(s)
}
