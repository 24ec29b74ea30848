// Package fileurl provides filesystem path helpers
// Package fileurl 提供文件系统路径辅助函数
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist checks whether the path exists
// IsExist 检查路径是否存在
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates the parent directory of path
// CreatePath 创建路径的父目录
func CreatePath(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if IsExist(dir) {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
