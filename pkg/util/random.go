package util

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand"
)

// ShareTokenBytes entropy of a share token in bytes
// 32 hex chars = 128 bits of randomness, enough that enumeration is infeasible
// ShareTokenBytes 分享 Token 的熵（字节数）
// 32 个十六进制字符 = 128 位随机性，足以抵御枚举
const ShareTokenBytes = 16

// GetRandomString 生成指定长度的随机字符串
func GetRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, length)
	for i := range b {
		// 直接使用全局 rand，无需每次都 NewSource
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// GenerateShareToken generates an unguessable URL-safe bearer token
// Uses crypto/rand, never math/rand - the token is a capability credential
// GenerateShareToken 生成不可猜测的 URL 安全 Token
// 使用 crypto/rand 而非 math/rand - Token 是一个授权凭证
func GenerateShareToken() (string, error) {
	b := make([]byte, ShareTokenBytes)
	if _, err := cryptorand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
