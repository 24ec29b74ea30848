// Package dotenv parses and renders dotenv formatted text
// Package dotenv 解析与渲染 dotenv 格式文本
package dotenv

import (
	"strings"
)

// Pair one KEY=VALUE entry
// Pair 一条 KEY=VALUE 记录
type Pair struct {
	Key   string
	Value string
}

// Parse extracts key/value pairs from dotenv text
// Blank lines and #-comments are skipped, the split is on the first '=',
// one level of matching single or double quotes is stripped from the value
// Parse 从 dotenv 文本提取键值对
// 跳过空行和 # 注释，按第一个 '=' 切分，去掉值外层一对匹配的引号
func Parse(text string) []Pair {
	var result []Pair
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.Index(line, "=")
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		value := line[eq+1:]
		if len(value) >= 2 {
			if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
				(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
				value = value[1 : len(value)-1]
			}
		}
		result = append(result, Pair{Key: key, Value: value})
	}
	return result
}

// Render joins pairs into KEY=VALUE lines, each terminated by a newline
// Render 将键值对拼接为按行分隔的 KEY=VALUE 文本，每行以换行结尾
func Render(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
