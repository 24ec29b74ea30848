package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldRepo 仓库全名字段
	FieldRepo = "repo"

	// FieldKey 环境变量键名字段
	FieldKey = "key"

	// FieldShareID 分享链接 ID 字段
	FieldShareID = "shareId"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldCount 条目数量字段
	FieldCount = "count"
)
