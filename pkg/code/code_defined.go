package code

import "net/http"

// 成功码
var (
	Success        = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	SuccessCreated = NewSussWithStatus(2, http.StatusCreated, lang{en: "Created", zh_cn: "创建成功"})
)

// 通用错误码 10000xxx
var (
	Failed                = NewError(0, lang{en: "Failed", zh_cn: "失败"})
	ErrorServerInternal   = NewErrorWithStatus(10000001, http.StatusInternalServerError, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorInvalidParams    = NewErrorWithStatus(10000002, http.StatusBadRequest, lang{en: "Invalid params", zh_cn: "入参错误"})
	ErrorNotFoundAPI      = NewErrorWithStatus(10000003, http.StatusNotFound, lang{en: "Not found api", zh_cn: "接口不存在"})
	ErrorTooManyRequests  = NewErrorWithStatus(10000004, http.StatusTooManyRequests, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorDBQuery          = NewErrorWithStatus(10000005, http.StatusInternalServerError, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	ErrorTokenGenerate    = NewErrorWithStatus(10000006, http.StatusInternalServerError, lang{en: "Token generate failed", zh_cn: "Token 生成失败"})
	ErrorNotUserAuthToken = NewErrorWithStatus(10000007, http.StatusUnauthorized, lang{en: "Auth token required", zh_cn: "缺少认证 Token"})
	ErrorInvalidAuthToken = NewErrorWithStatus(10000008, http.StatusUnauthorized, lang{en: "Invalid auth token", zh_cn: "认证 Token 无效"})
)

// 用户错误码 10001xxx
var (
	ErrorUserRegisterIsDisable   = NewErrorWithStatus(10001001, http.StatusForbidden, lang{en: "User register is disabled", zh_cn: "用户注册未开启"})
	ErrorUserUsernameNotValid    = NewErrorWithStatus(10001002, http.StatusBadRequest, lang{en: "Username format is invalid", zh_cn: "用户名格式不合法"})
	ErrorUserPasswordNotMatch    = NewErrorWithStatus(10001003, http.StatusBadRequest, lang{en: "Passwords do not match", zh_cn: "两次密码不一致"})
	ErrorUserEmailAlreadyExists  = NewErrorWithStatus(10001004, http.StatusConflict, lang{en: "Email already registered", zh_cn: "邮箱已被注册"})
	ErrorUserAlreadyExists       = NewErrorWithStatus(10001005, http.StatusConflict, lang{en: "Username already exists", zh_cn: "用户名已存在"})
	ErrorUserRegister            = NewErrorWithStatus(10001006, http.StatusInternalServerError, lang{en: "User register failed", zh_cn: "用户注册失败"})
	ErrorUserLoginPasswordFailed = NewErrorWithStatus(10001007, http.StatusUnauthorized, lang{en: "Incorrect username or password", zh_cn: "用户名或密码错误"})
	ErrorUserNotFound            = NewErrorWithStatus(10001008, http.StatusNotFound, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserOldPasswordFailed   = NewErrorWithStatus(10001009, http.StatusBadRequest, lang{en: "Old password is incorrect", zh_cn: "旧密码错误"})
	ErrorPasswordNotValid        = NewErrorWithStatus(10001010, http.StatusBadRequest, lang{en: "Password is invalid", zh_cn: "密码不合法"})
)

// 仓库错误码 10002xxx
var (
	ErrorRepoNotFound     = NewErrorWithStatus(10002001, http.StatusNotFound, lang{en: "Repo not found", zh_cn: "仓库不存在"})
	ErrorRepoNameNotValid = NewErrorWithStatus(10002002, http.StatusBadRequest, lang{en: "Repo full name is invalid", zh_cn: "仓库全名不合法"})
	ErrorRemoteRepoList   = NewErrorWithStatus(10002003, http.StatusBadGateway, lang{en: "Remote repo listing failed", zh_cn: "远端仓库列表获取失败"})
	ErrorRemoteAuthToken  = NewErrorWithStatus(10002004, http.StatusUnauthorized, lang{en: "Remote access token missing", zh_cn: "缺少远端访问 Token"})
)

// 环境变量错误码 10003xxx
var (
	ErrorEnvNotFound = NewErrorWithStatus(10003001, http.StatusNotFound, lang{en: "Env var not found", zh_cn: "环境变量不存在"})
	ErrorEnvSave     = NewErrorWithStatus(10003002, http.StatusInternalServerError, lang{en: "Env var save failed", zh_cn: "环境变量保存失败"})
	ErrorEnvText     = NewErrorWithStatus(10003003, http.StatusBadRequest, lang{en: "Env text has no valid entries", zh_cn: "Env 文本没有有效条目"})
)

// 分享错误码 10004xxx
var (
	ErrorShareScopeNotFound = NewErrorWithStatus(10004001, http.StatusNotFound, lang{en: "Share scope repo not found", zh_cn: "分享范围仓库不存在"})
	ErrorShareTTLNotValid   = NewErrorWithStatus(10004002, http.StatusBadRequest, lang{en: "Share ttl out of range", zh_cn: "分享有效期超出范围"})
	ErrorShareNotFound      = NewErrorWithStatus(10004003, http.StatusNotFound, lang{en: "Share link not found", zh_cn: "分享链接不存在"})
	ErrorShareExpired       = NewErrorWithStatus(10004004, http.StatusGone, lang{en: "Share link expired", zh_cn: "分享链接已过期"})
	ErrorShareRevoked       = NewErrorWithStatus(10004005, http.StatusGone, lang{en: "Share link revoked", zh_cn: "分享链接已撤销"})
	ErrorShareCreate        = NewErrorWithStatus(10004006, http.StatusInternalServerError, lang{en: "Share link create failed", zh_cn: "分享链接创建失败"})
)
