package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 状态码
	code int
	// HTTP 状态码
	statusCode int
	// 状态
	status bool
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers an error code, duplicate registration panics at init
// NewError 注册错误码，重复注册在初始化时 panic
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, statusCode: http.StatusOK, status: false, Lang: l}
}

// NewErrorWithStatus registers an error code bound to a specific HTTP status
// NewErrorWithStatus 注册绑定特定 HTTP 状态码的错误码
func NewErrorWithStatus(code int, statusCode int, l lang) *Code {
	c := NewError(code, l)
	c.statusCode = statusCode
	return c
}

var sussCodes = map[int]string{}

func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, statusCode: http.StatusOK, status: true, Lang: l}
}

// NewSussWithStatus registers a success code bound to a specific HTTP status
// NewSussWithStatus 注册绑定特定 HTTP 状态码的成功码
func NewSussWithStatus(code int, statusCode int, l lang) *Code {
	c := NewSuss(code, l)
	c.statusCode = statusCode
	return c
}

// Clone 创建一个新的 Code 副本
// WithData / WithDetails mutate the receiver, shared code objects must be
// cloned before attaching request-scoped payloads
// WithData / WithDetails 会修改自身，共享的 Code 对象附加请求级数据前必须先 Clone
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		statusCode: e.statusCode,
		status:     e.status,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

func (e *Code) StatusCode() int {
	return e.statusCode
}
