package timex

import "time"

// Clock abstracts the current wall-clock time
// Expiry comparisons use an injected Clock so tests can simulate elapsed time
// Clock 抽象当前时间，过期判定通过注入 Clock，测试可以模拟时间流逝
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
// ClockFunc 将函数适配为 Clock 接口
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the wall-clock backed Clock
// SystemClock 返回系统时钟
func SystemClock() Clock {
	return ClockFunc(time.Now)
}
