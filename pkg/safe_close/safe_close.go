// Package safe_close provides coordinated graceful shutdown
// Package safe_close 提供协调式优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose fans a close signal out to attached goroutines and waits for them
// SafeClose 将关闭信号广播给附加的协程并等待它们结束
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine
// f must call done() when it finishes and must return once closeSignal fires
// Attach 在独立协程中启动 f
// f 结束时必须调用 done()，并在 closeSignal 触发后返回
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() { s.wg.Done() }
	go f(done, s.closeSignal)
}

// SendCloseSignal triggers shutdown, the first error wins
// SendCloseSignal 触发关闭，保留首个错误
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until all attached goroutines have finished
// WaitClosed 阻塞直到所有附加协程结束
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
