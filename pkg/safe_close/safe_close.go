// Package safe_close coordinates graceful shutdown of long-lived goroutines.
package safe_close

import "sync"

// SafeClose fans a single close signal out to every attached goroutine
// and waits for all of them to report done.
type SafeClose struct {
	mu          sync.Mutex
	closed      bool
	err         error
	closeSignal chan struct{}
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done exactly once
// when it has finished, and should begin shutting down when closeSignal
// is closed.
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal closes the signal channel. The first non-nil error
// wins; repeated calls are no-ops.
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

// WaitClosed blocks until every attached goroutine has called done and
// returns the error passed to SendCloseSignal, if any.
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
