// Package worker 提供固定大小的背景工作池，處理不需阻塞 HTTP 回應的工作
package worker

import (
	"log/slog"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	// TrySubmit 不阻塞；佇列已滿或已停止時回傳 false
	TrySubmit(Task) bool
	Stop()
}

// QueuePerWorker 每個 worker 對應的佇列長度
const QueuePerWorker = 64

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// 佇列長度為 n*QueuePerWorker，佇列滿時 Submit 會阻塞
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*QueuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				run(job)
			}
		}()
	}
	return p
}

// run 執行單一 task，panic 只記錄不讓 worker 結束
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("worker task panicked", "panic", r)
		}
	}()
	job()
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

// Submit 在 Stop 之後呼叫會被忽略
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		slog.Warn("worker pool stopped, task dropped")
		return
	}
	p.jobs <- t
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop 關閉佇列並等待已送出的 task 執行完畢
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
