package worker

import "sync"

// Job is a unit of work executed by the pool. Outbound email runs here so
// SMTP latency never blocks a request.
type Job func()

type Pool interface {
	Submit(Job)
	Stop()
}

// queueSize bounds how many jobs may wait before Submit blocks.
const queueSize = 64

// NewPool creates a pool with n workers. n <= 0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Job, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

func (p *pool) Submit(j Job) {
	p.jobs <- j
}

// Stop drains queued jobs and waits for the workers to exit.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
