package services

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const reloadTimeout = 5 * time.Second

// Resizer is the part of the scheduler driven by the configuration bridge.
type Resizer interface {
	Resize(n int, finishTasks bool)
	Workers() int
}

// Parallelism keeps the pool size in line with the configured thread count.
type Parallelism struct {
	resizer    Resizer
	maxThreads int

	mu       sync.Mutex
	desired  int
	shutdown bool
}

func NewParallelism(r Resizer, maxThreads int) *Parallelism {
	return &Parallelism{
		resizer:    r,
		maxThreads: maxThreads,
		desired:    r.Workers(),
	}
}

// SetDesired resizes the pool to n workers, letting removed workers finish
// their current task. A negative n means one worker per CPU. It returns the
// size actually applied. After Shutdown it does nothing and returns zero.
func (p *Parallelism) SetDesired(n int) int {
	if n < 0 {
		n = runtime.NumCPU()
	}
	n = max(0, min(n, p.maxThreads))

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		zap.S().Named("parallelism").Debugw("ignoring resize after shutdown", "requested", n)
		return 0
	}

	if n == p.desired && n == p.resizer.Workers() {
		return n
	}

	zap.S().Named("parallelism").Infow("resizing pool", "from", p.resizer.Workers(), "to", n)
	p.desired = n
	p.resizer.Resize(n, true)

	return n
}

func (p *Parallelism) Desired() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.desired
}

// Apply reads the desired worker count with load, retrying while the source
// is unreadable, and resizes the pool.
func (p *Parallelism) Apply(ctx context.Context, load func() (int, error)) error {
	n, err := backoff.Retry(ctx, load,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(reloadTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			zap.S().Named("parallelism").Debugw("failed to read thread count", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return err
	}

	p.SetDesired(n)
	return nil
}

// Watch resizes the pool every time the config file behind v changes.
func (p *Parallelism) Watch(ctx context.Context, v *viper.Viper, key string) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}

		err := p.Apply(ctx, func() (int, error) {
			if err := v.ReadInConfig(); err != nil {
				return 0, err
			}
			return v.GetInt(key), nil
		})
		if err != nil {
			zap.S().Named("parallelism").Errorw("failed to apply configuration change", "file", e.Name, "error", err)
		}
	})
	v.WatchConfig()
}

// Shutdown stops every worker and aborts the queued tasks. Later resize requests,
// including config file changes, are ignored.
func (p *Parallelism) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shutdown = true
	p.desired = 0
	p.resizer.Resize(0, false)
}
