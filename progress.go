package seqgo

import (
	"sync/atomic"

	"golang.org/x/time/rate"
)

const defaultProgressPerSecond = 10

// progressTracker throttles user progress callbacks so counting hot
// loops are not dominated by reporting. The final done == total event
// for a level always fires.
type progressTracker struct {
	fn      ProgressFunc
	limiter *rate.Limiter
	level   atomic.Int32
}

func newProgressTracker(fn ProgressFunc, perSecond float64) *progressTracker {
	if fn == nil {
		return nil
	}
	if perSecond <= 0 {
		perSecond = defaultProgressPerSecond
	}
	return &progressTracker{
		fn:      fn,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (p *progressTracker) setLevel(level int) {
	if p == nil {
		return
	}
	p.level.Store(int32(level))
}

func (p *progressTracker) report(done, total int) {
	if done < total && !p.limiter.Allow() {
		return
	}
	p.fn(int(p.level.Load()), done, total)
}

// progressFunc adapts the tracker to the backend callback shape.
// Returns nil when no callback is configured so backends skip
// reporting entirely.
func (m *Miner[I]) progressFunc() func(done, total int) {
	if m.progress == nil {
		return nil
	}
	return m.progress.report
}
