package scenes

import (
	"log"
	"sync"
	"time"
)

// Loop calls step at a fixed wall-clock rate until Stop is called or step
// returns false.
type Loop struct {
	tickRate int
	step     func() bool
	stopChan chan struct{}
	once     sync.Once
}

func NewLoop(tickRate int, step func() bool) *Loop {
	return &Loop{
		tickRate: tickRate,
		step:     step,
		stopChan: make(chan struct{}),
	}
}

func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Loop stopped")
			return
		case <-ticker.C:
			if !l.step() {
				return
			}
		}
	}
}

// Stop is safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.stopChan)
	})
}
