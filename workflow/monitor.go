/*
monitor.go - Automated overdue sweep

PURPOSE:
  Periodically sweeps open records requests whose deadline has passed and
  marks them overdue. The sweep itself is RequestService.MarkOverdue; this
  is the background loop around it.

DESIGN:
  - Runs a background goroutine with a configurable check interval
  - Each tick evaluates against the wall clock mapped onto the civil
    calendar
  - Marked IDs are logged; the event trail carries the durable record

USAGE:
  monitor := workflow.NewDeadlineMonitor(svc)
  monitor.Start()
  // ... later
  monitor.Stop()

SEE ALSO:
  - request.go: MarkOverdue transition rules
*/
package workflow

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/civica/compliance-engine/businesstime"
)

// DeadlineMonitor handles the automated overdue sweep.
type DeadlineMonitor struct {
	Service       *RequestService
	CheckInterval time.Duration

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewDeadlineMonitor creates a monitor with an hourly sweep.
func NewDeadlineMonitor(svc *RequestService) *DeadlineMonitor {
	return &DeadlineMonitor{
		Service:       svc,
		CheckInterval: 1 * time.Hour,
		stop:          make(chan bool),
	}
}

// Start begins the background sweep.
func (dm *DeadlineMonitor) Start() {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	dm.ticker = time.NewTicker(dm.CheckInterval)
	dm.wg.Add(1)
	go dm.run()

	log.Printf("[Monitor] Started with check interval: %v", dm.CheckInterval)
}

// Stop halts the sweep and waits for an in-flight tick to finish.
func (dm *DeadlineMonitor) Stop() {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if dm.ticker == nil {
		return
	}
	dm.ticker.Stop()
	close(dm.stop)
	dm.wg.Wait()
	dm.ticker = nil

	log.Println("[Monitor] Stopped")
}

func (dm *DeadlineMonitor) run() {
	defer dm.wg.Done()
	for {
		select {
		case <-dm.ticker.C:
			dm.sweep()
		case <-dm.stop:
			return
		}
	}
}

func (dm *DeadlineMonitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	asOf := businesstime.FromTime(time.Now())
	marked, err := dm.Service.MarkOverdue(ctx, asOf)
	if err != nil {
		log.Printf("[Monitor] Sweep failed: %v", err)
		return
	}
	for _, id := range marked {
		log.Printf("[Monitor] Request %s is past its response deadline", id)
	}
}
