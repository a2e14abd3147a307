package scenario

import (
	"runtime"
	"sync"
	"sync/atomic"

	"uacast/internal/engine"
	"uacast/internal/model"
)

// Outcome pairs a scenario with its evaluated forecast.
type Outcome struct {
	Scenario Scenario
	Result   model.Result
}

// ProgressFunc is called as scenarios finish. done is the number completed
// so far, total the batch size.
type ProgressFunc func(done, total int)

// Run evaluates all scenarios with a bounded worker pool. Evaluations
// share no state, so this is safe at any worker count; outcomes come back
// in input order regardless of completion order.
func Run(scenarios []Scenario, workers int, progressFn ProgressFunc) []Outcome {
	if len(scenarios) == 0 {
		return nil
	}

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(scenarios) {
		workers = len(scenarios)
	}

	work := make(chan int, len(scenarios))
	outcomes := make([]Outcome, len(scenarios))
	var wg sync.WaitGroup
	var done atomic.Int64

	for i := range scenarios {
		work <- i
	}
	close(work)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				outcomes[idx] = Outcome{
					Scenario: scenarios[idx],
					Result:   engine.Forecast(scenarios[idx].Inputs()),
				}
				n := done.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(scenarios))
				}
			}
		}()
	}

	wg.Wait()

	return outcomes
}
