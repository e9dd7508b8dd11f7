package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("standings", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_ForgetStartsFreshCall(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	entered := make(chan struct{})

	done := make(chan any, 1)
	go func() {
		v, _, _ := g.Do("k", func() (any, error) {
			close(entered)
			<-release
			return "first", nil
		})
		done <- v
	}()

	<-entered
	g.Forget("k")

	v, _, shared := g.Do("k", func() (any, error) {
		return "second", nil
	})
	if shared {
		t.Fatalf("expected fresh call after Forget")
	}
	if v != "second" {
		t.Fatalf("unexpected value after Forget: %v", v)
	}

	close(release)
	if got := <-done; got != "first" {
		t.Fatalf("unexpected first call value: %v", got)
	}
}
