package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// Report carries the outcome of one factorization run.
type Report struct {
	// Input is the value that was factored.
	Input int64

	// Factors is the ordered factor list. Partial if Aborted is set.
	Factors []int64

	// Elapsed is how long the run took.
	Elapsed time.Duration

	// Aborted is set when the run was killed before completing.
	Aborted bool
}

// Dispatcher runs factorizations off the caller with at most one in flight
// at a time system-wide. Concurrent runs would only compete for CPU, so a
// second submission while one is active is rejected rather than queued.
// To start a run do Dispatcher.Submit
// To stop the in-flight run do Dispatcher.Kill
type Dispatcher struct {
	noCopy noCopy

	// Pointer to the single-permit flag
	running *uint32

	engine *Engine

	// Channel which is used to send and process a kill command. Buffered so
	// a kill token can be parked until the next batch boundary.
	quitChannel chan chan bool

	// Closed when the in-flight run finishes, protected by doneLock
	done     chan struct{}
	doneLock sync.Mutex
}

// NewDispatcher returns a Dispatcher running factorizations on the given
// engine. A nil engine uses the default parameters.
func NewDispatcher(e *Engine) *Dispatcher {
	if e == nil {
		e = NewEngine(0, 0)
	}
	return &Dispatcher{
		running:     new(uint32),
		engine:      e,
		quitChannel: make(chan chan bool, 1),
	}
}

// IsAlive determines whether a factorization is currently in flight.
func (d *Dispatcher) IsAlive() bool {
	return atomic.LoadUint32(d.running) == 1
}

// Submit starts factoring N and returns a channel the Report is delivered
// on. It returns an error without starting anything when a factorization is
// already in flight.
func (d *Dispatcher) Submit(N int64) (<-chan Report, error) {
	if !atomic.CompareAndSwapUint32(d.running, 0, 1) {
		return nil, errors.Errorf("cannot factor %d: "+
			"a factorization is already in flight", N)
	}

	// Discard a kill token left behind by a Kill that raced a completing run
	select {
	case <-d.quitChannel:
	default:
	}

	d.doneLock.Lock()
	d.done = make(chan struct{})
	done := d.done
	d.doneLock.Unlock()

	out := make(chan Report, 1)

	go func() {
		start := time.Now()
		factors, aborted := d.engine.factorize(N, d.quitChannel)
		elapsed := time.Since(start)

		if aborted {
			jww.WARN.Printf("Factorization of %d killed after %s", N,
				elapsed)
		} else {
			jww.INFO.Printf("Factored %d into %d factors in %s", N,
				len(factors), elapsed)
		}

		// Free the permit before delivering so a consumer holding the
		// report can submit again immediately
		atomic.StoreUint32(d.running, 0)
		close(done)

		out <- Report{
			Input:   N,
			Factors: factors,
			Elapsed: elapsed,
			Aborted: aborted,
		}
	}()

	return out, nil
}

// Kill signals the in-flight factorization to stop. The signal is picked up
// at the next batch boundary. Blocks until death if you pass true, doesn't
// block if you pass false. A no-op when nothing is in flight.
func (d *Dispatcher) Kill(blockUntilDeath bool) {
	if !d.IsAlive() {
		return
	}

	// Buffered so the engine's acknowledgement can never block
	killNotify := make(chan bool, 1)

	d.doneLock.Lock()
	done := d.done
	d.doneLock.Unlock()

	if !blockUntilDeath {
		select {
		case d.quitChannel <- nil:
		default:
		}
		return
	}

	select {
	case d.quitChannel <- killNotify:
	case <-done:
		return
	}

	select {
	case <-killNotify:
	case <-done:
	}
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://github.com/golang/go/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}
