/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actors

import (
	"context"
	"sync"
	"time"

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/tochemey/mailroom/bridge"
	"github.com/tochemey/mailroom/log"
)

// DefaultStopTimeout defines how long Stop waits for in-flight scheduler
// jobs before giving up on them.
const DefaultStopTimeout = time.Minute

// SchedulerOption is the interface that applies a configuration option to
// the scheduler.
type SchedulerOption interface {
	// Apply sets the SchedulerOption value of a scheduler.
	Apply(scheduler *Scheduler)
}

var _ SchedulerOption = SchedulerOptionFunc(nil)

// SchedulerOptionFunc implements the SchedulerOption interface.
type SchedulerOptionFunc func(*Scheduler)

func (f SchedulerOptionFunc) Apply(scheduler *Scheduler) {
	f(scheduler)
}

// WithSchedulerLogger sets the scheduler custom log
func WithSchedulerLogger(logger log.Logger) SchedulerOption {
	return SchedulerOptionFunc(func(scheduler *Scheduler) {
		scheduler.logger = logger
	})
}

// WithStopTimeout sets how long Stop waits for in-flight jobs.
func WithStopTimeout(timeout time.Duration) SchedulerOption {
	return SchedulerOptionFunc(func(scheduler *Scheduler) {
		scheduler.stopTimeout = timeout
	})
}

// Scheduler stacks messages that will be delivered to mailboxes in the
// future. Every delivery is a plain Tell resolved by name at fire time, so
// targets may appear after scheduling and disappear before it, and a missing
// target makes the delivery a silent no-op rather than an error.
//
// Payloads are bridged into a scheduler-owned staging heap when the schedule
// is created. The producer keeps no aliases into what will be delivered;
// each delivery bridges the staged value into the target's heap afresh.
type Scheduler struct {
	// helps lock concurrent access
	mu sync.Mutex
	// underlying Scheduler
	quartzScheduler quartz.Scheduler
	// states whether the quartzScheduler has started or not
	started *atomic.Bool
	// define the logger
	logger log.Logger
	// define the shutdown timeout
	stopTimeout time.Duration

	registry *Registry
	// staging owns the payload copies held between scheduling and delivery
	staging *bridge.Heap
	// references tracks the cancellation references of live schedules
	references goset.Set[string]
}

// NewScheduler creates a scheduler delivering into the given registry.
func NewScheduler(registry *Registry, opts ...SchedulerOption) *Scheduler {
	// create an instance of quartz scheduler with logger off
	quartzScheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))

	scheduler := &Scheduler{
		mu:              sync.Mutex{},
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		logger:          log.DefaultLogger,
		stopTimeout:     DefaultStopTimeout,
		registry:        registry,
		staging:         bridge.NewHeap("scheduler"),
		references:      goset.NewSet[string](),
	}

	// set the custom options to override the default values
	for _, opt := range opts {
		opt.Apply(scheduler)
	}

	return scheduler
}

// Start starts the scheduler
func (x *Scheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.logger.Info("starting messages scheduler...")
	x.quartzScheduler.Start(ctx)
	x.started.Store(x.quartzScheduler.IsStarted())
	x.logger.Info("messages scheduler started.:)")
}

// Stop stops the scheduler and drops every schedule that has not fired.
func (x *Scheduler) Stop(ctx context.Context) {
	if !x.started.Load() {
		return
	}

	x.logger.Info("stopping messages scheduler...")
	x.mu.Lock()
	defer x.mu.Unlock()
	_ = x.quartzScheduler.Clear()
	x.references.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(x.quartzScheduler.IsStarted())

	ctx, cancel := context.WithTimeout(ctx, x.stopTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)

	x.logger.Info("messages scheduler stopped...:)")
}

// ScheduleOnce delivers the payload to the named mailbox once, after the
// given delay. It returns a reference usable with Cancel until the delivery
// fires.
func (x *Scheduler) ScheduleOnce(topic string, payload bridge.Value, to string, delay time.Duration) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return "", ErrSchedulerNotStarted
	}

	staged := bridge.Copy(payload, x.staging)
	reference := newScheduleReference()
	job := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			// the schedule is spent whether or not the target still exists
			defer x.references.Remove(reference)
			x.registry.Get(to).Tell(topic, staged)
			return true, nil
		},
	)

	detail := quartz.NewJobDetail(job, quartz.NewJobKey(reference))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(delay)); err != nil {
		return "", err
	}
	x.references.Add(reference)
	return reference, nil
}

// Schedule delivers the payload to the named mailbox repeatedly at the given
// interval, until the returned reference is canceled or the scheduler stops.
func (x *Scheduler) Schedule(topic string, payload bridge.Value, to string, interval time.Duration) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return "", ErrSchedulerNotStarted
	}

	staged := bridge.Copy(payload, x.staging)
	reference := newScheduleReference()
	job := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			x.registry.Get(to).Tell(topic, staged)
			return true, nil
		},
	)

	detail := quartz.NewJobDetail(job, quartz.NewJobKey(reference))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewSimpleTrigger(interval)); err != nil {
		return "", err
	}
	x.references.Add(reference)
	return reference, nil
}

// ScheduleWithCron delivers the payload to the named mailbox on a cron
// expression, evaluated in the system time location.
func (x *Scheduler) ScheduleWithCron(topic string, payload bridge.Value, to string, cronExpression string) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return "", ErrSchedulerNotStarted
	}

	location := time.Now().Location()
	trigger, err := quartz.NewCronTriggerWithLoc(cronExpression, location)
	if err != nil {
		x.logger.Errorf("failed to schedule message: %v", err)
		return "", err
	}

	staged := bridge.Copy(payload, x.staging)
	reference := newScheduleReference()
	job := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			x.registry.Get(to).Tell(topic, staged)
			return true, nil
		},
	)

	detail := quartz.NewJobDetail(job, quartz.NewJobKey(reference))
	if err := x.quartzScheduler.ScheduleJob(detail, trigger); err != nil {
		return "", err
	}
	x.references.Add(reference)
	return reference, nil
}

// Cancel drops the schedule behind the given reference. A reference that was
// never issued, already canceled, or already fired as a one-shot reports
// ErrScheduleNotFound.
func (x *Scheduler) Cancel(reference string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return ErrSchedulerNotStarted
	}
	if !x.references.Contains(reference) {
		return ErrScheduleNotFound
	}

	x.references.Remove(reference)
	if err := x.quartzScheduler.DeleteJob(quartz.NewJobKey(reference)); err != nil {
		// the job fired between the reference check and the delete
		x.logger.Warnf("failed to cancel schedule=(%s): %v", reference, err)
		return ErrScheduleNotFound
	}
	return nil
}

// IsStarted returns true when the scheduler is running.
func (x *Scheduler) IsStarted() bool {
	return x.started.Load()
}

// newScheduleReference creates a new schedule cancellation reference
func newScheduleReference() string {
	return uuid.NewString()
}
