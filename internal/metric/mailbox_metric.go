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

package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// MailboxMetric defines the mailbox instrumentation
type MailboxMetric struct {
	// Specifies the total number of messages enqueued
	enqueuedCount metric.Int64ObservableCounter
	// Specifies the total number of messages processed
	processedCount metric.Int64ObservableCounter
	// Specifies the total number of messages dropped for lack of a handler
	unhandledCount metric.Int64ObservableCounter
	// Specifies the total number of responses resolved
	resolvedCount metric.Int64ObservableCounter
	// Specifies the delivery cycle duration
	// This is expressed in milliseconds
	processDuration metric.Int64Histogram
}

// NewMailboxMetric creates an instance of MailboxMetric
func NewMailboxMetric(meter metric.Meter) (*MailboxMetric, error) {
	// create an instance of MailboxMetric
	mailboxMetric := new(MailboxMetric)
	var err error
	// set the enqueued count instrument
	if mailboxMetric.enqueuedCount, err = meter.Int64ObservableCounter(
		"mailroom_messages_enqueued",
		metric.WithDescription("Total number of messages enqueued"),
	); err != nil {
		return nil, fmt.Errorf("failed to create enqueuedCount instrument, %w", err)
	}
	// set the processed count instrument
	if mailboxMetric.processedCount, err = meter.Int64ObservableCounter(
		"mailroom_messages_processed",
		metric.WithDescription("Total number of messages processed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processedCount instrument, %w", err)
	}
	// set the unhandled count instrument
	if mailboxMetric.unhandledCount, err = meter.Int64ObservableCounter(
		"mailroom_messages_unhandled",
		metric.WithDescription("Total number of messages dropped for lack of a handler"),
	); err != nil {
		return nil, fmt.Errorf("failed to create unhandledCount instrument, %w", err)
	}
	// set the resolved count instrument
	if mailboxMetric.resolvedCount, err = meter.Int64ObservableCounter(
		"mailroom_responses_resolved",
		metric.WithDescription("Total number of responses resolved"),
	); err != nil {
		return nil, fmt.Errorf("failed to create resolvedCount instrument, %w", err)
	}
	// set the delivery cycle duration instrument
	if mailboxMetric.processDuration, err = meter.Int64Histogram(
		"mailroom_process_duration",
		metric.WithDescription("The duration of a delivery cycle in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processDuration instrument, %w", err)
	}

	return mailboxMetric, nil
}

// EnqueuedCount returns the total number of messages enqueued
func (x *MailboxMetric) EnqueuedCount() metric.Int64ObservableCounter {
	return x.enqueuedCount
}

// ProcessedCount returns the total number of messages processed
func (x *MailboxMetric) ProcessedCount() metric.Int64ObservableCounter {
	return x.processedCount
}

// UnhandledCount returns the total number of messages dropped for lack of a handler
func (x *MailboxMetric) UnhandledCount() metric.Int64ObservableCounter {
	return x.unhandledCount
}

// ResolvedCount returns the total number of responses resolved
func (x *MailboxMetric) ResolvedCount() metric.Int64ObservableCounter {
	return x.resolvedCount
}

// ProcessDuration returns the delivery cycle duration in milliseconds
func (x *MailboxMetric) ProcessDuration() metric.Int64Histogram {
	return x.processDuration
}
