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

// Package actors lets embedded scripting contexts exchange messages through
// named mailboxes without sharing interpreter state.
//
// Each context registers a Mailbox under its own name with a Registry. Other
// contexts look the name up and receive a Handle, a by-name capability that
// can Tell (fire-and-forget) or Ask (request/response observed later through
// a pollable Response). Payloads cross context boundaries through the bridge
// package so that no heap ever holds another heap's containers.
//
// Nothing in this package blocks. Ask returns an unresolved Response
// immediately; delivery and resolution happen when the host's tick calls
// Registry.Process, which drains a bounded number of messages per mailbox
// per pass and routes them to the handlers the owning context registered.
// Hosts without their own tick can run a Pulse, and deliveries in the future
// go through a Scheduler.
package actors
