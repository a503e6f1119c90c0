// Package sched implements the cooperative scheduling budget (Context) that
// every scan loop threads through (spec.md section 4.8, SPEC_FULL.md
// component I).
package sched

import (
	"runtime"

	"github.com/google/uuid"
)

// Context carries a per-scan cooperative yield quota. A session id
// (grounded in the original Rust source's common/src/context.rs, which
// stamps each Context with a uuid::Uuid) is attached purely for log
// correlation across a scan's worker fan-out.
type Context struct {
	SessionID uuid.UUID
	quota     int
	remaining int
}

// New returns a Context with the given quota, matching the original's
// Context::new(quota): n starts equal to quota.
func New(quota int) *Context {
	if quota <= 0 {
		quota = 1
	}
	return &Context{SessionID: uuid.New(), quota: quota, remaining: quota}
}

// Take decrements the remaining budget by one unit of work and reports
// whether the budget has just been exhausted (remaining == 0), at which
// point the caller must call YieldNow.
func (c *Context) Take() bool {
	c.remaining--
	return c.remaining == 0
}

// YieldNow resets the budget to quota and yields the goroutine to the Go
// scheduler once; this is coldb's concrete stand-in for the original's
// async yield_now().await, since cooperative scans here run as plain
// goroutines rather than futures.
func (c *Context) YieldNow() {
	c.remaining = c.quota
	runtime.Gosched()
}

// CopyFrom derives a fresh Context that shares other's session id and
// quota, with its own independent counter starting at the full quota.
func CopyFrom(other *Context) *Context {
	return &Context{SessionID: other.SessionID, quota: other.quota, remaining: other.quota}
}

// Quota reports the configured budget, mostly useful for tests asserting
// the yield-count invariant in spec.md section 8.
func (c *Context) Quota() int { return c.quota }
