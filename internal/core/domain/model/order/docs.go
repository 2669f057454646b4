// Package order contains the Order aggregate and its lifecycle state
// machine. All writes in the system funnel through this aggregate; the
// repositories persist it with compare-and-swap on its version counter.
package order
