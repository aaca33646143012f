// Package widgets contains dumb render primitives for the history viewer.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, tag tables)
//
// Not allowed here:
// - key handling, viewer state transitions, or history model access
package widgets
