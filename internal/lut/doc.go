// Package lut discretizes the engine's color-grading transform over an
// N-cubed grid and serializes it into the CUBE, 3DL, and CSP text formats
// consumed by third-party color tools.
//
// # Sampling Order
//
// Samples are emitted with blue as the outermost loop and red as the fastest
// varying axis, the convention all three formats share. A resolution-N export
// produces exactly N*N*N data lines.
//
// # Concurrency
//
// An Exporter runs one export at a time. Export works in 1,000-sample chunks,
// publishing progress and yielding the processor between chunks so a host
// loop (UI, server) is never starved for the whole grid. Exports cannot be
// cancelled; an abandoned export runs to completion and its result is
// discarded by the caller. Concurrent Export calls on one Exporter are
// rejected rather than racing on the shared progress state.
package lut
