// Package base implements the differential-drive base core: odometry
// integration from raw firmware feedback and conversion of Cartesian
// velocity requests into the firmware's (speed, radius) command form.
package base

// The package owns two independently guarded state regions:
//
//   - Odometer: encoder/timestamp/cumulative wheel state, mutated by
//     the feedback-ingest path (Update) and read by joint-state
//     consumers.
//   - Commander: the last Cartesian request and the last computed
//     firmware command, mutated by the command-ingest path and read
//     by the transport-output path at its own cadence.
//
// The two regions never interact and take no locks in common, so the
// feedback and command paths cannot stall each other.
//
// Producer: base firmware (via pkg/l0/comm)
// Consumer: L1 controller
