// Package server wires the safeband daemon together: configuration, session
// persistence, sensors, alarm/dial sinks, the monitor controller and the
// gRPC transport.
package server
