// Package config defines settings used by the safeband binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the gRPC server address, the session snapshot path
// and the safety-check tuning knobs (fall threshold, countdown durations,
// emergency contact and the optional Redis event stream).
package config
