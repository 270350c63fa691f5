// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with timeouts, detection of
// the wearer identity reported with every command, and a single-instance
// guard so two daemons never fight over one device.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
