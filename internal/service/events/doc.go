// Package events publishes session lifecycle events to a Redis stream so
// external monitoring can follow escalations. Publishing is optional; when
// no Redis address is configured the monitor uses the no-op publisher.
package events
