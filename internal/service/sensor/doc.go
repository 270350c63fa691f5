// Package sensor provides the motion and heart-rate inputs for the monitor:
// a replay source that feeds recorded accelerometer samples from a JSONL
// file and a simulated heart-rate generator for the status display.
package sensor
