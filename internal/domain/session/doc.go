// Package session contains the safety-check state machine: the session
// phases, the accelerometer fall trigger and the escalation countdown.
package session
