// Package monitor implements the safety-check controller: it owns the
// session state machine and applies motion samples, clock ticks, heart-rate
// readings and user commands in arrival order on a single apply loop.
//
// Side effects (alarm, display, emergency dial, persistence, event
// publishing) happen on phase transitions only; the emergency dial fires
// exactly once per escalation.
package monitor
