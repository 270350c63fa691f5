// Package status implements the safeband display client: it polls the
// session state or follows the live stream and renders phase, countdown and
// the latest heart-rate reading.
package status
