// Package alert contains the escalation side effects: the alarm sound and
// display sinks (Notifier) and the emergency call action (Dialer).
//
// The default implementations shell out to configured commands so the daemon
// stays portable across devices; when no command is configured a logging
// fallback keeps the escalation observable.
package alert
