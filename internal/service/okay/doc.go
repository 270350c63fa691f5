// Package okay implements the "I'm okay" button: it confirms the wearer is
// safe on the safeband server, retrying until the server accepts.
package okay
