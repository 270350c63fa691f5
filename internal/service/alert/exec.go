package alert

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Command template placeholders substituted before execution.
const (
	placeholderLoops   = "{loops}"
	placeholderSeconds = "{seconds}"
	placeholderAwake   = "{awake}"
	placeholderNumber  = "{number}"
)

// ErrNoCommand indicates the command template for the action is empty.
var ErrNoCommand = errors.New("no command configured")

// ExecNotifier runs configured shell commands for the alarm and display sinks.
type ExecNotifier struct {
	// alarmCommand starts the alarm; supports {loops} and {seconds}.
	alarmCommand string
	// stopCommand silences the alarm.
	stopCommand string
	// displayCommand pins/releases the display; supports {awake}.
	displayCommand string
}

// NewExecNotifier creates a notifier backed by the provided command templates.
func NewExecNotifier(alarmCommand, stopCommand, displayCommand string) *ExecNotifier {
	return &ExecNotifier{
		alarmCommand:   alarmCommand,
		stopCommand:    stopCommand,
		displayCommand: displayCommand,
	}
}

// StartAlarm runs the alarm command with the loop pattern substituted in.
func (n *ExecNotifier) StartAlarm(ctx context.Context, loopCount int, loopDuration time.Duration) error {
	command := n.alarmCommand
	command = strings.ReplaceAll(command, placeholderLoops, strconv.Itoa(loopCount))
	command = strings.ReplaceAll(command, placeholderSeconds,
		strconv.FormatFloat(loopDuration.Seconds(), 'f', -1, 64))

	return runCommand(ctx, command)
}

// StopAlarm runs the stop command.
func (n *ExecNotifier) StopAlarm(ctx context.Context) error {
	return runCommand(ctx, n.stopCommand)
}

// KeepDisplayAwake runs the display command with the awake flag substituted in.
func (n *ExecNotifier) KeepDisplayAwake(ctx context.Context, awake bool) error {
	command := strings.ReplaceAll(n.displayCommand, placeholderAwake, strconv.FormatBool(awake))

	return runCommand(ctx, command)
}

// ExecDialer places the emergency call through a configured shell command.
type ExecDialer struct {
	// dialCommand supports {number}.
	dialCommand string
}

// NewExecDialer creates a dialer backed by the provided command template.
func NewExecDialer(dialCommand string) *ExecDialer {
	return &ExecDialer{
		dialCommand: dialCommand,
	}
}

// Dial runs the dial command with the emergency number substituted in.
func (d *ExecDialer) Dial(ctx context.Context, number string) error {
	command := strings.ReplaceAll(d.dialCommand, placeholderNumber, number)

	return runCommand(ctx, command)
}

// runCommand executes the command line through the platform shell and waits
// for it to finish.
func runCommand(ctx context.Context, command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrNoCommand
	}

	var cmd *exec.Cmd
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", command, err)
	}

	return nil
}
