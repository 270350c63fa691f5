//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another instance of the binary owns the device.
var ErrAlreadyRunning = errors.New("another instance is already running")

// EnsureSingleInstance scans the process table and fails when another process
// with the given executable name exists. Two daemons sharing one state file
// and one sensor would race each other.
func EnsureSingleInstance(executable string) error {
	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		processName := strings.TrimSuffix(process.Executable(), ".exe")
		if processName != executable {
			continue
		}

		return fmt.Errorf("%s (pid %d): %w", executable, process.Pid(), ErrAlreadyRunning)
	}

	return nil
}
