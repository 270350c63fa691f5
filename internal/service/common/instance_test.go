//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnsureSingleInstance_NoOtherProcess passes for a name nothing runs under.
func TestEnsureSingleInstance_NoOtherProcess(t *testing.T) {
	t.Parallel()

	require.NoError(t, EnsureSingleInstance("safeband-no-such-binary"))
}
