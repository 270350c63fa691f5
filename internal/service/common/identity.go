//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	pb "github.com/oshokin/safeband/internal/pb/v1"
)

// DetectIdentity builds the wearer identity reported with every command.
// Configured values win; missing ones fall back to the hostname as device ID
// and the current OS user as wearer name.
// Returns a protobuf type because callers pass it directly to gRPC clients.
func DetectIdentity(deviceID, wearer string) (*pb.WearerIdentity, error) {
	if deviceID == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("hostname: %w", err)
		}

		deviceID = hostname
	}

	if wearer == "" {
		currentUser, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("current user: %w", err)
		}

		wearer = currentUser.Username
	}

	return &pb.WearerIdentity{
		DeviceId: deviceID,
		Wearer:   wearer,
	}, nil
}
