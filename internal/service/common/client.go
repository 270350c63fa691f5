//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/safeband/internal/config"
	pb "github.com/oshokin/safeband/internal/pb/v1"
)

// Client wraps the gRPC SafetyCheckService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the safeband server.
	conn *grpc.ClientConn
	// api is the generated SafetyCheckService client interface.
	api pb.SafetyCheckServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the safeband server.
// Note: this uses insecure transport credentials; the daemon and its clients
// talk over the device-local loopback or a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial safeband server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewSafetyCheckServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetSessionState retrieves the current session snapshot.
func (c *Client) GetSessionState(ctx context.Context, actor *pb.WearerIdentity) (*pb.SessionState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetSessionState(callCtx, &pb.GetSessionStateRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get session state: %w", err)
	}

	return resp, nil
}

// AcknowledgeSafe confirms the wearer is okay, optionally re-arming
// monitoring in the same call.
func (c *Client) AcknowledgeSafe(
	ctx context.Context,
	actor *pb.WearerIdentity,
	rearm bool,
) (*pb.SessionState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.AcknowledgeSafeRequest{
		Actor: actor,
		Rearm: rearm,
	}

	response, err := c.api.AcknowledgeSafe(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("acknowledge safe: %w", err)
	}

	return response, nil
}

// Rearm starts a fresh monitoring session on the server.
func (c *Client) Rearm(ctx context.Context, actor *pb.WearerIdentity) (*pb.SessionState, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.Rearm(callCtx, &pb.RearmRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("rearm session: %w", err)
	}

	return response, nil
}

// ReportMotionSample feeds one accelerometer sample to the server.
func (c *Client) ReportMotionSample(
	ctx context.Context,
	actor *pb.WearerIdentity,
	sample *pb.MotionSample,
) (*pb.ReportMotionSampleResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.ReportMotionSampleRequest{
		Actor:  actor,
		Sample: sample,
	}

	response, err := c.api.ReportMotionSample(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("report motion sample: %w", err)
	}

	return response, nil
}

// WatchSession opens the live session stream. The stream lives as long as the
// provided context; the call timeout does not apply.
func (c *Client) WatchSession(
	ctx context.Context,
	actor *pb.WearerIdentity,
) (pb.SafetyCheckService_WatchSessionClient, error) {
	stream, err := c.api.WatchSession(ctx, &pb.WatchSessionRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("watch session: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
