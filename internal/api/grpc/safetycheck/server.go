package safetycheck

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/safeband/internal/domain/session"
	pb "github.com/oshokin/safeband/internal/pb/v1"
	"github.com/oshokin/safeband/internal/service/monitor"
)

// Service abstracts the controller operations the transport layer depends on.
type Service interface {
	GetState(ctx context.Context) *monitor.Snapshot
	ReportMotionSample(ctx context.Context, actor *session.Actor, v session.Vector) (bool, *monitor.Snapshot, error)
	AcknowledgeSafe(ctx context.Context, actor *session.Actor, rearm bool) (bool, *monitor.Snapshot, error)
	Rearm(ctx context.Context, actor *session.Actor) (*monitor.Snapshot, error)
	Subscribe() (uint64, <-chan *monitor.Snapshot)
	Unsubscribe(id uint64)
}

// Server implements the SafetyCheckService gRPC API.
type Server struct {
	pb.UnimplementedSafetyCheckServiceServer

	// service provides the controller logic for session operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetSessionState returns the current session snapshot.
func (s *Server) GetSessionState(ctx context.Context, _ *pb.GetSessionStateRequest) (*pb.SessionState, error) {
	return toProtoState(s.service.GetState(ctx)), nil
}

// AcknowledgeSafe resolves the session as safe, optionally re-arming it.
func (s *Server) AcknowledgeSafe(ctx context.Context, req *pb.AcknowledgeSafeRequest) (*pb.SessionState, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	_, snapshot, err := s.service.AcknowledgeSafe(ctx, toDomainActor(req.GetActor()), req.GetRearm())
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to acknowledge session")
	}

	return toProtoState(snapshot), nil
}

// Rearm starts a fresh monitoring session.
func (s *Server) Rearm(ctx context.Context, req *pb.RearmRequest) (*pb.SessionState, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	snapshot, err := s.service.Rearm(ctx, toDomainActor(req.GetActor()))
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to re-arm session")
	}

	return toProtoState(snapshot), nil
}

// ReportMotionSample feeds one accelerometer sample to the controller.
func (s *Server) ReportMotionSample(
	ctx context.Context,
	req *pb.ReportMotionSampleRequest,
) (*pb.ReportMotionSampleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sample := req.GetSample()
	if sample == nil {
		return nil, status.Error(codes.InvalidArgument, "sample is required")
	}

	vector := session.Vector{
		X: sample.GetX(),
		Y: sample.GetY(),
		Z: sample.GetZ(),
	}

	fall, snapshot, err := s.service.ReportMotionSample(ctx, toDomainActor(req.GetActor()), vector)
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to apply motion sample")
	}

	return &pb.ReportMotionSampleResponse{
		FallDetected: fall,
		State:        toProtoState(snapshot),
	}, nil
}

// WatchSession streams the current snapshot followed by one snapshot per
// state change until the client goes away.
func (s *Server) WatchSession(req *pb.WatchSessionRequest, stream pb.SafetyCheckService_WatchSessionServer) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	ctx := stream.Context()

	if err := stream.Send(toProtoState(s.service.GetState(ctx))); err != nil {
		return err
	}

	id, updates := s.service.Subscribe()
	defer s.service.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-updates:
			if !ok {
				return nil
			}

			if err := stream.Send(toProtoState(snapshot)); err != nil {
				return err
			}
		}
	}
}

// phaseToProto maps domain phases to their protobuf representation.
var phaseToProto = map[session.Phase]pb.SessionPhase{
	session.PhaseIdle:       pb.SessionPhase_SESSION_PHASE_IDLE,
	session.PhaseMonitoring: pb.SessionPhase_SESSION_PHASE_MONITORING,
	session.PhaseAlerting:   pb.SessionPhase_SESSION_PHASE_ALERTING,
	session.PhaseEscalated:  pb.SessionPhase_SESSION_PHASE_ESCALATED,
	session.PhaseResolved:   pb.SessionPhase_SESSION_PHASE_RESOLVED,
}

// toDomainActor converts a protobuf WearerIdentity to a domain Actor.
func toDomainActor(actor *pb.WearerIdentity) *session.Actor {
	if actor == nil {
		return nil
	}

	return &session.Actor{
		DeviceID: actor.GetDeviceId(),
		Wearer:   actor.GetWearer(),
	}
}

// toProtoState converts a controller snapshot to a pb.SessionState message.
func toProtoState(snapshot *monitor.Snapshot) *pb.SessionState {
	if snapshot == nil || snapshot.Session == nil {
		return &pb.SessionState{}
	}

	sess := snapshot.Session

	var updatedAt *timestamppb.Timestamp
	if !sess.UpdatedAt.IsZero() {
		updatedAt = timestamppb.New(sess.UpdatedAt)
	}

	var actor *pb.WearerIdentity
	if sess.LastActor != nil {
		actor = &pb.WearerIdentity{
			DeviceId: sess.LastActor.DeviceID,
			Wearer:   sess.LastActor.Wearer,
		}
	}

	return &pb.SessionState{
		SessionId:        sess.ID,
		Phase:            phaseToProto[sess.Phase],
		RemainingSeconds: sess.RemainingTime,
		TotalSeconds:     sess.TotalDuration,
		IsRunning:        sess.IsRunning,
		FallDetected:     sess.FallDetected,
		ContactShown:     sess.ContactShown,
		Degraded:         sess.Degraded,
		HeartRateBpm:     snapshot.HeartRate,
		UpdatedAt:        updatedAt,
		LastActor:        actor,
	}
}
