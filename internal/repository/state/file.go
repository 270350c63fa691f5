package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/domain/session"
	pb "github.com/oshokin/safeband/internal/pb/v1"
)

// Repository defines persistence operations for the safety-check session.
type Repository interface {
	Load(ctx context.Context) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
}

// FileRepository persists the session to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON session file.
	path string
	// mu protects concurrent access to the session file.
	mu sync.Mutex
}

// ErrNotFound is returned when the session file does not exist yet.
var ErrNotFound = errors.New("session not found")

// phaseToProto maps domain phases to their protobuf representation.
var phaseToProto = map[session.Phase]pb.SessionPhase{
	session.PhaseIdle:       pb.SessionPhase_SESSION_PHASE_IDLE,
	session.PhaseMonitoring: pb.SessionPhase_SESSION_PHASE_MONITORING,
	session.PhaseAlerting:   pb.SessionPhase_SESSION_PHASE_ALERTING,
	session.PhaseEscalated:  pb.SessionPhase_SESSION_PHASE_ESCALATED,
	session.PhaseResolved:   pb.SessionPhase_SESSION_PHASE_RESOLVED,
}

// phaseFromProto is the inverse of phaseToProto.
var phaseFromProto = map[pb.SessionPhase]session.Phase{
	pb.SessionPhase_SESSION_PHASE_IDLE:       session.PhaseIdle,
	pb.SessionPhase_SESSION_PHASE_MONITORING: session.PhaseMonitoring,
	pb.SessionPhase_SESSION_PHASE_ALERTING:   session.PhaseAlerting,
	pb.SessionPhase_SESSION_PHASE_ESCALATED:  session.PhaseEscalated,
	pb.SessionPhase_SESSION_PHASE_RESOLVED:   session.PhaseResolved,
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the session from disk. The fall threshold is a tuning knob and
// is not persisted; callers re-apply it from configuration after loading.
func (r *FileRepository) Load(_ context.Context) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read session file: %w", err)
	}

	var protoSession pb.SessionState
	if err = protojson.Unmarshal(contents, &protoSession); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	return FromProto(&protoSession), nil
}

// Save writes the session to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		protoSession   = ToProto(s)
		marshalOptions = protojson.MarshalOptions{
			EmitUnpopulated: true,
		}
	)

	data, err := marshalOptions.Marshal(protoSession)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// FromProto converts protobuf SessionState into the domain Session model.
func FromProto(protoSession *pb.SessionState) *session.Session {
	var (
		updatedAt time.Time
		actor     *session.Actor
	)

	if ts := protoSession.GetUpdatedAt(); ts != nil {
		updatedAt = ts.AsTime()
	}

	if protoActor := protoSession.GetLastActor(); protoActor != nil {
		actor = &session.Actor{
			DeviceID: protoActor.GetDeviceId(),
			Wearer:   protoActor.GetWearer(),
		}
	}

	return &session.Session{
		ID:            protoSession.GetSessionId(),
		Phase:         phaseFromProto[protoSession.GetPhase()],
		RemainingTime: protoSession.GetRemainingSeconds(),
		TotalDuration: protoSession.GetTotalSeconds(),
		IsRunning:     protoSession.GetIsRunning(),
		FallDetected:  protoSession.GetFallDetected(),
		ContactShown:  protoSession.GetContactShown(),
		Degraded:      protoSession.GetDegraded(),
		UpdatedAt:     updatedAt,
		LastActor:     actor,
	}
}

// ToProto converts the domain Session model into protobuf SessionState.
func ToProto(s *session.Session) *pb.SessionState {
	var updatedAt *timestamppb.Timestamp
	if !s.UpdatedAt.IsZero() {
		updatedAt = timestamppb.New(s.UpdatedAt)
	}

	var actor *pb.WearerIdentity
	if s.LastActor != nil {
		actor = &pb.WearerIdentity{
			DeviceId: s.LastActor.DeviceID,
			Wearer:   s.LastActor.Wearer,
		}
	}

	return &pb.SessionState{
		SessionId:        s.ID,
		Phase:            phaseToProto[s.Phase],
		RemainingSeconds: s.RemainingTime,
		TotalSeconds:     s.TotalDuration,
		IsRunning:        s.IsRunning,
		FallDetected:     s.FallDetected,
		ContactShown:     s.ContactShown,
		Degraded:         s.Degraded,
		UpdatedAt:        updatedAt,
		LastActor:        actor,
	}
}
