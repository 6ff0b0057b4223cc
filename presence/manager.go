// Package presence owns the participant lifecycle: registration, heartbeats
// and eviction of participants that stopped sending them.
//
// A participant is either absent or present. Register moves it from absent to
// present, Heartbeat keeps it present, and Sweep moves it back to absent.
package presence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/databases"
	"github.com/linesmerrill/chatroom-api/models"
	"github.com/linesmerrill/chatroom-api/validation"
)

// Announcer publishes the status messages that accompany joins and departures
type Announcer interface {
	Announce(ctx context.Context, from, text string) (*models.Message, error)
	AnnounceMany(ctx context.Context, names []string, text string) ([]models.Message, error)
}

// Manager exported for testing purposes
type Manager struct {
	DB        databases.ParticipantDatabase
	Announcer Announcer
	Now       func() time.Time
}

// NewManager returns a Manager reading the wall clock
func NewManager(db databases.ParticipantDatabase, announcer Announcer) *Manager {
	return &Manager{
		DB:        db,
		Announcer: announcer,
		Now:       time.Now,
	}
}

// Register adds name to the room and announces the join.
//
// The participant insert and the join announcement are two writes. When the
// announcement fails the participant is deleted again and the call fails, so a
// caller never sees a successful registration without its join message. If
// the rollback fails too the participant stays without a join notice until
// the sweep evicts it.
func (m *Manager) Register(ctx context.Context, name string) (*models.Participant, error) {
	if err := validation.Participant(models.ParticipantRequest{Name: name}); err != nil {
		return nil, err
	}

	_, err := m.DB.FindOne(ctx, bson.M{"name": name})
	if err == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrConflict, name)
	}
	if !databases.IsNotFound(err) {
		return nil, databases.Unavailable("find participant", err)
	}

	participant := models.Participant{Name: name, LastStatus: m.Now().UnixMilli()}
	if err := m.DB.InsertOne(ctx, participant); err != nil {
		// lost a race against a concurrent registration of the same name
		if databases.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrConflict, name)
		}
		return nil, databases.Unavailable("insert participant", err)
	}

	if _, err := m.Announcer.Announce(ctx, name, models.JoinText); err != nil {
		if _, delErr := m.DB.DeleteOne(ctx, bson.M{"name": name}); delErr != nil {
			zap.S().Errorw("failed to roll back registration",
				"participant", name,
				"error", delErr,
			)
		}
		return nil, err
	}

	return &participant, nil
}

// Heartbeat marks name as active now. lastStatus never moves backwards.
func (m *Manager) Heartbeat(ctx context.Context, name string) error {
	res, err := m.DB.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$max": bson.M{"lastStatus": m.Now().UnixMilli()}},
	)
	if err != nil {
		return databases.Unavailable("update participant", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", models.ErrNotFound, name)
	}
	return nil
}

// List returns every present participant
func (m *Manager) List(ctx context.Context) ([]models.Participant, error) {
	participants, err := m.DB.Find(ctx, bson.M{})
	if err != nil {
		return nil, databases.Unavailable("find participants", err)
	}
	if participants == nil {
		participants = []models.Participant{}
	}
	return participants, nil
}

// Sweep evicts every participant whose last heartbeat is at least threshold
// old and announces their departure. It returns how many were evicted.
//
// Each stale participant is claimed with a conditional delete; only a delete
// that actually removed the document earns a departure message. Running Sweep
// again, or concurrently, therefore never announces a departure twice, and a
// participant that heartbeats between the select and the delete stays.
// Deletes are issued one per participant; only the departure insert is
// batched. Departures are written after the deletes, so a failed batch insert
// leaves those participants evicted without a notice.
func (m *Manager) Sweep(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := m.Now().Add(-threshold).UnixMilli()
	staleFilter := bson.M{"$lte": cutoff}

	stale, err := m.DB.Find(ctx, bson.M{"lastStatus": staleFilter})
	if err != nil {
		return 0, databases.Unavailable("find inactive participants", err)
	}

	var evicted []string
	var errs []error
	for _, p := range stale {
		n, err := m.DB.DeleteOne(ctx, bson.M{"name": p.Name, "lastStatus": staleFilter})
		if err != nil {
			errs = append(errs, databases.Unavailable("delete participant "+p.Name, err))
			continue
		}
		if n > 0 {
			evicted = append(evicted, p.Name)
		}
	}

	if len(evicted) > 0 {
		if _, err := m.Announcer.AnnounceMany(ctx, evicted, models.LeaveText); err != nil {
			errs = append(errs, err)
		}
	}

	return len(evicted), errors.Join(errs...)
}
