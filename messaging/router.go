// Package messaging accepts messages from registered participants and decides
// which messages each requester is allowed to read.
package messaging

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/chatroom-api/databases"
	"github.com/linesmerrill/chatroom-api/models"
	"github.com/linesmerrill/chatroom-api/validation"
)

// Router stores messages and filters them on read. It keeps no state between
// calls; every decision reads the store.
type Router struct {
	Participants databases.ParticipantDatabase
	Messages     databases.MessageDatabase
	Broadcast    string
	Now          func() time.Time
}

// NewRouter returns a Router addressing broadcast messages to broadcast
func NewRouter(pdb databases.ParticipantDatabase, mdb databases.MessageDatabase, broadcast string) *Router {
	return &Router{
		Participants: pdb,
		Messages:     mdb,
		Broadcast:    broadcast,
		Now:          time.Now,
	}
}

// Post validates and stores a message sent by sender. It fails with a
// *models.ValidationError on a malformed payload and with models.ErrNotFound
// when sender is not a registered participant.
func (r *Router) Post(ctx context.Context, sender, to, text, msgType string) (*models.Message, error) {
	req := models.MessageRequest{From: sender, To: to, Text: text, Type: msgType}
	if err := validation.Message(req); err != nil {
		return nil, err
	}

	if _, err := r.Participants.FindOne(ctx, bson.M{"name": sender}); err != nil {
		if databases.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrNotFound, sender)
		}
		return nil, databases.Unavailable("find sender", err)
	}

	msg := models.Message{
		From: sender,
		To:   to,
		Text: text,
		Type: msgType,
		Time: r.timestamp(),
	}
	if err := r.Messages.InsertOne(ctx, msg); err != nil {
		return nil, databases.Unavailable("insert message", err)
	}
	return &msg, nil
}

// ListVisible returns the messages requester may read, oldest first. When
// limit is positive only the last limit of them are returned.
func (r *Router) ListVisible(ctx context.Context, requester string, limit int) ([]models.Message, error) {
	all, err := r.Messages.Find(ctx, bson.M{})
	if err != nil {
		return nil, databases.Unavailable("find messages", err)
	}

	visible := lo.Filter(all, func(m models.Message, _ int) bool {
		return r.Visible(m, requester)
	})
	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	if visible == nil {
		visible = []models.Message{}
	}
	return visible, nil
}

// Visible is the read rule: public messages, broadcasts, and anything the
// requester sent or received.
func (r *Router) Visible(m models.Message, requester string) bool {
	return m.Type == models.MessageTypePublic ||
		m.To == r.Broadcast ||
		m.To == requester ||
		m.From == requester
}

// Announce stores a status message from participant to the broadcast token
func (r *Router) Announce(ctx context.Context, from, text string) (*models.Message, error) {
	msg := r.status(from, text, r.timestamp())
	if err := r.Messages.InsertOne(ctx, msg); err != nil {
		return nil, databases.Unavailable("insert status message", err)
	}
	return &msg, nil
}

// AnnounceMany stores one status message per name in a single batch
func (r *Router) AnnounceMany(ctx context.Context, names []string, text string) ([]models.Message, error) {
	ts := r.timestamp()
	batch := lo.Map(names, func(name string, _ int) models.Message {
		return r.status(name, text, ts)
	})
	if err := r.Messages.InsertMany(ctx, batch); err != nil {
		return nil, databases.Unavailable("insert status messages", err)
	}
	return batch, nil
}

func (r *Router) status(from, text, ts string) models.Message {
	return models.Message{
		From: from,
		To:   r.Broadcast,
		Text: text,
		Type: models.MessageTypeStatus,
		Time: ts,
	}
}

func (r *Router) timestamp() string {
	return r.Now().Format(models.TimeLayout)
}

// ParseLimit reads the limit query parameter. Absent, unparsable and
// non-positive values all mean no limit and yield 0.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
