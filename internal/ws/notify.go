package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/application"
)

const EventApplicationCreated = "application_created"

type ApplicationCreatedEvent struct {
	Type          string            `json:"type"`
	ApplicationID uuid.UUID         `json:"application_id"`
	JobID         uuid.UUID         `json:"job_id"`
	Stats         application.Stats `json:"stats"`
	Timestamp     string            `json:"timestamp"`
}

// Notifier publishes application events to the owning user's sockets.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ApplicationCreated(userID uuid.UUID, app application.Application, stats application.Stats) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationCreatedEvent{
		Type:          EventApplicationCreated,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		Stats:         stats,
		Timestamp:     n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.PublishToUser(userID.String(), b)
}
