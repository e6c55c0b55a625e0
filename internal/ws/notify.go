package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ProgressEvent is pushed to connected clients after every accepted
// submission so dashboards update without polling.
type ProgressEvent struct {
	Type      string `json:"type"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	Rank      string `json:"rank"`
	Streak    int    `json:"streak"`
	XPGained  int    `json:"xp_gained"`
	LeveledUp bool   `json:"leveled_up"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyProgress broadcasts the event through the default hub. It is a no-op
// when no hub is wired (tests, marketdata tool).
func NotifyProgress(evt ProgressEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if evt.UserID == "" {
		return
	}

	evt.Type = "progress_updated"
	evt.EventID = uuid.NewString()
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
