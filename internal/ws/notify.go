package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type ScoresRecalculatedEvent struct {
	Type         string `json:"type"`
	JobID        string `json:"job_id"`
	Applications int    `json:"applications"`
	Timestamp    string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyScoresRecalculated broadcasts that a job's application scores were
// recomputed. Fire-and-forget: no hub, no event.
func NotifyScoresRecalculated(jobID uuid.UUID, applications int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if jobID == uuid.Nil {
		return
	}

	evt := ScoresRecalculatedEvent{
		Type:         "scores_recalculated",
		JobID:        jobID.String(),
		Applications: applications,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
