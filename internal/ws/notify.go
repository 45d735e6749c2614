package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// PipelineEvent is one progress tick of a batch run: scrape started, a
// posting processed, or the run finished.
type PipelineEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Title     string `json:"title,omitempty"`
	SOCCode   string `json:"soc_code,omitempty"`
	Processed int    `json:"processed"`
	Failed    int    `json:"failed"`
	Timestamp string `json:"timestamp"`
}

const (
	EventBatchStarted  = "batch_started"
	EventJobProcessed  = "job_processed"
	EventBatchFinished = "batch_finished"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// Notify broadcasts one event through the default hub. A nil hub means the
// socket surface is disabled and the event is dropped silently.
func Notify(evt PipelineEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
