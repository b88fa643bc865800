// Package diag records failures the bridge absorbs. Push operations never
// return errors to callers, so this recorder is the only place a swallowed
// transport or rendering failure remains visible.
package diag

import (
	"log/slog"
	"sync"
	"time"
)

const defaultCapacity = 128

// Record is one absorbed failure.
type Record struct {
	Time    time.Time `json:"time"`
	Op      string    `json:"op"`
	Channel string    `json:"channel,omitempty"`
	Err     string    `json:"error"`
}

// Recorder keeps a bounded in-memory history of absorbed failures and logs
// each one at warn level. A nil Recorder is valid and drops everything.
type Recorder struct {
	mu      sync.Mutex
	logger  *slog.Logger
	cap     int
	records []Record
}

// NewRecorder builds a Recorder logging through the given logger.
func NewRecorder(log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{
		logger: log.With(slog.String("component", "diag")),
		cap:    defaultCapacity,
	}
}

// Note records an absorbed failure. A nil err is ignored.
func (r *Recorder) Note(op, channel string, err error) {
	if r == nil || err == nil {
		return
	}
	rec := Record{
		Time:    time.Now(),
		Op:      op,
		Channel: channel,
		Err:     err.Error(),
	}

	r.mu.Lock()
	r.records = append(r.records, rec)
	if len(r.records) > r.cap {
		r.records = r.records[len(r.records)-r.cap:]
	}
	r.mu.Unlock()

	r.logger.Warn("absorbed failure",
		slog.String("op", op),
		slog.String("channel", channel),
		slog.String("error", err.Error()),
	)
}

// Recent returns a copy of the recorded failures, oldest first.
func (r *Recorder) Recent() []Record {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
