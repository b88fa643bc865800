package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/traybridge/traybridge/internal/diag"
)

func TestNote_RecordsFailure(t *testing.T) {
	t.Parallel()
	r := diag.NewRecorder(nil)

	r.Note("send", "chat-list", errors.New("queue full"))

	records := r.Recent()
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Op != "send" || rec.Channel != "chat-list" || rec.Err != "queue full" {
		t.Fatalf("record = %+v", rec)
	}
	if rec.Time.IsZero() {
		t.Fatal("record time is zero")
	}
}

func TestNote_NilErrIgnored(t *testing.T) {
	t.Parallel()
	r := diag.NewRecorder(nil)

	r.Note("send", "chat-list", nil)
	if got := len(r.Recent()); got != 0 {
		t.Fatalf("len(records) = %d, want 0", got)
	}
}

func TestNote_BoundedHistory(t *testing.T) {
	t.Parallel()
	r := diag.NewRecorder(nil)

	for i := 0; i < 200; i++ {
		r.Note("send", "chat-list", fmt.Errorf("failure %d", i))
	}

	records := r.Recent()
	if len(records) != 128 {
		t.Fatalf("len(records) = %d, want 128", len(records))
	}
	if records[0].Err != "failure 72" {
		t.Fatalf("oldest record = %q, want failure 72", records[0].Err)
	}
	if records[len(records)-1].Err != "failure 199" {
		t.Fatalf("newest record = %q, want failure 199", records[len(records)-1].Err)
	}
}

func TestNilRecorder(t *testing.T) {
	t.Parallel()

	var r *diag.Recorder
	r.Note("send", "chat-list", errors.New("dropped"))
	if r.Recent() != nil {
		t.Fatal("nil recorder returned records")
	}
}
