package directory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/traybridge/traybridge/internal/directory"
)

func TestSnapshot_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := directory.NewSnapshot(1,
		directory.Conversation{ID: 3},
		directory.Conversation{ID: 1},
		directory.Conversation{ID: 2},
	)

	all := s.All()
	want := []int64{3, 1, 2}
	if len(all) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Fatalf("All[%d].ID = %d, want %d", i, all[i].ID, id)
		}
	}
}

func TestSnapshot_DuplicateIDKeepsPositionAndLastValue(t *testing.T) {
	t.Parallel()

	s := directory.NewSnapshot(0,
		directory.Conversation{ID: 1, Title: "old"},
		directory.Conversation{ID: 2},
		directory.Conversation{ID: 1, Title: "new"},
	)

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("len(All) = %d, want 2", len(all))
	}
	if all[0].ID != 1 || all[0].Title != "new" {
		t.Fatalf("All[0] = %+v, want id 1 with the later title", all[0])
	}
}

func TestSnapshot_ByID(t *testing.T) {
	t.Parallel()

	s := directory.NewSnapshot(0, directory.Conversation{ID: 5, Title: "five"})
	conv, ok := s.ByID(5)
	if !ok || conv.Title != "five" {
		t.Fatalf("ByID(5) = (%+v, %v)", conv, ok)
	}
	if _, ok := s.ByID(6); ok {
		t.Fatal("ByID(6) = ok, want miss")
	}
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "directory.toml")
	content := `
self_id = 7

[[conversation]]
id = 7
kind = "user"
title = "Self"
e164 = "+15551234567"
primary_id = 7

[[conversation]]
id = 8
title = "Alice"
avatar_path = "/tmp/avatar.jpg"
unread_count = 2
top_message_id = 901
color_index = 4
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	s, err := directory.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if s.SelfID() != 7 {
		t.Fatalf("SelfID = %d, want 7", s.SelfID())
	}

	alice, ok := s.ByID(8)
	if !ok {
		t.Fatal("ByID(8) missed")
	}
	if alice.Kind != directory.KindUser {
		t.Fatalf("Kind = %q, want default %q", alice.Kind, directory.KindUser)
	}
	if alice.AvatarPath != "/tmp/avatar.jpg" || alice.UnreadCount != 2 || alice.TopMessageID != 901 {
		t.Fatalf("conversation = %+v", alice)
	}
	if alice.ColorIndex == nil || *alice.ColorIndex != 4 {
		t.Fatalf("ColorIndex = %v, want 4", alice.ColorIndex)
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := directory.LoadSnapshot(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("LoadSnapshot(missing) = nil error, want error")
	}
}
