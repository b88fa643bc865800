package directory

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Snapshot is an in-memory Directory. It keeps conversations in insertion
// order, matching whatever ordering the source model provided.
type Snapshot struct {
	selfID int64
	order  []int64
	byID   map[int64]Conversation
}

// NewSnapshot builds a Snapshot from the given conversations, preserving
// their order.
func NewSnapshot(selfID int64, conversations ...Conversation) *Snapshot {
	s := &Snapshot{
		selfID: selfID,
		byID:   make(map[int64]Conversation, len(conversations)),
	}
	for _, c := range conversations {
		if _, ok := s.byID[c.ID]; !ok {
			s.order = append(s.order, c.ID)
		}
		s.byID[c.ID] = c
	}
	return s
}

// SelfID returns the local account's conversation id.
func (s *Snapshot) SelfID() int64 { return s.selfID }

// All returns the conversations in insertion order.
func (s *Snapshot) All() []Conversation {
	out := make([]Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// ByID looks up a conversation by id.
func (s *Snapshot) ByID(id int64) (Conversation, bool) {
	c, ok := s.byID[id]
	return c, ok
}

type snapshotFile struct {
	SelfID        int64              `toml:"self_id"`
	Conversations []snapshotFileConv `toml:"conversation"`
}

type snapshotFileConv struct {
	ID           int64  `toml:"id"`
	Kind         string `toml:"kind"`
	Title        string `toml:"title"`
	ColorIndex   *int   `toml:"color_index"`
	AvatarPath   string `toml:"avatar_path"`
	E164         string `toml:"e164"`
	PrimaryID    int64  `toml:"primary_id"`
	SecondaryID  int64  `toml:"secondary_id"`
	GroupID      int64  `toml:"group_id"`
	UnreadCount  int    `toml:"unread_count"`
	TopMessageID int64  `toml:"top_message_id"`
}

// LoadSnapshot reads a directory snapshot from a TOML file. Missing file is
// an error; the daemon has nothing to push without a directory.
func LoadSnapshot(path string) (*Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("directory snapshot: %w", err)
	}
	var file snapshotFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode directory snapshot: %w", err)
	}
	conversations := make([]Conversation, 0, len(file.Conversations))
	for _, c := range file.Conversations {
		kind := Kind(c.Kind)
		if kind == "" {
			kind = KindUser
		}
		conversations = append(conversations, Conversation{
			ID:           c.ID,
			Kind:         kind,
			Title:        c.Title,
			ColorIndex:   c.ColorIndex,
			AvatarPath:   c.AvatarPath,
			E164:         c.E164,
			PrimaryID:    c.PrimaryID,
			SecondaryID:  c.SecondaryID,
			GroupID:      c.GroupID,
			UnreadCount:  c.UnreadCount,
			TopMessageID: c.TopMessageID,
		})
	}
	return NewSnapshot(file.SelfID, conversations...), nil
}
