// Package directory exposes the read-only conversation directory the bridge
// derives its payloads from. The directory is owned by the rendering context;
// the bridge only ever reads it.
package directory

// NoAvatarPath is the sentinel path the conversation model uses for entries
// that explicitly have no avatar image. A conversation whose avatar path
// equals this value is treated the same as one with no avatar at all.
const NoAvatarPath = "no-avatar"

// Kind distinguishes direct conversations from group conversations.
type Kind string

const (
	KindUser  Kind = "user"
	KindGroup Kind = "group"
)

// Identity is the attribute record of the current account. All fields are
// optional; zero values mean "unknown". The numeric ids are only ever used
// as hash input for placeholder color selection.
type Identity struct {
	E164        string
	Title       string
	PrimaryID   int64
	SecondaryID int64
	GroupID     int64
}

// IsZero reports whether no identity attribute is known.
func (id Identity) IsZero() bool {
	return id.E164 == "" && id.Title == "" && id.PrimaryID == 0 && id.SecondaryID == 0 && id.GroupID == 0
}

// Conversation is a single entry of the conversation directory.
type Conversation struct {
	ID    int64
	Kind  Kind
	Title string

	// ColorIndex is the explicit palette assignment from the model, if any.
	ColorIndex *int

	// AvatarPath is the model's avatar image path. Empty means no avatar;
	// NoAvatarPath means the model explicitly recorded the absence.
	AvatarPath string

	E164        string
	PrimaryID   int64
	SecondaryID int64
	GroupID     int64

	UnreadCount  int
	TopMessageID int64
}

// Identity returns the conversation's identity attributes as a record
// suitable for hashing.
func (c Conversation) Identity() Identity {
	return Identity{
		E164:        c.E164,
		Title:       c.Title,
		PrimaryID:   c.PrimaryID,
		SecondaryID: c.SecondaryID,
		GroupID:     c.GroupID,
	}
}

// Directory is the read-only lookup capability injected into the bridge.
// Implementations must preserve the model's own conversation ordering in All.
type Directory interface {
	// SelfID returns the id of the conversation representing the local
	// account.
	SelfID() int64
	// All enumerates every conversation in model order.
	All() []Conversation
	// ByID looks up a single conversation.
	ByID(id int64) (Conversation, bool)
}
