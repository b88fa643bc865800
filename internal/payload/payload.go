// Package payload assembles the three outbound payload shapes from the
// conversation directory: current-user identity, unread count, and the
// filtered chat list.
package payload

import (
	"strconv"

	"github.com/traybridge/traybridge/internal/avatar"
	"github.com/traybridge/traybridge/internal/diag"
	"github.com/traybridge/traybridge/internal/directory"
)

// IdentityPayload carries the current user's display fields. AvatarPath and
// AvatarDataURL are mutually exclusive; a real path always wins over a
// rendered placeholder.
type IdentityPayload struct {
	E164          string `json:"e164,omitempty"`
	Title         string `json:"title,omitempty"`
	AvatarPath    string `json:"avatarPath,omitempty"`
	AvatarDataURL string `json:"avatarDataUrl,omitempty"`
}

// UnreadPayload wraps the total unread-message count.
type UnreadPayload struct {
	UnreadCount int `json:"unreadCount"`
}

// ChatListItem is one conversation row pushed to the host. UnreadCount is
// present only when strictly positive.
type ChatListItem struct {
	PeerID       string `json:"peerId"`
	Title        string `json:"title,omitempty"`
	UnreadCount  int    `json:"unreadCount,omitempty"`
	TopMessageID int64  `json:"topMessageId,omitempty"`
}

// ChatListPayload is the full filtered conversation list.
type ChatListPayload struct {
	Items []ChatListItem `json:"items"`
}

// Builder derives payloads from the injected directory. Avatar rendering
// failures degrade to "no avatar" and are noted on the diagnostics recorder.
type Builder struct {
	dir      directory.Directory
	resolver *avatar.Resolver
	diags    *diag.Recorder
}

// NewBuilder wires a Builder to its directory, resolver, and diagnostics.
func NewBuilder(dir directory.Directory, resolver *avatar.Resolver, diags *diag.Recorder) *Builder {
	if resolver == nil {
		resolver = avatar.NewResolver(nil)
	}
	return &Builder{dir: dir, resolver: resolver, diags: diags}
}

// Identity builds the identity payload for the given identity and optional
// conversation record. ok is false when there is nothing to report: no phone
// number, no title, and no avatar could be resolved.
func (b *Builder) Identity(id directory.Identity, conv *directory.Conversation) (IdentityPayload, bool) {
	p := IdentityPayload{E164: id.E164, Title: id.Title}
	if conv != nil && conv.Title != "" {
		p.Title = conv.Title
	}

	src := b.resolver.Resolve(id, conv)
	switch {
	case src.RealPath != "":
		p.AvatarPath = src.RealPath
	case src.Placeholder != nil:
		dataURL, err := avatar.Render(*src.Placeholder)
		if err != nil {
			b.diags.Note("render-placeholder", "", err)
			break
		}
		p.AvatarDataURL = dataURL
	}

	if p.E164 == "" && p.Title == "" && p.AvatarPath == "" && p.AvatarDataURL == "" {
		return IdentityPayload{}, false
	}
	return p, true
}

// Unread wraps the count as-is. Whether a zero count is worth pushing is the
// caller's decision, not this layer's.
func (b *Builder) Unread(count int) UnreadPayload {
	return UnreadPayload{UnreadCount: count}
}

// ChatList builds the conversation list in directory order, excluding the
// self conversation. UnreadCount is copied only when positive, TopMessageID
// only when set.
func (b *Builder) ChatList() ChatListPayload {
	all := b.dir.All()
	selfID := b.dir.SelfID()

	items := make([]ChatListItem, 0, len(all))
	for _, conv := range all {
		if conv.ID == selfID {
			continue
		}
		item := ChatListItem{
			PeerID: strconv.FormatInt(conv.ID, 10),
			Title:  conv.Title,
		}
		if conv.UnreadCount > 0 {
			item.UnreadCount = conv.UnreadCount
		}
		if conv.TopMessageID != 0 {
			item.TopMessageID = conv.TopMessageID
		}
		items = append(items, item)
	}
	return ChatListPayload{Items: items}
}
