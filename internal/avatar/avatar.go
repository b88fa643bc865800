// Package avatar resolves what the host should show next to a conversation:
// the model's real avatar image when one exists, or a deterministically
// generated placeholder (palette color + initials) when it doesn't.
package avatar

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/traybridge/traybridge/internal/directory"
)

// Hash computes a stable non-negative hash of an identity record. It is an
// injected capability so the rendering context can supply the model's own
// hash; DefaultHash is used when none is provided.
type Hash func(rec directory.Identity) uint32

// DefaultHash hashes the first known identity field, in the order primary id,
// phone number, secondary id, group id (FNV-1a). A record with no known
// field hashes to 0.
func DefaultHash(rec directory.Identity) uint32 {
	var seed string
	switch {
	case rec.PrimaryID > 0:
		seed = strconv.FormatInt(rec.PrimaryID, 10)
	case rec.E164 != "":
		seed = rec.E164
	case rec.SecondaryID != 0:
		seed = strconv.FormatInt(rec.SecondaryID, 10)
	case rec.GroupID != 0:
		seed = strconv.FormatInt(rec.GroupID, 10)
	default:
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}

// Placeholder describes a generated avatar: a palette color key and the
// initials to draw.
type Placeholder struct {
	ColorKey int
	Initial  string
}

// Source is the resolution result: either a real avatar image path or a
// placeholder spec. At most one side is set.
type Source struct {
	RealPath    string
	Placeholder *Placeholder
}

// IsZero reports whether resolution produced neither a real path nor a
// placeholder.
func (s Source) IsZero() bool {
	return s.RealPath == "" && s.Placeholder == nil
}

// Resolver turns identity and conversation attributes into an avatar source.
type Resolver struct {
	hash Hash
}

// NewResolver builds a Resolver with the given hash capability, defaulting
// to DefaultHash.
func NewResolver(hash Hash) *Resolver {
	if hash == nil {
		hash = DefaultHash
	}
	return &Resolver{hash: hash}
}

// Resolve picks the avatar source for the given identity. When conv is nil,
// any known identity field yields a placeholder with color key 0 and the
// initial from title, phone tail, or "?"; a fully unknown identity yields a
// zero Source. When conv is present, a real non-sentinel avatar path wins;
// otherwise the placeholder color comes from the explicit assignment or the
// identity hash, and the initial follows the same fallback chain.
//
// Resolve never fails: the worst outcome is a zero Source.
func (r *Resolver) Resolve(id directory.Identity, conv *directory.Conversation) Source {
	if conv == nil {
		if id.IsZero() {
			return Source{}
		}
		initial := titleInitial(id.Title)
		if initial == "" {
			initial = phoneInitial(id.E164)
		}
		return Source{Placeholder: &Placeholder{ColorKey: 0, Initial: initial}}
	}

	if conv.AvatarPath != "" && conv.AvatarPath != directory.NoAvatarPath {
		return Source{RealPath: conv.AvatarPath}
	}

	colorKey := 0
	if conv.ColorIndex != nil {
		colorKey = *conv.ColorIndex
	} else {
		colorKey = int(r.hash(conv.Identity())) % PaletteSize()
	}

	initial := titleInitial(conv.Title)
	if initial == "" {
		initial = phoneInitial(conv.E164)
	}

	return Source{Placeholder: &Placeholder{ColorKey: colorKey, Initial: initial}}
}

// titleInitial returns the first meaningful character of the title,
// uppercased, or "" for an empty title.
func titleInitial(title string) string {
	for _, r := range strings.TrimSpace(title) {
		return strings.ToUpper(string(r))
	}
	return ""
}

// phoneInitial returns the trailing two characters of the phone number (one
// if that is all there is), or "?" when the phone number is empty.
func phoneInitial(e164 string) string {
	runes := []rune(e164)
	switch {
	case len(runes) >= 2:
		return string(runes[len(runes)-2:])
	case len(runes) == 1:
		return string(runes)
	}
	return "?"
}
