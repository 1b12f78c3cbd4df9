package playlist

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
)

// ShareTarget delivers a shareable link somewhere the user can reach it.
type ShareTarget interface {
	Name() string
	Share(url string) error
}

// ClipboardTarget copies the link to the system clipboard. It is the
// fallback when no platform share capability is configured.
type ClipboardTarget struct{}

func (ClipboardTarget) Name() string { return "clipboard" }

func (ClipboardTarget) Share(url string) error {
	return clipboard.WriteAll(url)
}

// Sharer builds playlist links and pushes them through the configured
// targets in order, stopping at the first success.
type Sharer struct {
	baseURL string
	targets []ShareTarget
}

// NewSharer configures a sharer. With no explicit targets the clipboard
// fallback is used.
func NewSharer(baseURL string, targets ...ShareTarget) *Sharer {
	if len(targets) == 0 {
		targets = []ShareTarget{ClipboardTarget{}}
	}
	return &Sharer{baseURL: baseURL, targets: targets}
}

// Link returns the shareable locator for a playlist.
func (sh *Sharer) Link(playlistID string) string {
	return fmt.Sprintf("%s/playlists/%s", sh.baseURL, playlistID)
}

// Share pushes the playlist link through the targets. If every target
// fails, the error is surfaced rather than swallowed; the link is still
// returned so callers can present it manually.
func (sh *Sharer) Share(playlistID string) (string, error) {
	url := sh.Link(playlistID)
	for _, t := range sh.targets {
		if err := t.Share(url); err != nil {
			log.Printf("findmydj: share via %s: %v", t.Name(), err)
			continue
		}
		return url, nil
	}
	return url, ErrShareFailed
}
