package domain

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

var (
	shortLinkHosts = []string{"youtu.be", "www.youtu.be"}
	canonicalHosts = []string{"youtube.com", "www.youtube.com", "m.youtube.com"}

	// pathIDMarkers precede the identifier in path-embedded forms.
	pathIDMarkers = []string{"embed", "v", "shorts"}
)

// ParseVideoID extracts a playable video identifier from a link.
// Supported forms:
//   - https://youtu.be/<id>
//   - https://www.youtube.com/watch?v=<id> (also youtube.com and m.youtube.com)
//   - https://www.youtube.com/embed/<id>, /v/<id>, /shorts/<id>
//
// Blank, malformed, or unrecognized links yield mo.None.
func ParseVideoID(link string) mo.Option[string] {
	link = strings.TrimSpace(link)
	if link == "" {
		return mo.None[string]()
	}

	u, err := url.Parse(link)
	if err != nil {
		return mo.None[string]()
	}

	host := strings.ToLower(u.Hostname())

	switch {
	case lo.Contains(shortLinkHosts, host):
		return nonEmpty(strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0])

	case lo.Contains(canonicalHosts, host):
		if id := u.Query().Get("v"); id != "" {
			return mo.Some(id)
		}

		parts := strings.Split(u.Path, "/")
		for i, part := range parts {
			if lo.Contains(pathIDMarkers, part) && i+1 < len(parts) {
				return nonEmpty(parts[i+1])
			}
		}
	}

	return mo.None[string]()
}

// WatchURL returns the canonical playable URL for a video identifier.
func WatchURL(id string) string {
	return watchURLPrefix + url.QueryEscape(id)
}

// VideoURL resolves a record's video link to a canonical playable URL.
func (r *Record) VideoURL() mo.Option[string] {
	id, ok := ParseVideoID(r.VideoLink).Get()
	if !ok {
		return mo.None[string]()
	}

	return mo.Some(WatchURL(id))
}

func nonEmpty(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}

	return mo.Some(s)
}
