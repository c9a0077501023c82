package party

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/WeberBSG/ParTea/internal/app/models"
)

// SharePayload is what the client hands to the Web Share API. URL is only
// set when the candidate link normalizes to an absolute http/https URL;
// ClipboardText is the fallback for hosts without share support.
type SharePayload struct {
	Title         string `json:"title"`
	Text          string `json:"text"`
	URL           string `json:"url,omitempty"`
	ClipboardText string `json:"clipboardText"`
}

// BuildSharePayload assembles the share payload for a post. origin is the
// requesting page's origin, used as the URL fallback when the post has no
// map link.
func BuildSharePayload(post models.PartyPost, origin string) SharePayload {
	title := post.Title
	if title == "" {
		title = cases.Title(language.English).String(post.Location.Name)
	}

	payload := SharePayload{
		Title:         title,
		Text:          post.Description,
		ClipboardText: clipboardText(post),
	}

	candidate := post.Location.URI
	if candidate == "" {
		candidate = origin
	}
	if shareURL, ok := normalizeShareURL(candidate, origin); ok {
		payload.URL = shareURL
	}

	return payload
}

// normalizeShareURL resolves the candidate against the origin and accepts
// only absolute http/https results, since sharing targets reject other
// protocols.
func normalizeShareURL(candidate, origin string) (string, bool) {
	base, err := url.Parse(origin)
	if err != nil || !base.IsAbs() {
		base = nil
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}
	if base != nil {
		u = base.ResolveReference(u)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return u.String(), true
}

// clipboardText is the plain-text form copied when sharing is unsupported:
// title, description and the map link (if any), newline separated.
func clipboardText(post models.PartyPost) string {
	return strings.TrimRight(
		fmt.Sprintf("%s\n%s\n%s", post.Title, post.Description, post.Location.URI),
		"\n",
	)
}
