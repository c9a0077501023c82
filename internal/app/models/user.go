package models

import "strings"

// Socials holds optional social media handles for a user profile.
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// User is the session profile. Login is mocked, so there is exactly one of
// these per session and it never touches a backing store.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Photo   string   `json:"photo"`
	Socials *Socials `json:"socials,omitempty"`
}

// Username derives the handle posts are attributed to: the display name
// lowercased with whitespace stripped.
func (u User) Username() string {
	return strings.ToLower(strings.Join(strings.Fields(u.Name), ""))
}
