package party

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WeberBSG/ParTea/internal/app/models"
)

func TestBuildSharePayload(t *testing.T) {
	origin := "https://partea.app"

	t.Run("map link becomes the share URL", func(t *testing.T) {
		post := models.PartyPost{
			Title:       "Club A",
			Description: "Techno all night.",
			Location: models.PartyLocation{
				Name: "Club A",
				URI:  "https://maps.google.com/?cid=1",
			},
		}

		payload := BuildSharePayload(post, origin)
		assert.Equal(t, "Club A", payload.Title)
		assert.Equal(t, "Techno all night.", payload.Text)
		assert.Equal(t, "https://maps.google.com/?cid=1", payload.URL)
		assert.Equal(t, "Club A\nTechno all night.\nhttps://maps.google.com/?cid=1", payload.ClipboardText)
	})

	t.Run("missing link falls back to the origin", func(t *testing.T) {
		post := models.PartyPost{Title: "Club A", Description: "desc"}

		payload := BuildSharePayload(post, origin)
		assert.Equal(t, "https://partea.app", payload.URL)
	})

	t.Run("non-web schemes are dropped", func(t *testing.T) {
		post := models.PartyPost{
			Title:    "Club A",
			Location: models.PartyLocation{URI: "javascript:alert(1)"},
		}

		payload := BuildSharePayload(post, origin)
		assert.Empty(t, payload.URL)
	})

	t.Run("relative links resolve against the origin", func(t *testing.T) {
		post := models.PartyPost{
			Title:    "Club A",
			Location: models.PartyLocation{URI: "/events/club-a"},
		}

		payload := BuildSharePayload(post, origin)
		assert.Equal(t, "https://partea.app/events/club-a", payload.URL)
	})

	t.Run("untitled post borrows the place name", func(t *testing.T) {
		post := models.PartyPost{
			Location: models.PartyLocation{Name: "sky high lounge"},
		}

		payload := BuildSharePayload(post, origin)
		assert.Equal(t, "Sky High Lounge", payload.Title)
	})

	t.Run("clipboard text omits the trailing newline without a link", func(t *testing.T) {
		post := models.PartyPost{Title: "Club A", Description: "desc"}

		payload := BuildSharePayload(post, origin)
		assert.Equal(t, "Club A\ndesc", payload.ClipboardText)
	})
}
