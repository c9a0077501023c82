package party

import (
	"time"

	"github.com/WeberBSG/ParTea/internal/app/models"
)

// SeedPosts is the static fallback set shown before any live data exists and
// whenever a search legitimately returns zero results.
func SeedPosts(now time.Time) []models.PartyPost {
	return []models.PartyPost{
		{
			ID:          "1",
			Title:       "Neon Rooftop Party",
			Description: "The best house music under the stars. Free drinks for the first 50 guests!",
			Location: models.PartyLocation{
				Name:      "Sky High Lounge",
				Latitude:  40.7128,
				Longitude: -74.0060,
			},
			PhotoURL:  "https://picsum.photos/seed/p1/1080/1920",
			Username:  "partyanimal",
			Timestamp: now.Add(-1 * time.Hour).UnixMilli(),
		},
		{
			ID:          "2",
			Title:       "Beachside Rave",
			Description: "Electronic beats and ocean breeze. Bring your swimsuit!",
			Location: models.PartyLocation{
				Name:      "Sunset Sands",
				Latitude:  34.0522,
				Longitude: -118.2437,
			},
			PhotoURL:  "https://picsum.photos/seed/p2/1080/1920",
			Username:  "beachvibes",
			Timestamp: now.Add(-2 * time.Hour).UnixMilli(),
		},
	}
}
