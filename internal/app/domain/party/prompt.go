package party

import "fmt"

// DefaultQuery is the search topic used when the caller does not supply one.
const DefaultQuery = "popular parties, nightclubs, or social events tonight"

// searchPrompt builds the grounded search prompt. The maps tool anchors the
// answer; the prompt only states what to enumerate and how.
func searchPrompt(query string, lat, lng float64) string {
	return fmt.Sprintf(`Find %s near latitude %f, longitude %f.
Please list the events. For each event, provide:
1. Title
2. A brief description
3. Location name
4. Approximate coordinates if possible.

Make it conversational but distinct for each entry.`, query, lat, lng)
}
