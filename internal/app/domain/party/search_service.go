package party

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	genai "google.golang.org/genai"

	"github.com/WeberBSG/ParTea/internal/app/models"
	"github.com/WeberBSG/ParTea/internal/app/observability/metrics"
	"github.com/WeberBSG/ParTea/internal/pkg/config"
)

const (
	// fallbackTitle labels a grounding chunk whose place carries no title.
	fallbackTitle = "Party Event"

	// searchUsername marks search-derived posts as machine-sourced.
	searchUsername = "GoogleMapsExplorer"

	// jitterSpread is the total width of the coordinate perturbation window:
	// each axis moves by (rand-0.5)*jitterSpread, i.e. within ±0.005 degrees.
	// Grounding chunks do not reliably expose precise per-place coordinates,
	// so results are scattered around the search center instead.
	jitterSpread = 0.01

	// photoSeedOffset keeps placeholder photos for search results out of the
	// seed range used by the static posts.
	photoSeedOffset = 400
)

// SearchService issues a geolocated party search against Gemini with the
// Google Maps grounding tool and maps the grounding chunks into feed posts.
type SearchService interface {
	SearchParties(ctx context.Context, lat, lng float64, query string) (*models.SearchResult, error)
}

// contentGenerator is the slice of the genai client the service needs.
// *genai.Models satisfies it; tests supply a fake.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure implementation satisfies the interface
var _ SearchService = (*SearchServiceImpl)(nil)

type SearchServiceImpl struct {
	gen         contentGenerator
	model       string
	temperature float32
	logger      *zap.Logger

	// rand and now are injected so tests can pin jitter and timestamps.
	rand func() float64
	now  func() time.Time
}

// NewSearchService creates the search service with its own Gemini client.
// The credential comes from configuration; a missing key is a configuration
// error, never a transient one.
func NewSearchService(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*SearchServiceImpl, error) {
	if cfg.APIKey == "" {
		return nil, models.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &SearchServiceImpl{
		gen:         client.Models,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
		rand:        rand.Float64,
		now:         time.Now,
	}, nil
}

// SearchParties runs one grounded search. It either fails as a whole or
// succeeds, possibly with zero posts; partial upstream payloads (missing
// text, missing chunks, untitled places) degrade gracefully instead of
// erroring.
func (s *SearchServiceImpl) SearchParties(ctx context.Context, lat, lng float64, query string) (*models.SearchResult, error) {
	ctx, span := otel.Tracer("PartySearchService").Start(ctx, "SearchParties", trace.WithAttributes(
		attribute.Float64("latitude", lat),
		attribute.Float64("longitude", lng),
	))
	defer span.End()

	if query == "" {
		query = DefaultQuery
	}

	if m := metrics.Get(); m != nil {
		m.SearchRequestsTotal.Add(ctx, 1)
	}

	l := s.logger.With(zap.String("method", "SearchParties"),
		zap.Float64("lat", lat), zap.Float64("lng", lng))
	l.Debug("Issuing grounded party search", zap.String("query", query))

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](s.temperature),
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
		},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(lat),
					Longitude: genai.Ptr(lng),
				},
			},
		},
	}

	response, err := s.gen.GenerateContent(ctx, s.model, genai.Text(searchPrompt(query, lat, lng)), genConfig)
	if err != nil {
		if m := metrics.Get(); m != nil {
			m.SearchErrorsTotal.Add(ctx, 1)
		}
		l.Error("Gemini request failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Gemini request failed")
		return nil, fmt.Errorf("%w: %v", models.ErrSearchFailed, err)
	}

	result := s.mapResponse(ctx, response, lat, lng)

	span.SetAttributes(attribute.Int("posts.count", len(result.Posts)))
	l.Info("Party search completed",
		zap.Int("posts", len(result.Posts)),
		zap.Int("text_length", len(result.Text)))
	return result, nil
}

// mapResponse turns a grounded response into the typed search result. Only
// chunks carrying a maps payload produce posts; everything else is dropped
// silently.
func (s *SearchServiceImpl) mapResponse(ctx context.Context, response *genai.GenerateContentResponse, lat, lng float64) *models.SearchResult {
	if response == nil {
		return &models.SearchResult{Posts: []models.PartyPost{}}
	}

	var chunks []*genai.GroundingChunk
	if len(response.Candidates) > 0 && response.Candidates[0].GroundingMetadata != nil {
		chunks = response.Candidates[0].GroundingMetadata.GroundingChunks
	}

	if m := metrics.Get(); m != nil {
		m.GroundingChunksTotal.Add(ctx, int64(len(chunks)))
	}

	timestamp := s.now().UnixMilli()
	posts := make([]models.PartyPost, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == nil || chunk.Maps == nil {
			continue
		}
		mapInfo := chunk.Maps

		title := mapInfo.Title
		if title == "" {
			title = fallbackTitle
		}

		posts = append(posts, models.PartyPost{
			ID:          uuid.New().String(),
			Title:       title,
			Description: fmt.Sprintf("Join us at %s! Check out the details on Google Maps.", title),
			Location: models.PartyLocation{
				Name:      mapInfo.Title,
				Latitude:  lat + (s.rand()-0.5)*jitterSpread,
				Longitude: lng + (s.rand()-0.5)*jitterSpread,
				URI:       mapInfo.URI,
			},
			PhotoURL:  placeholderPhotoURL(len(posts) + photoSeedOffset),
			Username:  searchUsername,
			Timestamp: timestamp,
		})
	}

	return &models.SearchResult{
		Text:  response.Text(),
		Posts: posts,
	}
}

func placeholderPhotoURL(seed int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/1080/1920", seed)
}
