package party

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/WeberBSG/ParTea/internal/app/domain/location"
	"github.com/WeberBSG/ParTea/internal/app/models"
	"github.com/WeberBSG/ParTea/internal/app/observability/metrics"
	"github.com/WeberBSG/ParTea/internal/pkg/utils"
)

// DefaultPartyPhoto is used when a created post carries no cover photo.
const DefaultPartyPhoto = "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=1080&h=1920"

// NewPost is the client payload for a user-submitted party post.
type NewPost struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	LocationName string          `json:"locationName" binding:"required"`
	PhotoURL     string          `json:"photoUrl"`
	Geo          location.Report `json:"geo"`
}

// FeedService owns the in-memory session post list and orchestrates the
// refresh sequence: resolve location, search, fall back to seeds on empty.
type FeedService interface {
	List() []models.PartyPost
	Get(id string) (models.PartyPost, error)
	PostsByUsername(username string) []models.PartyPost
	AddPost(ctx context.Context, user models.User, draft NewPost) models.PartyPost
	RefreshNearby(ctx context.Context, resolver location.Resolver, query string) ([]models.PartyPost, error)
}

// Ensure implementation satisfies the interface
var _ FeedService = (*FeedServiceImpl)(nil)

type FeedServiceImpl struct {
	search SearchService
	logger *zap.Logger
	now    func() time.Time

	// Overlapping refreshes for the same coordinate share one in-flight
	// search instead of stacking calls against the upstream service.
	group singleflight.Group

	mu         sync.RWMutex
	posts      []models.PartyPost
	refreshGen uint64
	appliedGen uint64
}

// NewFeedService creates the feed pre-populated with the seed posts.
func NewFeedService(search SearchService, logger *zap.Logger) *FeedServiceImpl {
	s := &FeedServiceImpl{
		search: search,
		logger: logger,
		now:    time.Now,
	}
	s.posts = SeedPosts(s.now())
	return s
}

// List returns a copy of the current feed, newest first.
func (s *FeedServiceImpl) List() []models.PartyPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PartyPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get returns a single post by id.
func (s *FeedServiceImpl) Get(id string) (models.PartyPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.PartyPost{}, models.ErrNotFound
}

// PostsByUsername returns the posts attributed to the given handle.
func (s *FeedServiceImpl) PostsByUsername(username string) []models.PartyPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PartyPost, 0)
	for _, p := range s.posts {
		if p.Username == username {
			out = append(out, p)
		}
	}
	return out
}

// AddPost creates a user-submitted post and prepends it to the feed. A failed
// or absent device fix falls back to (0, 0) rather than rejecting the post.
func (s *FeedServiceImpl) AddPost(ctx context.Context, user models.User, draft NewPost) models.PartyPost {
	coord, err := location.FromReport(draft.Geo).Resolve(ctx)
	if err != nil || !utils.HasValidCoordinates(coord.Latitude, coord.Longitude) {
		coord = models.Coordinate{}
	}

	photo := draft.PhotoURL
	if photo == "" {
		photo = DefaultPartyPhoto
	}

	post := models.PartyPost{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		Location: models.PartyLocation{
			Name:      draft.LocationName,
			Latitude:  coord.Latitude,
			Longitude: coord.Longitude,
		},
		PhotoURL:  photo,
		Username:  user.Username(),
		Timestamp: s.now().UnixMilli(),
	}

	s.mu.Lock()
	s.posts = append([]models.PartyPost{post}, s.posts...)
	size := len(s.posts)
	s.mu.Unlock()

	s.recordFeedSize(ctx, size)
	s.logger.Info("Post created",
		zap.String("post_id", post.ID),
		zap.String("username", post.Username))
	return post
}

// RefreshNearby runs the whole search sequence: resolve the caller's
// location, search around it, and replace the feed with the results. A
// successful search with zero posts substitutes the seed list instead of an
// empty feed. Any failure surfaces as a typed error; retry is the caller
// re-invoking the sequence from location resolution.
func (s *FeedServiceImpl) RefreshNearby(ctx context.Context, resolver location.Resolver, query string) ([]models.PartyPost, error) {
	ctx, span := otel.Tracer("FeedService").Start(ctx, "RefreshNearby")
	defer span.End()

	coord, err := resolver.Resolve(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Location resolution failed")
		s.logger.Warn("Location resolution failed", zap.Error(err))
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("latitude", coord.Latitude),
		attribute.Float64("longitude", coord.Longitude),
	)

	s.mu.Lock()
	s.refreshGen++
	gen := s.refreshGen
	s.mu.Unlock()

	key := fmt.Sprintf("%.6f,%.6f|%s", coord.Latitude, coord.Longitude, query)
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.search.SearchParties(ctx, coord.Latitude, coord.Longitude, query)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Party search failed")
		return nil, err
	}
	if shared {
		s.logger.Debug("Refresh shared an in-flight search", zap.String("key", key))
	}

	// Each caller of a shared flight gets the same result value; copy the
	// posts before sorting so concurrent callers never touch one backing
	// array.
	result := v.(*models.SearchResult)
	posts := append([]models.PartyPost(nil), result.Posts...)
	if len(posts) == 0 {
		s.logger.Info("Search returned no posts, substituting seed list")
		posts = SeedPosts(s.now())
	} else {
		sortByDistance(posts, coord)
	}

	// A refresh that finished after a newer one must not clobber its
	// results; stale outcomes are discarded.
	s.mu.Lock()
	if gen >= s.appliedGen {
		s.posts = posts
		s.appliedGen = gen
	}
	size := len(s.posts)
	s.mu.Unlock()

	s.recordFeedSize(ctx, size)
	span.SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

// sortByDistance orders posts by great-circle distance from the search
// center, closest first.
func sortByDistance(posts []models.PartyPost, center models.Coordinate) {
	origin := orb.Point{center.Longitude, center.Latitude}
	sort.SliceStable(posts, func(i, j int) bool {
		pi := orb.Point{posts[i].Location.Longitude, posts[i].Location.Latitude}
		pj := orb.Point{posts[j].Location.Longitude, posts[j].Location.Latitude}
		return geo.Distance(origin, pi) < geo.Distance(origin, pj)
	})
}

func (s *FeedServiceImpl) recordFeedSize(ctx context.Context, size int) {
	if m := metrics.Get(); m != nil {
		m.FeedPostsGauge.Record(ctx, int64(size))
	}
}
