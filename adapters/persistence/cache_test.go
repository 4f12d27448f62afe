package persistence

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

func TestCachedDocumentStore_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	backend := NewMemoryDocumentStore()
	m := metrics.NewCollector("test")
	store := NewCachedDocumentStore(backend, rdb, time.Minute, logger.NewNopLogger(), m)

	require.NoError(t, store.Replace(ctx, document.CollectionProfiles, "main_profile", json.RawMessage(`{"_id":"main_profile"}`)))

	got, err := store.Get(ctx, document.CollectionProfiles, "main_profile")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"main_profile"}`, string(got))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses))
}

// staleCache serves reads from a frozen snapshot, the way a cache holding an
// outdated copy would, while writes and Uncached reach the live backend.
type staleCache struct {
	document.Store
	live document.Store
}

func (c staleCache) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	return c.live.Replace(ctx, collection, key, doc)
}

func (c staleCache) Uncached() document.Store { return c.live }

func projectTitles(t *testing.T, store document.Store) []string {
	t.Helper()
	data, err := NewProjectRepo(store).Get(context.Background())
	require.NoError(t, err)
	titles := make([]string, 0, len(data.Projects))
	for _, p := range data.Projects {
		titles = append(titles, p.Title)
	}
	return titles
}

func TestRepoMutations_ReadPastStaleCache(t *testing.T) {
	ctx := context.Background()
	live := NewMemoryDocumentStore()
	liveProjects := NewProjectRepo(live)

	_, err := liveProjects.Add(ctx, project.Project{Title: "A", Status: "done"})
	require.NoError(t, err)
	require.NoError(t, NewProfileRepo(live).Replace(ctx, &profile.Profile{Personal: profile.PersonalInfo{Name: "old"}}))

	snapshot := NewMemoryDocumentStore()
	for _, c := range []struct{ collection, key string }{
		{document.CollectionProjects, project.Key},
		{document.CollectionProfiles, profile.Key},
	} {
		raw, err := live.Get(ctx, c.collection, c.key)
		require.NoError(t, err)
		require.NoError(t, snapshot.Replace(ctx, c.collection, c.key, raw))
	}

	idB, err := liveProjects.Add(ctx, project.Project{Title: "B", Status: "done"})
	require.NoError(t, err)
	require.NoError(t, NewProfileRepo(live).Replace(ctx, &profile.Profile{Personal: profile.PersonalInfo{Name: "new"}}))

	cached := staleCache{Store: snapshot, live: live}
	cachedProjects := NewProjectRepo(cached)

	_, err = cachedProjects.Add(ctx, project.Project{Title: "C", Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, projectTitles(t, live))

	require.NoError(t, cachedProjects.UpdateItem(ctx, idB, project.Project{Title: "B2", Status: "done"}))
	assert.Equal(t, []string{"A", "B2", "C"}, projectTitles(t, live))

	latest, err := NewProfileRepo(cached).GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.Personal.Name)
}

// hookStore runs onGet once, right after a read from the wrapped store.
type hookStore struct {
	document.Store
	onGet func()
}

func (h *hookStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	doc, err := h.Store.Get(ctx, collection, key)
	if hook := h.onGet; hook != nil {
		h.onGet = nil
		hook()
	}
	return doc, err
}

type CacheIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	rdb       *redis.Client
	backend   *MemoryDocumentStore
	metrics   *metrics.Collector
	store     document.Store
}

func (s *CacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.container = container

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get redis connection string: %s", err)
	}
	opts, err := redis.ParseURL(uri)
	if err != nil {
		s.T().Fatalf("Failed to parse redis URL: %s", err)
	}
	s.rdb = redis.NewClient(opts)
}

func (s *CacheIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushAll(context.Background()).Err())
	s.backend = NewMemoryDocumentStore()
	s.metrics = metrics.NewCollector("test")
	s.store = NewCachedDocumentStore(s.backend, s.rdb, time.Minute, logger.NewNopLogger(), s.metrics)
}

func (s *CacheIntegrationTestSuite) TearDownSuite() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.container != nil {
		if err := s.container.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate redis container: %s", err)
		}
	}
}

func TestCacheIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(CacheIntegrationTestSuite))
}

func (s *CacheIntegrationTestSuite) Test_ReadThrough_And_WriteThrough() {
	ctx := context.Background()
	s.Require().NoError(s.backend.Replace(ctx, document.CollectionSkills, "main_skills", json.RawMessage(`{"skills":[]}`)))

	_, err := s.store.Get(ctx, document.CollectionSkills, "main_skills")
	s.Require().NoError(err)
	_, err = s.store.Get(ctx, document.CollectionSkills, "main_skills")
	s.Require().NoError(err)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheMisses))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheHits))

	// A write through the cache replaces the cached copy.
	s.Require().NoError(s.store.Replace(ctx, document.CollectionSkills, "main_skills", json.RawMessage(`{"skills":[{"category":"x","skills":[]}]}`)))
	got, err := s.store.Get(ctx, document.CollectionSkills, "main_skills")
	s.Require().NoError(err)
	s.JSONEq(`{"skills":[{"category":"x","skills":[]}]}`, string(got))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheMisses))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.CacheHits))
}

func (s *CacheIntegrationTestSuite) Test_NotFound_IsNotCached() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, document.CollectionProjects, "main_projects")
	s.Error(err)

	n, err := s.rdb.Exists(ctx, cacheKey(document.CollectionProjects, "main_projects")).Result()
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *CacheIntegrationTestSuite) Test_WriteDuringFill_IsNotLost() {
	ctx := context.Background()
	hooked := &hookStore{Store: s.backend}
	cached := NewCachedDocumentStore(hooked, s.rdb, time.Minute, logger.NewNopLogger(), s.metrics)
	repo := NewProjectRepo(cached)

	_, err := repo.Add(ctx, project.Project{Title: "A", Status: "done"})
	s.Require().NoError(err)
	s.Require().NoError(s.rdb.FlushAll(ctx).Err())

	// A writer lands between the reader's backend read and its cache fill.
	hooked.onGet = func() {
		_, err := repo.Add(ctx, project.Project{Title: "B", Status: "done"})
		s.Require().NoError(err)
	}
	_, err = repo.Get(ctx)
	s.Require().NoError(err)

	_, err = repo.Add(ctx, project.Project{Title: "C", Status: "done"})
	s.Require().NoError(err)

	s.Equal([]string{"A", "B", "C"}, projectTitles(s.T(), s.backend))
	s.Equal([]string{"A", "B", "C"}, projectTitles(s.T(), cached))
}
