package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// countingStore counts writes so tests can assert a mutation was skipped.
type countingStore struct {
	document.Store
	replaces int
}

func (s *countingStore) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	s.replaces++
	return s.Store.Replace(ctx, collection, key, doc)
}

// brokenStore fails every call the way an unreachable database would.
type brokenStore struct{}

func (brokenStore) Get(_ context.Context, collection, key string) (json.RawMessage, error) {
	return nil, apperror.NewStore("get "+collection+"/"+key, errors.New("connection refused"))
}

func (brokenStore) Replace(_ context.Context, collection, key string, _ json.RawMessage) error {
	return apperror.NewStore("replace "+collection+"/"+key, errors.New("connection refused"))
}

func (brokenStore) Ping(context.Context) error { return errors.New("connection refused") }
func (brokenStore) Close()                     {}

type RepoTestSuite struct {
	suite.Suite
	store       *countingStore
	profiles    profile.Repository
	skills      skill.Repository
	experiences experience.Repository
	projects    project.Repository
}

func (s *RepoTestSuite) SetupTest() {
	s.store = &countingStore{Store: NewMemoryDocumentStore()}
	s.profiles = NewProfileRepo(s.store)
	s.skills = NewSkillRepo(s.store)
	s.experiences = NewExperienceRepo(s.store)
	s.projects = NewProjectRepo(s.store)
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoTestSuite))
}

func (s *RepoTestSuite) Test_Get_Absent_IsNotFound() {
	ctx := context.Background()

	_, err := s.profiles.Get(ctx)
	s.True(errors.Is(err, apperror.ErrNotFound))

	_, err = s.skills.Get(ctx)
	s.True(errors.Is(err, apperror.ErrNotFound))

	_, err = s.projects.Get(ctx)
	s.Equal("Projects not found", apperror.Detail(err))
}

func (s *RepoTestSuite) Test_Profile_Replace_SetsFixedKey() {
	ctx := context.Background()

	p := &profile.Profile{
		Personal: profile.PersonalInfo{Name: "Christa Williford"},
		About:    profile.AboutInfo{Summary: "Researcher"},
	}
	s.Require().NoError(s.profiles.Replace(ctx, p))

	got, err := s.profiles.Get(ctx)
	s.Require().NoError(err)
	s.Equal(profile.Key, got.ID)
	s.Equal("Christa Williford", got.Personal.Name)
	s.NotNil(got.Education)
	s.Empty(got.Education)
}

func (s *RepoTestSuite) Test_Skills_Replace_PreservesOrder() {
	ctx := context.Background()

	in := []skill.Category{
		{Category: "Zeta", Skills: []string{"b", "a"}},
		{Category: "Alpha", Skills: []string{"c"}},
		{Category: "Zeta", Skills: []string{"d"}},
	}
	s.Require().NoError(s.skills.Replace(ctx, &skill.SkillsData{Skills: in}))

	got, err := s.skills.Get(ctx)
	s.Require().NoError(err)
	s.Equal(skill.Key, got.ID)
	s.Equal(in, got.Skills)
}

func (s *RepoTestSuite) Test_Project_Add_OnAbsentCollection() {
	ctx := context.Background()

	id, err := s.projects.Add(ctx, project.Project{Title: "X", Description: "Y", Technologies: []string{"A"}, Status: "done"})
	s.Require().NoError(err)
	s.NotEmpty(id)

	data, err := s.projects.Get(ctx)
	s.Require().NoError(err)
	s.Require().Len(data.Projects, 1)
	s.Equal(id, data.Projects[0].ID)
	s.Equal("X", data.Projects[0].Title)
	s.Nil(data.Projects[0].Link)
}

func (s *RepoTestSuite) Test_Add_GeneratesUniqueIDs() {
	ctx := context.Background()
	seen := map[string]bool{}

	for i := 0; i < 20; i++ {
		id, err := s.experiences.Add(ctx, experience.Experience{Title: "Role", Organization: "Org", Period: "2020"})
		s.Require().NoError(err)
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	data, err := s.experiences.Get(ctx)
	s.Require().NoError(err)
	s.Len(data.Experience, 20)
}

func (s *RepoTestSuite) Test_UpdateItem_KeepsPositionAndID() {
	ctx := context.Background()
	first, _ := s.projects.Add(ctx, project.Project{Title: "first"})
	second, _ := s.projects.Add(ctx, project.Project{Title: "second"})
	third, _ := s.projects.Add(ctx, project.Project{Title: "third"})

	link := "https://example.org"
	err := s.projects.UpdateItem(ctx, second, project.Project{ID: "ignored", Title: "second v2", Status: "done", Link: &link})
	s.Require().NoError(err)

	data, err := s.projects.Get(ctx)
	s.Require().NoError(err)
	s.Require().Len(data.Projects, 3)
	s.Equal([]string{first, second, third}, []string{data.Projects[0].ID, data.Projects[1].ID, data.Projects[2].ID})
	s.Equal("second v2", data.Projects[1].Title)
	s.Require().NotNil(data.Projects[1].Link)
	s.Equal(link, *data.Projects[1].Link)
}

func (s *RepoTestSuite) Test_UpdateItem_UnknownID_NoWrite() {
	ctx := context.Background()
	_, _ = s.experiences.Add(ctx, experience.Experience{Title: "Role"})
	writes := s.store.replaces

	err := s.experiences.UpdateItem(ctx, "missing", experience.Experience{Title: "x"})
	s.True(errors.Is(err, apperror.ErrNotFound))
	s.Equal(writes, s.store.replaces)
}

func (s *RepoTestSuite) Test_UpdateItem_AbsentCollection() {
	err := s.projects.UpdateItem(context.Background(), "any", project.Project{Title: "x"})
	s.True(errors.Is(err, apperror.ErrNotFound))
	s.Zero(s.store.replaces)
}

func (s *RepoTestSuite) Test_DeleteItem_RemovesExactlyOne() {
	ctx := context.Background()
	a, _ := s.experiences.Add(ctx, experience.Experience{Title: "a"})
	b, _ := s.experiences.Add(ctx, experience.Experience{Title: "b"})
	c, _ := s.experiences.Add(ctx, experience.Experience{Title: "c"})

	s.Require().NoError(s.experiences.DeleteItem(ctx, b))

	data, err := s.experiences.Get(ctx)
	s.Require().NoError(err)
	s.Require().Len(data.Experience, 2)
	s.Equal(a, data.Experience[0].ID)
	s.Equal(c, data.Experience[1].ID)
}

func (s *RepoTestSuite) Test_DeleteItem_UnknownID_IsNotFound() {
	ctx := context.Background()
	_, _ = s.projects.Add(ctx, project.Project{Title: "keep"})
	writes := s.store.replaces

	err := s.projects.DeleteItem(ctx, "missing")
	s.True(errors.Is(err, apperror.ErrNotFound))
	s.Equal(writes, s.store.replaces)

	data, _ := s.projects.Get(ctx)
	s.Len(data.Projects, 1)
}

func (s *RepoTestSuite) Test_DeleteItem_AbsentCollection() {
	err := s.experiences.DeleteItem(context.Background(), "any")
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func TestRepos_StoreErrorsAreNotNotFound(t *testing.T) {
	ctx := context.Background()
	store := brokenStore{}

	_, err := NewProfileRepo(store).Get(ctx)
	assert.True(t, errors.Is(err, apperror.ErrStore))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))

	_, err = NewProjectRepo(store).Add(ctx, project.Project{Title: "x"})
	assert.True(t, errors.Is(err, apperror.ErrStore))

	err = NewExperienceRepo(store).DeleteItem(ctx, "id")
	assert.True(t, errors.Is(err, apperror.ErrStore))

	err = NewSkillRepo(store).Replace(ctx, &skill.SkillsData{})
	assert.True(t, errors.Is(err, apperror.ErrStore))
}

func TestRepos_CorruptDocumentIsStoreError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDocumentStore()
	require.NoError(t, store.Replace(ctx, document.CollectionProjects, project.Key, json.RawMessage(`{"projects": "oops"}`)))

	_, err := NewProjectRepo(store).Get(ctx)
	assert.True(t, errors.Is(err, apperror.ErrStore))
}

func TestRemoveByID(t *testing.T) {
	idOf := func(s string) string { return s }

	kept, removed := removeByID([]string{"a", "b", "c"}, "b", idOf)
	assert.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, kept)

	kept, removed = removeByID([]string{"a"}, "z", idOf)
	assert.False(t, removed)
	assert.Equal(t, []string{"a"}, kept)
}
