package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type DynamoStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	cfg       config.Config
	store     document.Store
}

func (s *DynamoStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	log := logger.NewNopLogger()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory", "-sharedDb"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(1 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		s.T().Fatalf("Failed to start dynamodb-local container: %s", err)
	}
	s.container = container

	endpoint, err := container.PortEndpoint(ctx, "8000/tcp", "http")
	if err != nil {
		s.T().Fatalf("Failed to get dynamodb endpoint: %s", err)
	}

	s.T().Setenv("AWS_ACCESS_KEY_ID", "local")
	s.T().Setenv("AWS_SECRET_ACCESS_KEY", "local")

	s.cfg.DB.Driver = config.DriverDynamoDB
	s.cfg.DB.Name = fmt.Sprintf("it%d", time.Now().UnixNano())
	s.cfg.AWS.Region = "us-east-1"
	s.cfg.AWS.Endpoint = endpoint

	s.store, err = OpenDocumentStore(ctx, s.cfg, log)
	if err != nil {
		s.T().Fatalf("Failed to open dynamodb store: %s", err)
	}
}

func (s *DynamoStoreIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		if err := s.container.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate dynamodb container: %s", err)
		}
	}
}

func TestDynamoStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(DynamoStoreIntegrationTestSuite))
}

func (s *DynamoStoreIntegrationTestSuite) Test_Get_Missing() {
	_, err := s.store.Get(context.Background(), document.CollectionProfiles, "absent")
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *DynamoStoreIntegrationTestSuite) Test_Replace_PreservesNullsAndEmptyLists() {
	ctx := context.Background()
	doc := `{"_id":"main_projects","projects":[{"id":"1","title":"X","technologies":[],"link":null}]}`

	s.Require().NoError(s.store.Replace(ctx, document.CollectionProjects, "main_projects", json.RawMessage(doc)))

	got, err := s.store.Get(ctx, document.CollectionProjects, "main_projects")
	s.Require().NoError(err)
	s.JSONEq(doc, string(got))
}

func (s *DynamoStoreIntegrationTestSuite) Test_EnsureTable_IsIdempotent() {
	ctx := context.Background()
	client, err := NewDynamoDBClient(ctx, s.cfg)
	s.Require().NoError(err)

	s.NoError(EnsureDynamoTable(ctx, client, DynamoTableName(s.cfg), logger.NewNopLogger()))
	s.NoError(s.store.Ping(ctx))
}

func (s *DynamoStoreIntegrationTestSuite) Test_ExperienceRepo_UpdateItem() {
	ctx := context.Background()
	repo := NewExperienceRepo(s.store)

	id, err := repo.Add(ctx, experience.Experience{Title: "a", Achievements: []string{}})
	s.Require().NoError(err)
	s.Require().NoError(repo.UpdateItem(ctx, id, experience.Experience{Title: "b", Achievements: []string{"x"}}))

	data, err := repo.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(data.Experience)
	last := data.Experience[len(data.Experience)-1]
	s.Equal(id, last.ID)
	s.Equal("b", last.Title)
	s.Equal([]string{"x"}, last.Achievements)
}
