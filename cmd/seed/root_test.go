package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seedUC "github.com/khoahotran/portfolio-api/internal/application/usecase/seed"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func TestRunSeedMemoryBackend(t *testing.T) {
	var cfg config.Config
	cfg.DB.Driver = config.DriverMemory

	var out bytes.Buffer
	err := runSeed(context.Background(), cfg, logger.NewNopLogger(), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "✓ profile")
	assert.Contains(t, out.String(), "✓ projects")
	assert.Contains(t, out.String(), "All data initialized successfully!")
}

func TestRunSeedUnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.DB.Driver = "sqlite"

	err := runSeed(context.Background(), cfg, logger.NewNopLogger(), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPrintSummaryPartialFailure(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, seedUC.SeedResult{Profile: true, Skills: false, Experience: true, Projects: true})

	assert.Contains(t, out.String(), "✗ skills")
	assert.Contains(t, out.String(), "✓ experience")
	assert.NotContains(t, out.String(), "All data initialized successfully!")
}
