package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nerd/internal/db"
	"nerd/internal/repository"
)

const seedJSON = `{
  "admins": ["Jane.Doe@uni.edu", "  "],
  "materials": [
    {"title": "OS", "description": "Unit 1", "tags": ["os", " kernel "], "file_url": "https://drive.example/os"},
    {"title": "No tags", "description": "x", "tags": [], "file_url": "https://drive.example/none"}
  ]
}`

func TestLoadSeedData_FileAndURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))

	data, err := LoadSeedData(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Len(t, data.Admins, 2)
	assert.Len(t, data.Materials, 2)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(seedJSON))
	}))
	defer srv.Close()

	data, err = LoadSeedData(context.Background(), srv.URL, srv.Client())
	require.NoError(t, err)
	assert.Equal(t, "OS", data.Materials[0].Title)

	_, err = LoadSeedData(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestSeedService_Idempotent(t *testing.T) {
	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	admins := repository.NewAdminRepository(gormDB)
	materials := repository.NewMaterialRepository(gormDB)
	roster := &recordingRoster{}
	svc := NewSeedService(admins, materials, roster, nil, zap.NewNop())
	ctx := context.Background()

	data, err := LoadSeedData(ctx, writeSeed(t), nil)
	require.NoError(t, err)

	first, err := svc.Seed(ctx, *data)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{AdminsAdded: 1, MaterialsCreated: 1, Skipped: 2}, first)

	data.Materials[0].Description = "Unit 1 and 2"
	second, err := svc.Seed(ctx, *data)
	require.NoError(t, err)
	assert.Equal(t, 0, second.MaterialsCreated)
	assert.Equal(t, 1, second.MaterialsUpdated)

	all, err := materials.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Unit 1 and 2", all[0].Description)
	assert.Equal(t, []string{"os", "kernel"}, []string(all[0].Tags))

	found, err := admins.Exists(ctx, "jane_doe@uni_edu")
	require.NoError(t, err)
	assert.True(t, found)

	// every seeded admin drops its cached roster answer, blank entries are skipped
	assert.Equal(t, []string{"Jane.Doe@uni.edu", "Jane.Doe@uni.edu"}, roster.forgotten)
}

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))
	return path
}
