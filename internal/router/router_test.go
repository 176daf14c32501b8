package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nerd/internal/auth"
	"nerd/internal/config"
	"nerd/internal/db"
	apperrors "nerd/internal/errors"
	"nerd/internal/events"
	"nerd/internal/handler"
	"nerd/internal/model"
	"nerd/internal/notify"
	"nerd/internal/repository"
	"nerd/internal/service"
	"nerd/internal/storage"
)

const superAdminEmail = "boss@nerd.dev"

var (
	ada  = auth.Identity{UID: "uid-ada", Name: "Ada", Email: "ada@x.com"}
	bob  = auth.Identity{UID: "uid-bob", Name: "Bob", Email: "bob@x.com"}
	boss = auth.Identity{UID: "uid-boss", Name: "Boss", Email: superAdminEmail}
)

type stubVerifier map[string]auth.Identity

func (s stubVerifier) Verify(_ context.Context, raw string) (*auth.Identity, error) {
	identity, ok := s[raw]
	if !ok {
		return nil, apperrors.ErrInvalidIDToken
	}
	return &identity, nil
}

type apiFixture struct {
	e     *echo.Echo
	jwt   *auth.JWTService
	store *storage.MemoryStore
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gormDB, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		_ = sqlDB.Close()
	})

	cfg := &config.Config{MaxUploadMB: 1, JWTSecret: "test-secret"}
	logger := zap.NewNop()
	store := storage.NewMemoryStore("memory://files")
	broker := events.NewBroker(nil, logger)

	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	pendingRepo := repository.NewContributionRepository(gormDB)
	verifiedRepo := repository.NewVerifiedRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(nil)
	roles := auth.NewRoleResolver(superAdminEmail, adminRepo, nil)
	verifier := stubVerifier{"google-ada": ada}

	userService := service.NewUserService(userRepo, nil, broker, logger)
	e := echo.New()
	Register(e, cfg, logger, Guards{
		JWTSecret: jwtService.Secret(),
		Tokens:    tokenStore,
		Roles:     roles,
		Users:     userService,
	}, Handlers{
		Auth:  handler.NewAuthHandler(service.NewAuthService(verifier, userRepo, roles, jwtService, tokenStore, logger)),
		Users: handler.NewUserHandler(userService),
		Contributions: handler.NewContributionHandler(
			service.NewContributionService(pendingRepo, verifiedRepo, materialRepo, store, notify.Nop{}, broker, logger), 1<<20),
		Moderation:  handler.NewModerationHandler(service.NewModerationService(pendingRepo, promotionRepo, store, broker, logger)),
		Publication: handler.NewPublicationHandler(service.NewPublicationService(verifiedRepo, promotionRepo, store, nil, broker, logger)),
		Catalog:     handler.NewCatalogHandler(service.NewCatalogService(materialRepo, store, nil, broker, logger), 1<<20),
		Admins:      handler.NewAdminHandler(service.NewAdminService(adminRepo, roles, broker, logger)),
		Events:      handler.NewEventsHandler(broker),
		Seed:        handler.NewSeedHandler(service.NewSeedService(adminRepo, materialRepo, roles, nil, logger)),
	})

	return &apiFixture{e: e, jwt: jwtService, store: store}
}

func (f *apiFixture) token(t *testing.T, identity auth.Identity) string {
	t.Helper()
	token, err := f.jwt.GenerateAccessToken(identity)
	require.NoError(t, err)
	return token
}

func (f *apiFixture) do(t *testing.T, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) upload(t *testing.T, target, token string, fields map[string]string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", "notes.pdf")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) register(t *testing.T, identity auth.Identity) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/users", f.token(t, identity), map[string]string{
		"name":          identity.Name,
		"gender":        "female",
		"date_of_birth": "2001-02-03",
		"college":       "NIT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body apperrors.ErrorResponse
	decode(t, rec, &body)
	return body.Code
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAccessGuards(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, bob)

	tests := []struct {
		name     string
		method   string
		target   string
		token    string
		wantCode int
		wantErr  string
	}{
		{"public catalog", http.MethodGet, "/api/materials", "", http.StatusOK, ""},
		{"search needs a token", http.MethodGet, "/api/materials/search?q=os", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"garbage token", http.MethodGet, "/api/me", "not-a-jwt", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"search needs registration", http.MethodGet, "/api/materials/search?q=os", f.token(t, ada), http.StatusForbidden, "REGISTRATION_REQUIRED"},
		{"registered member searches", http.MethodGet, "/api/materials/search?q=os", f.token(t, bob), http.StatusOK, ""},
		{"member is not an admin", http.MethodGet, "/api/admin/contributions/pending", f.token(t, bob), http.StatusForbidden, "FORBIDDEN"},
		{"super-admin moderates", http.MethodGet, "/api/admin/contributions/pending", f.token(t, boss), http.StatusOK, ""},
		{"super-admin lists roster", http.MethodGet, "/api/admin/roster", f.token(t, boss), http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.method, tt.target, tt.token, nil)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))
			}
		})
	}
}

func TestRefreshTokenIsNotABearerCredential(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, ada)

	_, refresh, err := f.jwt.GenerateRefreshToken(boss)
	require.NoError(t, err)

	for _, target := range []string{"/api/me", "/api/users/me", "/api/admin/contributions/pending"} {
		rec := f.do(t, http.MethodGet, target, refresh, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	}

	rec := f.do(t, http.MethodGet, "/api/me", f.token(t, ada), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignInThenRegister(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"id_token": "google-ada"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var signIn service.SignInResult
	decode(t, rec, &signIn)
	assert.False(t, signIn.Registered)
	require.NotNil(t, signIn.Registration)
	assert.Equal(t, ada.Email, signIn.Registration.Email)

	rec = f.do(t, http.MethodGet, "/api/me", signIn.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me auth.Principal
	decode(t, rec, &me)
	assert.Equal(t, ada.UID, me.UID)
	assert.False(t, me.IsAdmin)

	rec = f.do(t, http.MethodPost, "/api/users", signIn.AccessToken, map[string]string{"name": "Ada", "gender": "female", "date_of_birth": "03/02/2001", "college": "NIT"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.register(t, ada)
	rec = f.do(t, http.MethodGet, "/api/users/me", signIn.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user model.User
	decode(t, rec, &user)
	assert.Equal(t, ada.Email, user.Email)

	rec = f.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"id_token": "forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_ID_TOKEN", errorCode(t, rec))
}

func TestContributionLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, ada)
	member, admin := f.token(t, ada), f.token(t, boss)

	rec := f.upload(t, "/api/contributions", member, map[string]string{
		"title":       "Operating Systems",
		"description": "Units 1 to 5",
		"tags":        "OS, unit1",
	}, []byte("%PDF-1.7"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var pending model.UnverifiedContribution
	decode(t, rec, &pending)
	assert.Equal(t, ada.UID, pending.ContributorID)
	assert.Equal(t, 1, f.store.Len())

	// stale version
	rec = f.do(t, http.MethodPost, "/api/admin/contributions/pending/"+pending.ID.String()+"/verify", admin, map[string]interface{}{"version": 7})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "VERSION_CONFLICT", errorCode(t, rec))

	rec = f.do(t, http.MethodPost, "/api/admin/contributions/pending/"+pending.ID.String()+"/verify", admin, map[string]interface{}{
		"version": pending.Version,
		"title":   "Operating Systems (all units)",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var verified model.VerifiedContribution
	decode(t, rec, &verified)
	assert.Equal(t, "Operating Systems (all units)", verified.Title)
	assert.Equal(t, []string{"OS", "unit1"}, []string(verified.Tags))

	rec = f.do(t, http.MethodGet, "/api/admin/contributions/pending/"+pending.ID.String(), admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/admin/contributions/verified/"+verified.ID.String()+"/publish", admin, map[string]interface{}{"version": verified.Version})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var material model.Material
	decode(t, rec, &material)

	rec = f.do(t, http.MethodGet, "/api/materials/search?q=o", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []model.Material
	decode(t, rec, &found)
	require.Len(t, found, 1)
	assert.Equal(t, material.ID, found[0].ID)

	rec = f.do(t, http.MethodGet, "/api/materials/search?q=%20", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &found)
	assert.Empty(t, found)

	rec = f.do(t, http.MethodGet, "/api/materials/"+material.ID.String()+"/download", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), "memory://files/contributions/uid-ada/"))

	rec = f.do(t, http.MethodGet, "/api/contributions/mine", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []model.ContributionSummary
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, model.StagePublished, mine[0].Stage)

	rec = f.do(t, http.MethodDelete, "/api/admin/materials/"+material.ID.String(), admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONFIRMATION_REQUIRED", errorCode(t, rec))

	rec = f.do(t, http.MethodDelete, "/api/admin/materials/"+material.ID.String()+"?confirm=true", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted service.DeletionResult
	decode(t, rec, &deleted)
	assert.True(t, deleted.FileDeleted)
	assert.Equal(t, 0, f.store.Len())
}

func TestSubmitCreditsProfileNameWhenTokenHasNone(t *testing.T) {
	f := newAPIFixture(t)
	nameless := auth.Identity{UID: "uid-grace", Email: "grace@x.com"}
	token := f.token(t, nameless)

	rec := f.do(t, http.MethodPost, "/api/users", token, map[string]string{
		"name":          "Grace",
		"gender":        "female",
		"date_of_birth": "2000-01-01",
		"college":       "NIT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.upload(t, "/api/contributions", token, map[string]string{
		"title":       "Compilers",
		"description": "Parsing",
	}, []byte("%PDF-1.7"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var pending model.UnverifiedContribution
	decode(t, rec, &pending)
	assert.Equal(t, "Grace", pending.ContributorName)
}

func TestSubmitRejectsEmptyAndOversizedFiles(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, ada)
	member := f.token(t, ada)
	fields := map[string]string{"title": "T", "description": "D"}

	rec := f.upload(t, "/api/contributions", member, fields, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

	rec = f.upload(t, "/api/contributions", member, fields, bytes.Repeat([]byte("x"), 1<<20+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 0, f.store.Len())
}

func TestRosterManagement(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, bob)
	member, superAdmin := f.token(t, bob), f.token(t, boss)

	rec := f.do(t, http.MethodPost, "/api/admin/roster", member, map[string]string{"email": bob.Email})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/admin/roster", superAdmin, map[string]string{"email": "Bob@X.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var roster handler.RosterResponse
	decode(t, rec, &roster)
	assert.Equal(t, model.NormalizeEmailKey(bob.Email), roster.Key)

	rec = f.do(t, http.MethodGet, "/api/admin/contributions/pending", member, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// roster admins cannot manage the roster
	rec = f.do(t, http.MethodGet, "/api/admin/roster", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/admin/roster/bob@x.com", superAdmin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &roster)
	assert.True(t, roster.Found)

	rec = f.do(t, http.MethodDelete, "/api/admin/roster/bob@x.com", superAdmin, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/admin/contributions/pending", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/admin/roster", superAdmin, map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedEndpoint(t *testing.T) {
	f := newAPIFixture(t)
	doc := service.SeedData{
		Admins: []string{"ta@x.com"},
		Materials: []service.SeedMaterial{{
			Title:           "DBMS notes",
			Description:     "Normalization",
			Tags:            []string{"dbms"},
			FileURL:         "https://drive.google.com/file/d/abc",
			ContributorID:   "uid-seed",
			ContributorName: "Seeder",
		}},
	}

	rec := f.do(t, http.MethodPost, "/api/admin/seed", f.token(t, boss), doc)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result service.SeedResult
	decode(t, rec, &result)
	assert.Equal(t, 1, result.AdminsAdded)
	assert.Equal(t, 1, result.MaterialsCreated)

	rec = f.do(t, http.MethodGet, "/api/materials", "", nil)
	var materials []model.Material
	decode(t, rec, &materials)
	require.Len(t, materials, 1)

	rec = f.do(t, http.MethodGet, "/api/materials/"+materials[0].ID.String()+"/download", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://drive.google.com/file/d/abc", rec.Header().Get(echo.HeaderLocation))
}
