package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elrefaeey/ahmedelrefaey/internal/admin"
	"github.com/elrefaeey/ahmedelrefaey/internal/auth"
	"github.com/elrefaeey/ahmedelrefaey/internal/config"
	"github.com/elrefaeey/ahmedelrefaey/internal/middleware"
	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/store"
)

const testPassword = "0109294"

const testBucketPrefix = "https://example.supabase.co/storage/v1/object/public/project-images/"

// fakeImages records bucket removals in place of the storage client.
type fakeImages struct {
	removed []string
}

func (f *fakeImages) ObjectPath(publicURL string) (string, bool) {
	storagePath := strings.TrimPrefix(publicURL, testBucketPrefix)
	if storagePath == publicURL || storagePath == "" {
		return "", false
	}
	return storagePath, true
}

func (f *fakeImages) DeleteFile(storagePath string) error {
	f.removed = append(f.removed, storagePath)
	return nil
}

type env struct {
	router *gin.Engine
	store  *store.Memory
	gate   *auth.Gate
	images *fakeImages
}

// newEnv wires the API the way the server binary does, on an in-memory
// store.
func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := store.NewMemory()
	gate := auth.NewGate(&config.Config{
		AdminPassword: testPassword,
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	})
	registry := admin.NewRegistry(m)
	images := &fakeImages{}

	authHandler := NewAuthHandler(gate, registry)
	projectsHandler := NewProjectsHandler(m)
	revealHandler := NewRevealHandler()
	adminHandler := NewAdminHandler(registry, images)

	router := gin.New()
	router.GET("/health", HealthHandler)

	api := router.Group("/api/v1")
	api.GET("/projects", projectsHandler.ListActive)
	api.POST("/reveal", revealHandler.Reveal)
	api.POST("/admin/login", authHandler.Login)

	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.AdminAuth(gate))
	adminAPI.GET("/projects", adminHandler.ListAll)
	adminAPI.POST("/draft", adminHandler.StartCreate)
	adminAPI.POST("/draft/:project_id", adminHandler.StartEdit)
	adminAPI.PUT("/draft", adminHandler.SaveDraft)
	adminAPI.DELETE("/draft", adminHandler.CancelDraft)
	adminAPI.DELETE("/projects/:project_id", adminHandler.Delete)
	adminAPI.POST("/projects/:project_id/toggle", adminHandler.ToggleActive)
	adminAPI.POST("/logout", authHandler.Logout)

	return &env{router: router, store: m, gate: gate, images: images}
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) login(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/admin/login", "", models.LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *env) seed(t *testing.T, titleEN string, order int, active bool) models.Project {
	t.Helper()
	p, err := e.store.Insert(context.Background(), models.ProjectDraft{
		TitleEN:       titleEN,
		TitleAR:       titleEN + "-ar",
		DescriptionEN: "desc",
		DescriptionAR: "desc-ar",
		Link:          "https://example.com",
		DisplayOrder:  order,
		IsActive:      active,
	})
	require.NoError(t, err)
	return p
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []models.Project {
	t.Helper()
	var resp models.ProjectListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Projects
}

func TestHealth(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestLoginWrongPassword(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/api/v1/admin/login", "", models.LoginRequest{Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect password")
}

func TestLoginMalformedBody(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSuccess(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	// The token opens the admin API.
	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicListShowsOnlyActive(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "visible", 1, true)
	e.seed(t, "hidden", 2, false)

	w := e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeList(t, w)
	require.Len(t, projects, 1)
	assert.Equal(t, "visible", projects[0].TitleEN)
}

func TestPublicListEmptyStore(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projects":[]}`, w.Body.String())
}

func TestPublicListStoreFailure(t *testing.T) {
	e := newEnv(t)
	e.store.Err = assert.AnError

	w := e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestReveal(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodPost, "/api/v1/reveal", "", models.RevealRequest{
		ViewportHeight: 900,
		Tops:           []float64{100, 1200},
		Revealed:       []int{5},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RevealResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{0, 5}, resp.Revealed)
}

func TestAdminRequiresToken(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListIncludesInactive(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "visible", 1, true)
	e.seed(t, "hidden", 2, false)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestAdminCreateFlow(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "existing", 1, true)
	token := e.login(t)

	// Fetch the list first so the draft defaults see it.
	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draftResp models.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draftResp))
	assert.Equal(t, "create", draftResp.Mode)
	assert.Equal(t, 2, draftResp.Draft.DisplayOrder)
	assert.True(t, draftResp.Draft.IsActive)

	draft := draftResp.Draft
	draft.TitleEN = "new"
	draft.TitleAR = "new-ar"
	draft.DescriptionEN = "desc"
	draft.DescriptionAR = "desc-ar"
	draft.Link = "https://example.com/new"

	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, draft)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeList(t, w)
	require.Len(t, projects, 2)
	assert.Equal(t, "new", projects[1].TitleEN)
}

func TestAdminSaveValidation(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/v1/admin/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, models.ProjectDraft{TitleEN: "only title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestAdminSaveWithoutDraft(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPut, "/api/v1/admin/draft", token, models.ProjectDraft{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminEditFlow(t *testing.T) {
	e := newEnv(t)
	p := e.seed(t, "before", 1, true)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/draft/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draftResp models.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draftResp))
	assert.Equal(t, "edit", draftResp.Mode)
	assert.Equal(t, p.ID, draftResp.EditID)
	assert.Equal(t, "before", draftResp.Draft.TitleEN)

	draft := draftResp.Draft
	draft.TitleEN = "after"
	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, draft)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeList(t, w)
	require.Len(t, projects, 1)
	assert.Equal(t, "after", projects[0].TitleEN)
}

func TestAdminEditInactiveProjectStaysInactive(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "hidden", 1, false)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/draft/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var draftResp models.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draftResp))
	require.False(t, draftResp.Draft.IsActive, "prefilled draft exposes the flag for round-tripping")

	// Submit the prefilled draft with only a text change, the way the panel
	// does.
	draft := draftResp.Draft
	draft.TitleEN = "hidden, fixed"
	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, draft)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeList(t, w)
	require.Len(t, projects, 1)
	assert.Equal(t, "hidden, fixed", projects[0].TitleEN)
	assert.False(t, projects[0].IsActive)

	// Still absent from the public page.
	w = e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestAdminEditUnknownProject(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/draft/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminInvalidProjectID(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/v1/admin/draft/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminCancelDraft(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/v1/admin/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/admin/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// With the draft gone, save has nothing to persist.
	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, models.ProjectDraft{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeleteConfirmation(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "doomed", 1, true)
	token := e.login(t)

	w := e.do(t, http.MethodDelete, "/api/v1/admin/projects/1", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "unconfirmed delete is rejected")

	all, err := e.store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	w = e.do(t, http.MethodDelete, "/api/v1/admin/projects/1?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestAdminDeleteRemovesBucketImage(t *testing.T) {
	e := newEnv(t)
	imageURL := testBucketPrefix + "projects/abc.png"
	_, err := e.store.Insert(context.Background(), models.ProjectDraft{
		TitleEN:       "doomed",
		TitleAR:       "doomed-ar",
		DescriptionEN: "desc",
		DescriptionAR: "desc-ar",
		Link:          "https://example.com",
		ImageURL:      &imageURL,
		DisplayOrder:  1,
		IsActive:      true,
	})
	require.NoError(t, err)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/admin/projects/1?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"projects/abc.png"}, e.images.removed)
}

func TestAdminDeleteKeepsExternalImage(t *testing.T) {
	e := newEnv(t)
	imageURL := "https://cdn.example.com/elsewhere.png"
	_, err := e.store.Insert(context.Background(), models.ProjectDraft{
		TitleEN:       "doomed",
		TitleAR:       "doomed-ar",
		DescriptionEN: "desc",
		DescriptionAR: "desc-ar",
		Link:          "https://example.com",
		ImageURL:      &imageURL,
		DisplayOrder:  1,
		IsActive:      true,
	})
	require.NoError(t, err)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodDelete, "/api/v1/admin/projects/1?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, e.images.removed, "externally hosted images are left alone")
}

func TestAdminToggle(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", 1, true)
	token := e.login(t)

	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/projects/1/toggle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	projects := decodeList(t, w)
	require.Len(t, projects, 1)
	assert.False(t, projects[0].IsActive)

	// The public page no longer lists it.
	w = e.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestAdminStoreFailure(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a", 1, true)
	token := e.login(t)

	e.store.Err = assert.AnError
	w := e.do(t, http.MethodGet, "/api/v1/admin/projects", token, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestLogoutDiscardsDraft(t *testing.T) {
	e := newEnv(t)
	token := e.login(t)

	w := e.do(t, http.MethodPost, "/api/v1/admin/draft", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/api/v1/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The token is still valid until expiry, but the session state is gone.
	w = e.do(t, http.MethodPut, "/api/v1/admin/draft", token, models.ProjectDraft{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
