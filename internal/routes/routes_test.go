package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/config"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/routes"
)

const testPassword = "s3cret-pass"

type fixture struct {
	app *fiber.App
	db  *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Institute{},
		&models.Client{},
		&models.Worker{},
		&models.Task{},
		&models.User{},
		&models.SystemLog{},
	))

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		JWTAccessExpiry:     time.Hour,
		SimilarityThreshold: 0.3,
		CORSOrigins:         "*",
	}

	app := fiber.New(fiber.Config{ErrorHandler: routes.ErrorHandler})
	authSvc, err := routes.Setup(app, cfg, db)
	require.NoError(t, err)
	require.NoError(t, authSvc.EnsureAdmin("admin", testPassword))

	f := &fixture{app: app, db: db}
	f.seedUser(t, "editor", models.RoleEditor)
	f.seedUser(t, "viewer", models.RoleViewer)
	return f
}

func (f *fixture) seedUser(t *testing.T, username string, role models.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, f.db.Create(&models.User{
		ID:           uuid.New(),
		Name:         username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}).Error)
}

func (f *fixture) request(t *testing.T, method, path, token string, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = nil
	}
	return resp.StatusCode, decoded
}

func (f *fixture) login(t *testing.T, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"emailOrUsername": %q, "password": %q}`, username, testPassword)
	status, resp := f.request(t, http.MethodPost, "/api/auth/login", "", body)
	require.Equal(t, http.StatusOK, status)
	token, _ := resp["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	status, resp := f.request(t, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "ok", resp["db"])
}

func TestSignupGrantsViewerRole(t *testing.T) {
	f := newFixture(t)

	status, resp := f.request(t, http.MethodPost, "/api/auth/signup", "",
		`{"name": "Grace", "username": "grace", "password": "correct horse"}`)
	require.Equal(t, http.StatusCreated, status)

	user, _ := resp["user"].(map[string]interface{})
	require.NotNil(t, user)
	assert.Equal(t, "viewer", user["role"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	f := newFixture(t)

	status, resp := f.request(t, http.MethodGet, "/api/institutes", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, true, resp["error"])
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "ghost", models.RoleViewer)
	token := f.login(t, "ghost")

	require.NoError(t, f.db.Delete(&models.User{}, "username = ?", "ghost").Error)

	status, _ := f.request(t, http.MethodGet, "/api/institutes", token, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRoleMethodGate(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")
	editor := f.login(t, "editor")
	viewer := f.login(t, "viewer")

	status, resp := f.request(t, http.MethodPost, "/api/institutes", admin,
		`{"name": "Harvard University", "country": "US"}`)
	require.Equal(t, http.StatusCreated, status)
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)

	// viewer reads but never writes
	status, _ = f.request(t, http.MethodGet, "/api/institutes", viewer, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = f.request(t, http.MethodPost, "/api/institutes", viewer, `{"name": "X"}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = f.request(t, http.MethodPut, "/api/institutes/"+id, viewer, `{"country": "UK"}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = f.request(t, http.MethodDelete, "/api/institutes/"+id, viewer, "")
	assert.Equal(t, http.StatusForbidden, status)

	// editor updates but neither creates nor deletes
	status, _ = f.request(t, http.MethodPut, "/api/institutes/"+id, editor, `{"country": "UK"}`)
	assert.Equal(t, http.StatusOK, status)
	status, _ = f.request(t, http.MethodPost, "/api/institutes", editor, `{"name": "Y"}`)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = f.request(t, http.MethodDelete, "/api/institutes/"+id, editor, "")
	assert.Equal(t, http.StatusForbidden, status)

	// admin deletes
	status, _ = f.request(t, http.MethodDelete, "/api/institutes/"+id, admin, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = f.request(t, http.MethodGet, "/api/institutes/"+id, admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInstituteCRUDAndErrors(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")

	status, created := f.request(t, http.MethodPost, "/api/institutes", admin,
		`{"name": "Harvard University", "country": "US"}`)
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)

	// duplicate name conflicts
	status, resp := f.request(t, http.MethodPost, "/api/institutes", admin,
		`{"name": "Harvard University"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, true, resp["error"])

	// malformed body and missing name are validation errors
	status, _ = f.request(t, http.MethodPost, "/api/institutes", admin, `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.request(t, http.MethodPost, "/api/institutes", admin, `{"country": "US"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	// fetch and update round trip
	status, got := f.request(t, http.MethodGet, "/api/institutes/"+id, admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Harvard University", got["name"])

	status, updated := f.request(t, http.MethodPut, "/api/institutes/"+id, admin, `{"country": "USA"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "USA", updated["country"])
	assert.Equal(t, "Harvard University", updated["name"])

	// bad uuid in the path
	status, _ = f.request(t, http.MethodGet, "/api/institutes/not-a-uuid", admin, "")
	assert.Equal(t, http.StatusBadRequest, status)

	// unknown id
	status, _ = f.request(t, http.MethodGet, "/api/institutes/"+uuid.NewString(), admin, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInstituteListFilterAndPagination(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")

	for _, name := range []string{"Harvard University", "Oxford University", "MIT"} {
		status, _ := f.request(t, http.MethodPost, "/api/institutes", admin,
			fmt.Sprintf(`{"name": %q}`, name))
		require.Equal(t, http.StatusCreated, status)
	}

	status, resp := f.request(t, http.MethodGet, "/api/institutes?name=university", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), resp["total"])
	data, _ := resp["data"].([]interface{})
	assert.Len(t, data, 2)

	status, resp = f.request(t, http.MethodGet, "/api/institutes?page=2&limit=2", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), resp["total"])
	data, _ = resp["data"].([]interface{})
	assert.Len(t, data, 1)

	// invalid pagination is rejected, not clamped
	status, _ = f.request(t, http.MethodGet, "/api/institutes?page=0", admin, "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = f.request(t, http.MethodGet, "/api/institutes?limit=101", admin, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTaskAssignmentFlow(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")

	status, client := f.request(t, http.MethodPost, "/api/clients", admin, `{"name": "Acme"}`)
	require.Equal(t, http.StatusCreated, status)
	status, worker := f.request(t, http.MethodPost, "/api/workers", admin,
		`{"name": "Dana", "specialties": ["golang"]}`)
	require.Equal(t, http.StatusCreated, status)

	status, task := f.request(t, http.MethodPost, "/api/tasks", admin,
		fmt.Sprintf(`{"name": "Write report", "type": "project", "client_id": %q}`, client["id"]))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "unassigned", task["status"])

	status, assigned := f.request(t, http.MethodPost, "/api/task-assignments", admin,
		fmt.Sprintf(`{"task_id": %q, "worker_id": %q}`, task["id"], worker["id"]))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "in_progress", assigned["status"])
	assert.Equal(t, worker["id"], assigned["worker_id"])

	// filter tasks by the assigned worker
	status, list := f.request(t, http.MethodGet, "/api/tasks?worker_id="+worker["id"].(string), admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), list["total"])
}

func TestGraphQLQueriesAndRoleGate(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")
	viewer := f.login(t, "viewer")

	status, _ := f.request(t, http.MethodPost, "/api/institutes", admin,
		`{"name": "Harvard University", "country": "US"}`)
	require.Equal(t, http.StatusCreated, status)

	// viewers may query
	query := `{"query": "{ getInstitutes(name: \"harvard\") { total data { name country } } }"}`
	status, resp := f.request(t, http.MethodPost, "/api/graphql", viewer, query)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp["errors"])
	page := resp["data"].(map[string]interface{})["getInstitutes"].(map[string]interface{})
	assert.Equal(t, float64(1), page["total"])

	// viewers may not mutate; the error surfaces in the errors array
	mutation := `{"query": "mutation { addInstitute(name: \"Oxford University\") { id name } }"}`
	status, resp = f.request(t, http.MethodPost, "/api/graphql", viewer, mutation)
	require.Equal(t, http.StatusOK, status)
	errs, _ := resp["errors"].([]interface{})
	require.NotEmpty(t, errs)

	// admins may mutate
	status, resp = f.request(t, http.MethodPost, "/api/graphql", admin, mutation)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp["errors"])
	added := resp["data"].(map[string]interface{})["addInstitute"].(map[string]interface{})
	assert.Equal(t, "Oxford University", added["name"])

	// no token, no graphql
	status, _ = f.request(t, http.MethodPost, "/api/graphql", "", query)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGraphQLAssignWorkerMutation(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin")

	status, client := f.request(t, http.MethodPost, "/api/clients", admin, `{"name": "Acme"}`)
	require.Equal(t, http.StatusCreated, status)
	status, worker := f.request(t, http.MethodPost, "/api/workers", admin, `{"name": "Dana"}`)
	require.Equal(t, http.StatusCreated, status)
	status, task := f.request(t, http.MethodPost, "/api/tasks", admin,
		fmt.Sprintf(`{"name": "Write report", "client_id": %q}`, client["id"]))
	require.Equal(t, http.StatusCreated, status)

	mutation := fmt.Sprintf(
		`{"query": "mutation { assignWorker(task_id: \"%s\", worker_id: \"%s\") { status worker_id } }"}`,
		task["id"], worker["id"])
	status, resp := f.request(t, http.MethodPost, "/api/graphql", admin, mutation)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, resp["errors"])

	assigned := resp["data"].(map[string]interface{})["assignWorker"].(map[string]interface{})
	assert.Equal(t, "in_progress", assigned["status"])
	assert.Equal(t, worker["id"], assigned["worker_id"])
}
