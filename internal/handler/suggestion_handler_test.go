package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-api/internal/content"
	"go-portfolio-api/internal/handler"
	"go-portfolio-api/internal/middleware"
	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/service"
	"go-portfolio-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Course{},
		&model.Permission{},
		&model.Suggestion{},
		&model.PermissionSuggestion{},
	))
	require.NoError(t, repository.NewRoleRepo(db).SeedDefaults())

	suggestionRepo := repository.NewSuggestionRepo(db)
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)

	suggestionService := service.NewSuggestionService(suggestionRepo, userRepo, courseRepo, permissionRepo, db, nil)
	authService := service.NewAuthService(userRepo)

	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	portfolioHandler := handler.NewPortfolioHandler(content.Default())
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/portfolio", portfolioHandler.GetPortfolio)
	api.Get("/hero", portfolioHandler.GetHero)
	api.Get("/projects", portfolioHandler.GetProjects)
	api.Get("/hobbies", portfolioHandler.GetHobbies)

	api.Post("/auth/login", authHandler.Login)

	api.Post("/suggestions", suggestionHandler.Create)
	api.Get("/suggestions", suggestionHandler.ListActive)
	api.Get("/suggestions/archived",
		middleware.RequireAuth(userRepo),
		middleware.RequireCapability(permissionRepo, model.CapabilityRead),
		suggestionHandler.ListArchived)
	api.Put("/suggestions/:id", suggestionHandler.Update)
	api.Delete("/suggestions/:id", suggestionHandler.Archive)
	api.Put("/suggestions/:id/restore", suggestionHandler.Restore)
	api.Delete("/suggestions/:id/permanent",
		middleware.RequireAuth(userRepo),
		middleware.RequireCapability(permissionRepo, model.CapabilityPermaDelete),
		suggestionHandler.Purge)

	return app, db
}

// seedAdmin creates the admin account with its permission bundle and returns
// a bearer token for it
func seedAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin := &model.User{
		Name:   "Portfolio Admin",
		Email:  "admin@example.com",
		RoleID: model.RoleAdmin,
	}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, repository.NewUserRepo(db).Create(admin))

	_, err := repository.NewPermissionRepo(db).FindOrCreate(db, model.RoleAdmin)
	require.NoError(t, err)

	token, err := jwt.GenerateToken(admin.ID, admin.Email, admin.Name, admin.RoleID)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestCreateSuggestionEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name":    "Alice",
		"email":   "alice@example.com",
		"message": "nice portfolio",
		"course":  "BSIT",
	}, "")

	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, model.StatusActive, data["status"])
	assert.Equal(t, true, data["is_active"])
	assert.Equal(t, "Alice", data["userName"])
	assert.Equal(t, "alice@example.com", data["userEmail"])
	assert.NotNil(t, data["courseId"])
}

func TestCreateSuggestionValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@example.com",
	}, "")

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestListActiveEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "message": "one",
	}, "")
	doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name": "Bob", "email": "bob@example.com", "message": "two",
	}, "")

	resp, body := doJSON(t, app, "GET", "/api/suggestions?role=admin", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 2)

	resp, body = doJSON(t, app, "GET", "/api/suggestions?role=student&email=alice%40example.com", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 1)

	resp, body = doJSON(t, app, "GET", "/api/suggestions?role=student&email=ghost%40example.com", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 0)
}

func TestArchiveEndpointErrors(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, "DELETE", "/api/suggestions/"+uuid.NewString(), nil, "")
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/suggestions/not-a-uuid", nil, "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestArchivedListAuthorization(t *testing.T) {
	app, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	// No token
	resp, _ := doJSON(t, app, "GET", "/api/suggestions/archived", nil, "")
	assert.Equal(t, 401, resp.StatusCode)

	// Student token: authenticated but the role carries no bundle
	student := &model.User{Name: "Alice", Email: "alice@example.com", RoleID: model.RoleStudent}
	require.NoError(t, repository.NewUserRepo(db).Create(student))
	studentToken, err := jwt.GenerateToken(student.ID, student.Email, student.Name, student.RoleID)
	require.NoError(t, err)

	resp, _ = doJSON(t, app, "GET", "/api/suggestions/archived", nil, studentToken)
	assert.Equal(t, 403, resp.StatusCode)

	// Admin token
	resp, body := doJSON(t, app, "GET", "/api/suggestions/archived", nil, adminToken)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestLifecycleOverHTTP(t *testing.T) {
	app, db := newTestApp(t)
	adminToken := seedAdmin(t, db)

	_, created := doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "message": "hello",
	}, "")
	id := created["data"].(map[string]interface{})["id"].(string)

	// Archive
	resp, _ := doJSON(t, app, "DELETE", "/api/suggestions/"+id, nil, "")
	assert.Equal(t, 200, resp.StatusCode)

	resp, body := doJSON(t, app, "GET", "/api/suggestions/archived", nil, adminToken)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, body["data"], 1)

	// Restore
	resp, body = doJSON(t, app, "PUT", "/api/suggestions/"+id+"/restore", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, model.StatusActive, data["status"])
	assert.Equal(t, true, data["is_active"])

	// Purge requires the capability
	resp, _ = doJSON(t, app, "DELETE", "/api/suggestions/"+id+"/permanent", nil, "")
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/suggestions/"+id+"/permanent", nil, adminToken)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/api/suggestions/"+id+"/permanent", nil, adminToken)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUpdateEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	_, created := doJSON(t, app, "POST", "/api/suggestions", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "message": "hello",
	}, "")
	id := created["data"].(map[string]interface{})["id"].(string)

	resp, body := doJSON(t, app, "PUT", "/api/suggestions/"+id, map[string]interface{}{
		"status": model.StatusInactive,
	}, "")
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, model.StatusInactive, data["status"])
	assert.Equal(t, false, data["is_active"])
}

func TestLoginEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	resp, _ := doJSON(t, app, "POST", "/api/auth/login", map[string]interface{}{
		"email": "admin@example.com", "password": "wrong",
	}, "")
	assert.Equal(t, 401, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/api/auth/login", map[string]interface{}{
		"email": "admin@example.com", "password": "admin123",
	}, "")
	assert.Equal(t, 200, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestPortfolioEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/portfolio", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, body["name"])
	assert.Len(t, body["projects"], 4)

	resp, body = doJSON(t, app, "GET", "/api/hero", nil, "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, body["about"])
	assert.Len(t, body["photos"], 3)
}
