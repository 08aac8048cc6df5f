package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"community-hub-api/config"
	"community-hub-api/models"
	"community-hub-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "testsecret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Submission{},
		&models.ImageMetadata{},
		&models.VideoMetadata{},
		&models.AudioMetadata{},
		&models.WebData{},
		&models.Comment{},
		&models.Notification{},
		&models.ValidationQueueEntry{},
		&models.AdminAction{},
	); err != nil {
		panic(err)
	}

	config.DB = db

	router = gin.New()
	routes.SetupRoutes(router)

	code := m.Run()
	_ = sqlDB.Close()
	os.Exit(code)
}

func performRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var adminSeq int

// newActiveAdmin registers an active admin and returns its email and a
// session token.
func newActiveAdmin(t *testing.T) (string, string) {
	t.Helper()
	adminSeq++
	email := fmt.Sprintf("admin%d@hub.example", adminSeq)

	w := performRequest(t, "POST", "/api/v1/admin/register", map[string]interface{}{
		"name":          "Review Admin",
		"email":         email,
		"password":      "supersecret1",
		"adminRole":     models.AdminRoleValidator,
		"accountStatus": models.AccountStatusActive,
	}, nil)
	require.Equal(t, 201, w.Code, w.Body.String())

	w = performRequest(t, "POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    email,
		"password": "supersecret1",
	}, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return email, token
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// createTestSubmission stores a submission through the API.
func createTestSubmission(t *testing.T, id, owner, fileType string, extra map[string]interface{}) {
	t.Helper()

	body := map[string]interface{}{
		"id":        id,
		"userEmail": owner,
		"fileName":  id + ".bin",
		"fileType":  fileType,
		"fileSize":  1024,
	}
	for k, v := range extra {
		body[k] = v
	}

	w := performRequest(t, "POST", "/api/v1/submissions", body, nil)
	require.Equal(t, 201, w.Code, w.Body.String())
}

// seedSubmissionPreview writes a preview value straight onto the
// submission row.
func seedSubmissionPreview(t *testing.T, id, preview string) {
	t.Helper()
	require.NoError(t, config.DB.Model(&models.Submission{}).
		Where("submission_id = ?", id).
		Update("preview", preview).Error)
}
