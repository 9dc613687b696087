// file: controllers/main_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"codefest/database"
	"codefest/models"
	"codefest/routes"
	"codefest/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// setupTest wires the package globals to an in-memory SQLite database and a
// miniredis instance, and returns the full router.
func setupTest(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Contest{}, &models.Student{}, &models.ContestSetting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	mr := miniredis.RunT(t)
	database.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return routes.SetupRouter(), mr
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func createAdmin(t *testing.T, username string) (models.Admin, string) {
	t.Helper()
	admin := models.Admin{Username: username, Password: "correct-horse-battery"}
	if err := database.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	token, err := utils.GenerateAdminToken(admin)
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return admin, token
}

func createContest(t *testing.T, name string, daysFromNow int, active bool) models.Contest {
	t.Helper()
	contest := models.Contest{
		Name:     name,
		Date:     time.Now().AddDate(0, 0, daysFromNow),
		IsActive: active,
	}
	if err := database.DB.Create(&contest).Error; err != nil {
		t.Fatalf("failed to create contest: %v", err)
	}
	return contest
}

func createStudent(t *testing.T, contestID uint32, name, email, branch string, status models.StudentStatus, score *int) models.Student {
	t.Helper()
	student := models.Student{
		Name:          name,
		Email:         email,
		College:       "NIT Nagaland",
		Branch:        branch,
		Status:        status,
		Score:         score,
		ReferenceCode: utils.GenerateReferenceCode(),
		ContestID:     contestID,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return student
}

func intPtr(n int) *int { return &n }

func itoa(id uint32) string { return fmt.Sprintf("%d", id) }
