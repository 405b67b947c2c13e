package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fgillet-lagoon/hour-track/internal/constants"
	"github.com/fgillet-lagoon/hour-track/internal/database"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens an in-memory database, migrates the schema and wires
// it as the process database for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.TimeEntry{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// testContext builds an authenticated gin context for direct handler calls.
func testContext(t *testing.T, method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, isAdmin bool) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name, color string, creatorID uint64) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:        name,
		Color:       color,
		CreatedByID: creatorID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createTestEntry(t *testing.T, db *gorm.DB, userID, projectID uint64, hours float64, month, year int) *models.TimeEntry {
	t.Helper()

	entry := &models.TimeEntry{
		UserID:    userID,
		ProjectID: projectID,
		Hours:     hours,
		Month:     &month,
		Year:      &year,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

// fixedNow pins the rolling month window for report assertions.
func fixedNow(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}
