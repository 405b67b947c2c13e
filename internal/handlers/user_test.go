package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/fgillet-lagoon/hour-track/internal/dto"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"github.com/fgillet-lagoon/hour-track/internal/repository"
	"github.com/fgillet-lagoon/hour-track/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db      *gorm.DB
	handler *UserHandler
	admin   *models.User
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db := newTestDB(t)
	admin := createTestUser(t, db, "fgillet", "adminpass", true)

	userService := services.NewUserService(repository.NewUserRepository(db))

	return userTestEnv{
		db:      db,
		handler: NewUserHandler(userService),
		admin:   admin,
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]any{
		"username": "htepa",
		"password": "supersecret",
		"is_admin": false,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPost, "/api/users", body, env.admin.ID)

	env.handler.CreateUser(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "htepa", response.Username)
	require.False(t, response.IsAdmin)
}

func TestUserHandler_CreateUserRejectsDuplicateUsername(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]any{
		"username": "fgillet",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPost, "/api/users", body, env.admin.ID)

	env.handler.CreateUser(c)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_CreateUserRejectsShortPassword(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := map[string]any{
		"username": "htepa",
		"password": "short",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPost, "/api/users", body, env.admin.ID)

	env.handler.CreateUser(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	env := setupUserTestEnv(t)
	user := createTestUser(t, env.db, "htepa", "userpass", false)
	originalHash := user.PasswordHash

	payload := map[string]any{
		"username": "htepa-renamed",
		"is_admin": true,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPut,
		fmt.Sprintf("/api/users/%d", user.ID), body, env.admin.ID)
	c.Params = []gin.Param{{Key: "id", Value: fmt.Sprintf("%d", user.ID)}}

	env.handler.UpdateUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, env.db.First(&updated, user.ID).Error)
	require.Equal(t, "htepa-renamed", updated.Username)
	require.True(t, updated.IsAdmin)
	require.Equal(t, originalHash, updated.PasswordHash)
}

func TestUserHandler_DeleteUserCascadesToEntries(t *testing.T) {
	env := setupUserTestEnv(t)
	user := createTestUser(t, env.db, "htepa", "userpass", false)
	project := createTestProject(t, env.db, "Alpha", "#2563EB", env.admin.ID)
	createTestEntry(t, env.db, user.ID, project.ID, 3, 1, 2025)

	c, w := testContext(t, http.MethodDelete,
		fmt.Sprintf("/api/users/%d", user.ID), nil, env.admin.ID)
	c.Params = []gin.Param{{Key: "id", Value: fmt.Sprintf("%d", user.ID)}}

	env.handler.DeleteUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var userCount, entryCount int64
	env.db.Model(&models.User{}).Count(&userCount)
	env.db.Model(&models.TimeEntry{}).Count(&entryCount)
	require.EqualValues(t, 1, userCount) // only the admin remains
	require.Zero(t, entryCount)
}

func TestUserHandler_DeleteSelfForbidden(t *testing.T) {
	env := setupUserTestEnv(t)

	c, w := testContext(t, http.MethodDelete,
		fmt.Sprintf("/api/users/%d", env.admin.ID), nil, env.admin.ID)
	c.Params = []gin.Param{{Key: "id", Value: fmt.Sprintf("%d", env.admin.ID)}}

	env.handler.DeleteUser(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}
