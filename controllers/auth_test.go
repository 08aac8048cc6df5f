package controllers_test

import (
	"testing"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginUser(t *testing.T) {
	w := performRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"name":     "Vera Volunteer",
		"email":    "vera@hub.example",
		"password": "password123",
	}, nil)
	require.Equal(t, 201, w.Code, w.Body.String())

	// Stored credential must be hashed, not the raw password.
	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "vera@hub.example").First(&user).Error)
	assert.NotEqual(t, "password123", user.Password)

	// Duplicate email is a conflict.
	w = performRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"name":     "Vera Again",
		"email":    "vera@hub.example",
		"password": "password456",
	}, nil)
	assert.Equal(t, 409, w.Code)

	w = performRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "vera@hub.example",
		"password": "password123",
	}, nil)
	require.Equal(t, 200, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	w = performRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "vera@hub.example",
		"password": "wrongpass1",
	}, nil)
	assert.Equal(t, 401, w.Code)
}

func TestAdminLoginStatuses(t *testing.T) {
	// Unknown email
	w := performRequest(t, "POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    "nobody@hub.example",
		"password": "whatever123",
	}, nil)
	assert.Equal(t, 404, w.Code)

	// Pending account cannot log in even with the right password.
	w = performRequest(t, "POST", "/api/v1/admin/register", map[string]interface{}{
		"name":      "Pending Admin",
		"email":     "pending-admin@hub.example",
		"password":  "supersecret1",
		"adminRole": models.AdminRoleValidator,
	}, nil)
	require.Equal(t, 201, w.Code, w.Body.String())

	w = performRequest(t, "POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    "pending-admin@hub.example",
		"password": "supersecret1",
	}, nil)
	assert.Equal(t, 403, w.Code)

	// Wrong password on an existing account.
	w = performRequest(t, "POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    "pending-admin@hub.example",
		"password": "notthepass1",
	}, nil)
	assert.Equal(t, 401, w.Code)

	// Invalid role is rejected up front.
	w = performRequest(t, "POST", "/api/v1/admin/register", map[string]interface{}{
		"name":      "Bad Role",
		"email":     "bad-role@hub.example",
		"password":  "supersecret1",
		"adminRole": "owner",
	}, nil)
	assert.Equal(t, 400, w.Code)
}

func TestProfileAndChangePassword(t *testing.T) {
	w := performRequest(t, "POST", "/api/v1/auth/register", map[string]interface{}{
		"name":     "Pat Profile",
		"email":    "pat@hub.example",
		"password": "initialpass",
	}, nil)
	require.Equal(t, 201, w.Code)

	w = performRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "pat@hub.example",
		"password": "initialpass",
	}, nil)
	require.Equal(t, 200, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = performRequest(t, "GET", "/api/v1/profile", nil, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "pat@hub.example", user["email"])

	// No token, no profile.
	w = performRequest(t, "GET", "/api/v1/profile", nil, nil)
	assert.Equal(t, 401, w.Code)

	// Wrong current password is rejected.
	w = performRequest(t, "PUT", "/api/v1/change-password", map[string]interface{}{
		"current_password": "notitpass1",
		"new_password":     "freshpass99",
	}, authHeader(token))
	assert.Equal(t, 401, w.Code)

	w = performRequest(t, "PUT", "/api/v1/change-password", map[string]interface{}{
		"current_password": "initialpass",
		"new_password":     "freshpass99",
	}, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())

	w = performRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "pat@hub.example",
		"password": "freshpass99",
	}, nil)
	assert.Equal(t, 200, w.Code)
}

func TestAdminAccountStatusChange(t *testing.T) {
	// Only a super admin may change account statuses.
	_, validatorToken := newActiveAdmin(t)

	w := performRequest(t, "POST", "/api/v1/admin/register", map[string]interface{}{
		"name":          "Root Admin",
		"email":         "root-admin@hub.example",
		"password":      "supersecret1",
		"adminRole":     models.AdminRoleSuper,
		"accountStatus": models.AccountStatusActive,
	}, nil)
	require.Equal(t, 201, w.Code, w.Body.String())

	w = performRequest(t, "POST", "/api/v1/admin/login", map[string]interface{}{
		"email":    "root-admin@hub.example",
		"password": "supersecret1",
	}, nil)
	require.Equal(t, 200, w.Code)
	superToken := decodeBody(t, w)["token"].(string)

	w = performRequest(t, "POST", "/api/v1/admin/register", map[string]interface{}{
		"name":      "Target Admin",
		"email":     "target-admin@hub.example",
		"password":  "supersecret1",
		"adminRole": models.AdminRoleValidator,
	}, nil)
	require.Equal(t, 201, w.Code)

	w = performRequest(t, "PATCH", "/api/v1/admin/accounts/target-admin@hub.example/status",
		map[string]interface{}{"accountStatus": models.AccountStatusActive}, authHeader(validatorToken))
	assert.Equal(t, 403, w.Code)

	w = performRequest(t, "PATCH", "/api/v1/admin/accounts/target-admin@hub.example/status",
		map[string]interface{}{"accountStatus": models.AccountStatusActive}, authHeader(superToken))
	require.Equal(t, 200, w.Code, w.Body.String())

	var target models.Admin
	require.NoError(t, config.DB.Where("email = ?", "target-admin@hub.example").First(&target).Error)
	assert.Equal(t, models.AccountStatusActive, target.AccountStatus)

	// The change leaves an audit trail entry.
	var count int64
	config.DB.Model(&models.AdminAction{}).
		Where("action = ? AND target_type = ?", "account_status_change", "admin").
		Count(&count)
	assert.GreaterOrEqual(t, count, int64(1))
}
