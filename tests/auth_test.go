package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	registerData := map[string]string{
		"email":     "auth-flow@example.com",
		"password":  "secret123",
		"firstName": "Alex",
		"lastName":  "Morgan",
	}

	resp := doRequest(t, "POST", "/api/auth/register", "", registerData)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeMap(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.NotZero(t, result["userId"])

	resp = doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "auth-flow@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decodeMap(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "parent", result["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	registerData := map[string]string{
		"email":    "dupe@example.com",
		"password": "secret123",
	}

	resp := doRequest(t, "POST", "/api/auth/register", "", registerData)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/auth/register", "", registerData)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeMap(t, resp)
	errBody := result["error"].(map[string]interface{})
	assert.Equal(t, "User already exists", errBody["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email": "nopassword@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "correct",
	})

	resp := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "incorrect",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMe(t *testing.T) {
	token, userID := registerParent(t)

	resp := doRequest(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeMap(t, resp)
	assert.Equal(t, float64(userID), result["ID"])
	assert.Equal(t, "Pat", result["firstName"])

	// Password hash never leaves the API
	_, exposed := result["passwordHash"]
	assert.False(t, exposed)

	resp = doRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/auth/me", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdatePassword(t *testing.T) {
	doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "rotate@example.com",
		"password": "oldpass",
	})
	resp := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "rotate@example.com",
		"password": "oldpass",
	})
	token := decodeMap(t, resp)["token"].(string)

	resp = doRequest(t, "PUT", "/api/auth/password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newpass",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "PUT", "/api/auth/password", token, map[string]string{
		"currentPassword": "oldpass",
		"newPassword":     "newpass",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "rotate@example.com",
		"password": "newpass",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	token, _ := registerParent(t)

	resp := doRequest(t, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeMap(t, resp)["success"])
}
