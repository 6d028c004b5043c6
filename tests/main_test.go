package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"confidencecompass/backend/config"
	"confidencecompass/backend/models"
	"confidencecompass/backend/routes"
	"confidencecompass/backend/seed"
	"confidencecompass/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
)

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func setup() {
	cfg = &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	if err := utils.MigrateDB(db); err != nil {
		panic(err)
	}
	if err := seed.Run(db); err != nil {
		panic(err)
	}

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg)
}

// doRequest performs a JSON request against the test app. An empty token
// leaves the Authorization header unset.
func doRequest(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	buf := bytes.NewBuffer(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

var emailSeq int

// registerParent creates a fresh parent account and returns its token and id.
func registerParent(t *testing.T) (string, uint) {
	t.Helper()

	emailSeq++
	resp := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"email":     fmt.Sprintf("parent%d@example.com", emailSeq),
		"password":  "password123",
		"firstName": "Pat",
		"lastName":  "Tester",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	return result["token"].(string), uint(result["userId"].(float64))
}

func createChild(t *testing.T, token, firstName, ageGroup string) uint {
	t.Helper()

	resp := doRequest(t, "POST", "/api/children", token, map[string]interface{}{
		"firstName":   firstName,
		"lastName":    "Tester",
		"dateOfBirth": "2017-05-12",
		"ageGroup":    ageGroup,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	return uint(result["ID"].(float64))
}

func firstPillar(t *testing.T) models.Pillar {
	t.Helper()
	var pillar models.Pillar
	require.NoError(t, db.Order("sort_order").First(&pillar).Error)
	return pillar
}
