package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/maestros-api/internal/interfaces/http"
	"github.com/jhoicas/maestros-api/pkg/jwt"
	"github.com/jhoicas/maestros-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "maestros-api-test"
	testExpMin    = 60
)

func newTokens(t *testing.T) *jwt.Manager {
	t.Helper()
	m, err := jwt.NewManager(testJWTSecret, testIssuer, testExpMin)
	require.NoError(t, err)
	return m
}

// buildGateApp app mínima con el manejo de errores real, AuthMiddleware y una ruta
// que devuelve el usuario autenticado.
func buildGateApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Use(apphttp.AuthMiddleware(newTokens(t), "/publico"))
	app.Get("/protegido", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": apphttp.GetUsername(c)})
	})
	app.Get("/publico", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	tok, err := newTokens(t).Generate("admin")
	require.NoError(t, err)

	resp := doGet(t, buildGateApp(t), "/protegido", "Bearer "+tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["username"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	otro, err := jwt.NewManager("otro-secret-completamente-distinto", testIssuer, testExpMin)
	require.NoError(t, err)
	ajeno, err := otro.Generate("admin")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"sin header", ""},
		{"sin esquema Bearer", "Token abc"},
		{"token vacío", "Bearer   "},
		{"token malformado", "Bearer token.invalido.aqui"},
		{"firma de otro secreto", "Bearer " + ajeno},
	}
	app := buildGateApp(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doGet(t, app, "/protegido", tc.header)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestAuthMiddleware_RutaPublica(t *testing.T) {
	resp := doGet(t, buildGateApp(t), "/publico", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
