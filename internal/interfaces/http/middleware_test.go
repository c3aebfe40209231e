package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargohub-api/internal/application/auth"
	"github.com/jhoicas/cargohub-api/internal/domain/entity"
	"github.com/jhoicas/cargohub-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/cargohub-api/internal/interfaces/http"
	"github.com/jhoicas/cargohub-api/pkg/apikey"
	"github.com/jhoicas/cargohub-api/pkg/config"
	pkgjwt "github.com/jhoicas/cargohub-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "cargohub-test"
	testExpMin    = 60
)

// seedApp registra una aplicación en el almacén en memoria y devuelve la
// clave en claro.
func seedApp(t *testing.T, st *memory.Store, name, role string, perms []string, readOnly bool) string {
	t.Helper()
	key := apikey.Generate()
	hash, err := apikey.Hash(key)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, st.Users().Create(&entity.User{
		AppName:     name,
		KeyHash:     hash,
		Role:        role,
		Permissions: perms,
		ReadOnly:    readOnly,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
	return key
}

// buildAPIKeyApp construye una aplicación Fiber con una ruta de lectura y
// otra de escritura sobre items, protegidas por clave de API y permisos.
func buildAPIKeyApp(authUC *auth.AuthUseCase) *fiber.App {
	app := fiber.New()
	g := app.Group("/items",
		apphttp.APIKeyMiddleware(authUC),
		apphttp.RequireAccess(entity.KindItem),
	)
	g.Get("/", func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		return c.JSON(fiber.Map{"ok": true, "app": u.AppName})
	})
	g.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

// doAPIRequest lanza una petición con las cabeceras de API indicadas.
func doAPIRequest(t *testing.T, app *fiber.App, method, target, appName, key string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if appName != "" {
		req.Header.Set(apphttp.HeaderAPIApp, appName)
	}
	if key != "" {
		req.Header.Set(apphttp.HeaderAPIKey, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newAuthUC(st *memory.Store) *auth.AuthUseCase {
	return auth.NewAuthUseCase(st.Users(), config.JWTConfig{
		Secret:     testJWTSecret,
		Expiration: testExpMin,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests APIKeyMiddleware + RequireAccess
// ──────────────────────────────────────────────────────────────────────────────

// Aplicación con permiso sobre items puede leer y escribir.
func TestAPIKey_AppConPermisoAccede(t *testing.T) {
	st := memory.NewStore()
	key := seedApp(t, st, "almacen-central", entity.RoleClient, []string{"items"}, false)
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "almacen-central", key)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "almacen-central", body["app"],
		"el handler debe ver la aplicación autenticada en el contexto")

	resp2 := doAPIRequest(t, app, http.MethodPost, "/items/", "almacen-central", key)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusCreated, resp2.StatusCode)
}

// Clave incorrecta → 401, sin distinguirla de una aplicación inexistente.
func TestAPIKey_ClaveIncorrecta_Retorna401(t *testing.T) {
	st := memory.NewStore()
	seedApp(t, st, "almacen-central", entity.RoleClient, []string{"items"}, false)
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "almacen-central", "clave-que-no-es")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doAPIRequest(t, app, http.MethodGet, "/items/", "app-inexistente", "da-igual")
	defer resp2.Body.Close()
	assert.Equal(t, resp.StatusCode, resp2.StatusCode,
		"clave incorrecta y aplicación inexistente deben responder igual")
}

// Sin cabeceras de API → 401.
func TestAPIKey_SinCabeceras_Retorna401(t *testing.T) {
	st := memory.NewStore()
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Aplicación archivada → 401 aunque la clave sea correcta.
func TestAPIKey_AppArchivada_Retorna401(t *testing.T) {
	st := memory.NewStore()
	key := seedApp(t, st, "app-retirada", entity.RoleClient, []string{"items"}, false)
	u, err := st.Users().GetByAppName("app-retirada")
	require.NoError(t, err)
	u.IsArchived = true
	require.NoError(t, st.Users().Update(u))

	app := buildAPIKeyApp(newAuthUC(st))
	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "app-retirada", key)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Aplicación sin permiso sobre el recurso → 403 FORBIDDEN.
func TestRequireAccess_SinPermisoSobreRecurso_Retorna403(t *testing.T) {
	st := memory.NewStore()
	key := seedApp(t, st, "solo-pedidos", entity.RoleClient, []string{"orders"}, false)
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "solo-pedidos", key)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Aplicación de solo lectura: GET pasa, POST se bloquea.
func TestRequireAccess_SoloLectura_BloqueaEscritura(t *testing.T) {
	st := memory.NewStore()
	key := seedApp(t, st, "panel-lectura", entity.RoleClient, []string{entity.PermissionAll}, true)
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodGet, "/items/", "panel-lectura", key)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la lectura debe permitirse")

	resp2 := doAPIRequest(t, app, http.MethodPost, "/items/", "panel-lectura", key)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode, "la escritura debe bloquearse")
}

// Rol admin accede a cualquier recurso sin permisos explícitos.
func TestRequireAccess_AdminAccedeSinPermisosExplicitos(t *testing.T) {
	st := memory.NewStore()
	key := seedApp(t, st, "backoffice", entity.RoleAdmin, nil, false)
	app := buildAPIKeyApp(newAuthUC(st))

	resp := doAPIRequest(t, app, http.MethodPost, "/items/", "backoffice", key)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireAdmin (rutas de administración)
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"app_name": apphttp.GetAppName(c),
				"role":     apphttp.GetRole(c),
			})
		},
	)
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "backoffice", role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doAdminRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Token admin válido → 200 con los claims en el contexto.
func TestRequireAdmin_TokenAdminAccede(t *testing.T) {
	app := buildAdminApp()
	resp := doAdminRequest(t, app, tokenFor(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "backoffice", body["app_name"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Token con rol client → 403.
func TestRequireAdmin_RolClientBloqueado(t *testing.T) {
	app := buildAdminApp()
	resp := doAdminRequest(t, app, tokenFor(t, entity.RoleClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Sin header Authorization → 401 MISSING_TOKEN.
func TestRequireAdmin_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildAdminApp()
	resp := doAdminRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Token malformado → 401 INVALID_TOKEN.
func TestRequireAdmin_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAdminApp()
	resp := doAdminRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token expirado → 401.
func TestRequireAdmin_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "backoffice", entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	app := buildAdminApp()
	resp := doAdminRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
