package groups

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nour-Ali/NodeBB-nour/internal/middleware"
	"github.com/Nour-Ali/NodeBB-nour/internal/utils/jwt"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
	"github.com/Nour-Ali/NodeBB-nour/pkg/request"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination struct {
		TotalItems int64 `json:"totalItems"`
	} `json:"pagination"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()

	st := newTestStore(t)
	creator, _ := newTestCreator(t, st)
	handler := NewHandler(creator, NewReader(st), NewValidator(DefaultNames, staticSettings(255)), logger.Discard())
	auth := middleware.NewAuthMiddleware(secret, logger.Discard())

	r := gin.New()
	r.Use(request.Handler(logger.Discard()))
	RegisterRoutes(r.Group("/api"), handler, auth.Optional())
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHandlerCreateAndRead(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, "")

	rec, env := do(t, r, http.MethodPost, "/api/groups", `{"name":"Test Group","ownerUid":42,"description":"hi"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Test Group", view["name"])
	assert.Equal(t, "test-group", view["slug"])
	assert.Equal(t, "Test%20Group", view["nameEncoded"])
	assert.EqualValues(t, 1, view["memberCount"])
	assert.Equal(t, "hi", view["description"])

	rec, env = do(t, r, http.MethodPost, "/api/groups", `{"name":"Test Group"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "[[error:group-already-exists]]", env.Error)

	rec, _ = do(t, r, http.MethodGet, "/api/groups/Test%20Group", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=30, stale-while-revalidate=30", rec.Header().Get("Cache-Control"))

	rec, env = do(t, r, http.MethodGet, "/api/groups/slug/test-group", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Test Group", view["name"])

	rec, env = do(t, r, http.MethodGet, "/api/groups/Test%20Group/owners", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["42"]`, string(env.Data))

	rec, env = do(t, r, http.MethodGet, "/api/groups/Test%20Group/members", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["42"]`, string(env.Data))

	rec, env = do(t, r, http.MethodGet, "/api/groups/Missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "[[error:no-group]]", env.Error)

	rec, env = do(t, r, http.MethodGet, "/api/groups?sort=date", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, env.Pagination.TotalItems)

	rec, env = do(t, r, http.MethodGet, "/api/groups?sort=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "[[error:invalid-data]]", env.Error)
}

func TestHandlerCreateValidation(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, "")

	tests := []struct {
		body string
		code string
	}{
		{body: `{"name":""}`, code: "[[error:group-name-too-short]]"},
		{body: `{}`, code: "[[error:group-name-too-short]]"},
		{body: `{"name":"a:b"}`, code: "[[error:invalid-group-name]]"},
		{body: `{"name":"` + strings.Repeat("x", 256) + `"}`, code: "[[error:group-name-too-long]]"},
		{body: `{"name":"ok","ownerUid":{}}`, code: "[[error:invalid-uid]]"},
		{body: `[1,2]`, code: "[[error:invalid-data]]"},
	}

	for _, tt := range tests {
		rec, env := do(t, r, http.MethodPost, "/api/groups", tt.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tt.body)
		assert.Equal(t, tt.code, env.Error, tt.body)
	}
}

func TestHandlerValidate(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, "")

	rec, env := do(t, r, http.MethodPost, "/api/groups/validate", `{"name":"Book Club"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Book Club","slug":"book-club"}`, string(env.Data))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	rec, env = do(t, r, http.MethodPost, "/api/groups/validate", `{"name":"a/b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "[[error:invalid-group-name]]", env.Error)
}

func TestHandlerCreateUsesAuthenticatedOwner(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	r := newTestRouter(t, secret)

	token, err := jwt.GenerateAccessToken("77", secret, time.Minute)
	require.NoError(t, err)

	rec, _ := do(t, r, http.MethodPost, "/api/groups", `{"name":"Mine"}`, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	_, env := do(t, r, http.MethodGet, "/api/groups/Mine/owners", "")
	assert.JSONEq(t, `["77"]`, string(env.Data))

	// an explicit ownerUid wins over the caller
	rec, _ = do(t, r, http.MethodPost, "/api/groups", `{"name":"Theirs","ownerUid":"5"}`, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusCreated, rec.Code)
	_, env = do(t, r, http.MethodGet, "/api/groups/Theirs/owners", "")
	assert.JSONEq(t, `["5"]`, string(env.Data))

	rec, env = do(t, r, http.MethodPost, "/api/groups", `{"name":"Other"}`, "Authorization", "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "[[error:not-logged-in]]", env.Error)

	rec, _ = do(t, r, http.MethodPost, "/api/groups", `{"name":"Anonymous"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	_, env = do(t, r, http.MethodGet, "/api/groups/Anonymous/owners", "")
	assert.JSONEq(t, `[]`, string(env.Data))
}
