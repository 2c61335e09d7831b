package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/server/ai"
	"github.com/zaidasim/swadesh/internal/server/models"
)

func doRequest(t *testing.T, env *testEnv, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: token})
	}
	rr := httptest.NewRecorder()
	env.server.routes().ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestProtectedRoutes_RejectMissingOrBadCookie(t *testing.T) {
	env := newTestEnv(nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/user"},
		{http.MethodPost, "/api/user/setup"},
		{http.MethodGet, "/api/memories"},
		{http.MethodPost, "/api/memories"},
		{http.MethodPatch, "/api/memories/m1"},
		{http.MethodDelete, "/api/memories/m1"},
	} {
		rr := doRequest(t, env, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s without cookie", tc.method, tc.path)

		rr = doRequest(t, env, tc.method, tc.path, "", "bad-token")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s with bad cookie", tc.method, tc.path)
	}
}

func TestCurrentUser_ReturnsProfile(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()

	rr := doRequest(t, env, http.MethodGet, "/api/auth/user", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	user := decodeBody[models.User](t, rr)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "u1@example.com", user.Email)
}

func TestCompleteSetup_FlipsFlag(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()

	rr := doRequest(t, env, http.MethodPost, "/api/user/setup", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[map[string]bool](t, rr)["success"])
	assert.True(t, env.users.users["u1"].SetupCompleted)
}

func TestMemories_CreateListUpdateDelete(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()

	rr := doRequest(t, env, http.MethodPost, "/api/memories", `{"content":"likes cricket"}`, token)
	require.Equal(t, http.StatusOK, rr.Code)
	created := decodeBody[models.Memory](t, rr)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, common.DefaultMemoryCategory, created.Category)

	rr = doRequest(t, env, http.MethodGet, "/api/memories", "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[[]models.Memory](t, rr)
	require.Len(t, list, 1)

	rr = doRequest(t, env, http.MethodPatch, "/api/memories/"+created.ID, `{"content":"likes football"}`, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "likes football", decodeBody[models.Memory](t, rr).Content)

	rr = doRequest(t, env, http.MethodDelete, "/api/memories/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[map[string]bool](t, rr)["success"])

	// second delete reports success=false, still 200
	rr = doRequest(t, env, http.MethodDelete, "/api/memories/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeBody[map[string]bool](t, rr)["success"])
}

func TestMemoryUpdate_MissingIDGives404(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()

	rr := doRequest(t, env, http.MethodPatch, "/api/memories/ghost", `{"content":"x"}`, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMemoryUpdate_EmptyContentGives400(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()

	rr := doRequest(t, env, http.MethodPatch, "/api/memories/m1", `{"content":""}`, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChat_AnonymousPassesClientContextOnly(t *testing.T) {
	env := newTestEnv(nil)

	rr := doRequest(t, env, http.MethodPost, "/api/chat",
		`{"message":"hello","context":"weather talk"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "answer", decodeBody[map[string]string](t, rr)["response"])

	assert.Equal(t, "chat", env.assistant.lastCall)
	assert.Equal(t, "hello", env.assistant.lastArgs[0])
	assert.Equal(t, "friendly", env.assistant.lastArgs[1], "personality defaults to friendly")
	assert.Equal(t, "weather talk", env.assistant.lastArgs[2])
	assert.Equal(t, ai.ModeChat, env.assistant.lastArgs[3])
}

func TestChat_LoggedInGetsMemoriesPrepended(t *testing.T) {
	env := newTestEnv(nil)
	token := env.loggedIn()
	env.memories.byUser["u1"] = []*models.Memory{
		{ID: "m1", UserID: "u1", Content: "likes cricket"},
		{ID: "m2", UserID: "u1", Content: "from Delhi"},
	}

	rr := doRequest(t, env, http.MethodPost, "/api/chat",
		`{"message":"hello","context":"weather talk"}`, token)
	require.Equal(t, http.StatusOK, rr.Code)

	want := "User's memories for context:\n- likes cricket\n- from Delhi\n\nweather talk"
	assert.Equal(t, want, env.assistant.lastArgs[2])
}

func TestVoiceChat_SelectsVoiceMode(t *testing.T) {
	env := newTestEnv(nil)

	rr := doRequest(t, env, http.MethodPost, "/api/voice-chat", `{"message":"hello"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ai.ModeVoice, env.assistant.lastArgs[3])
}

func TestChat_MalformedBodies(t *testing.T) {
	env := newTestEnv(nil)

	for _, body := range []string{
		`not json`,
		`{"message":"hi","bogus":true}`, // unknown field
		`{"message":""}`,                // missing message
		`{}`,
	} {
		rr := doRequest(t, env, http.MethodPost, "/api/chat", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
}

func TestTools_ValidationAndDefaults(t *testing.T) {
	env := newTestEnv(nil)

	// document requires content and action
	rr := doRequest(t, env, http.MethodPost, "/api/tools/document", `{"content":"text"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, env, http.MethodPost, "/api/tools/document",
		`{"content":"text","action":"summarize"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "answer", decodeBody[map[string]string](t, rr)["result"])

	// code generate works from the prompt, so code may be empty
	rr = doRequest(t, env, http.MethodPost, "/api/tools/code",
		`{"action":"generate","prompt":"an http server"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "javascript", env.assistant.lastArgs[2], "language defaults to javascript")

	// but debug needs the code itself
	rr = doRequest(t, env, http.MethodPost, "/api/tools/code", `{"action":"debug"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// search type defaults to general
	rr = doRequest(t, env, http.MethodPost, "/api/tools/search", `{"query":"cricket"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "general", env.assistant.lastArgs[1])
	res := decodeBody[ai.SearchResult](t, rr)
	assert.Equal(t, "answer", res.Summary)
	require.Len(t, res.Sources, 1)

	// creative language defaults to en
	rr = doRequest(t, env, http.MethodPost, "/api/tools/creative",
		`{"type":"story","prompt":"monsoon"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "en", env.assistant.lastArgs[2])

	// language tool requires all three text fields
	rr = doRequest(t, env, http.MethodPost, "/api/tools/language",
		`{"text":"hello","sourceLanguage":"en"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// study forwards grade and subject
	rr = doRequest(t, env, http.MethodPost, "/api/tools/study",
		`{"topic":"photosynthesis","action":"ncert-solution","grade":"10","subject":"Science"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{"photosynthesis", "ncert-solution", "10", "Science"}, env.assistant.lastArgs)

	// image requires the payload
	rr = doRequest(t, env, http.MethodPost, "/api/tools/image", `{"action":"ocr"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestErrorMapping(t *testing.T) {
	env := newTestEnv(nil)

	env.assistant.err = common.ErrUnknownAction
	rr := doRequest(t, env, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env.assistant.err = common.ErrUpstreamTimeout
	rr = doRequest(t, env, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)

	env.assistant.err = common.ErrUpstreamFailed
	rr = doRequest(t, env, http.MethodPost, "/api/chat", `{"message":"hi"}`, "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal server error", decodeBody[map[string]string](t, rr)["error"],
		"internal detail must not leak")
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(nil)

	rr := doRequest(t, env, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[map[string]bool](t, rr)["ok"])
}
