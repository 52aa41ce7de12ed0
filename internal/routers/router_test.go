package routers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haierkeys/light-notes-service/internal/app"
	"github.com/haierkeys/light-notes-service/internal/dao"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := app.NewDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db.sqlite3"),
		MaxIdleConns: 2,
		MaxOpenConns: 2,
	}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	appContainer, err := app.NewApp(cfg, zap.NewNop(), db)
	if err != nil {
		t.Fatal(err)
	}

	return NewRouter(appContainer)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEmpty(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/notes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateThenList(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/notes", `{"title":"first","content":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var notes []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Len(t, notes, 1)
	assert.Equal(t, "first", notes[0]["title"])
	assert.Equal(t, "hello", notes[0]["content"])
	// wire shape is exactly {id, title, content}
	assert.Len(t, notes[0], 3)
	assert.Contains(t, notes[0], "id")
}

func TestListNewestFirst(t *testing.T) {
	r := newTestRouter(t)

	for _, title := range []string{"A", "B", "C"} {
		w := doRequest(r, http.MethodPost, "/api/notes", `{"title":"`+title+`","content":"content"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var notes []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Len(t, notes, 3)
	assert.Equal(t, "C", notes[0]["title"])
	assert.Equal(t, "B", notes[1]["title"])
	assert.Equal(t, "A", notes[2]["title"])
}

func TestCreateMissingFields(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"content":"hello"}`},
		{name: "missing content", body: `{"title":"first"}`},
		{name: "empty title", body: `{"title":"","content":"hello"}`},
		{name: "empty content", body: `{"title":"first","content":""}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/notes", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing fields"}`, w.Body.String())
		})
	}

	// nothing was persisted
	w := doRequest(r, http.MethodGet, "/api/notes", "")
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/notes", `{"title": "broken`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	for _, method := range []string{http.MethodDelete, http.MethodPut, http.MethodPatch} {
		w := doRequest(r, method, "/api/notes", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "Method Not Allowed", w.Body.String(), method)
	}
}

func TestNotFoundRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
