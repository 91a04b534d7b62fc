package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmans/gradebook/internal/config"
	"github.com/hmans/gradebook/internal/graph"
	"github.com/hmans/gradebook/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func setupServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	s := store.NewEmpty()
	es := graph.NewExecutableSchema(graph.Config{Resolvers: graph.NewResolver(s)})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := httptest.NewServer(Router(es, logger))
	t.Cleanup(ts.Close)
	return ts, s
}

func post(t *testing.T, ts *httptest.Server, query string, vars map[string]any) response {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	res, err := http.Post(ts.URL+Endpoint, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestNew(t *testing.T) {
	es := graph.NewExecutableSchema(graph.Config{Resolvers: graph.NewResolver(store.NewEmpty())})
	srv := New(config.ServerConfig{Port: 3000}, es, nil)
	assert.Equal(t, ":3000", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.NotZero(t, srv.ReadTimeout)
	assert.NotZero(t, srv.WriteTimeout)
}

func TestPostQuery(t *testing.T) {
	ts, s := setupServer(t)
	s.AddCourse("Math", "Algebra")

	out := post(t, ts, `{ courses { id name description } }`, nil)
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"courses":[{"id":1,"name":"Math","description":"Algebra"}]}`, string(out.Data))
}

func TestPostMutationWithVariables(t *testing.T) {
	ts, s := setupServer(t)

	out := post(t, ts,
		`mutation($n: String!, $l: String!, $c: Int!) { addStudent(name: $n, lastName: $l, courseId: $c) { id lastName course { id } } }`,
		map[string]any{"n": "Ada", "l": "Lovelace", "c": 5})
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"addStudent":{"id":1,"lastName":"Lovelace","course":null}}`, string(out.Data))

	st := s.Student(1)
	require.NotNil(t, st)
	assert.Equal(t, 5, st.CourseID)
}

func TestPostValidationError(t *testing.T) {
	ts, s := setupServer(t)

	out := post(t, ts, `mutation { addCourse(name: "Math") { id } }`, nil)
	require.NotEmpty(t, out.Errors)
	c, _, _ := s.Counts()
	assert.Zero(t, c)
}

func TestGetQuery(t *testing.T) {
	ts, s := setupServer(t)
	s.AddCourse("Math", "Algebra")

	u := ts.URL + Endpoint + "?query=" + url.QueryEscape(`{ course(id: 1) { name } }`)
	res, err := http.Get(u)
	require.NoError(t, err)
	defer res.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"course":{"name":"Math"}}`, string(out.Data))
}

func TestGetRejectsMutation(t *testing.T) {
	ts, s := setupServer(t)

	u := ts.URL + Endpoint + "?query=" + url.QueryEscape(`mutation { addCourse(name: "a", description: "b") { id } }`)
	res, err := http.Get(u)
	require.NoError(t, err)
	defer res.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.NotEmpty(t, out.Errors)
	c, _, _ := s.Counts()
	assert.Zero(t, c)
}

func TestPlayground(t *testing.T) {
	ts, _ := setupServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+Endpoint, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Gradebook GraphQL")
}

func TestHealthz(t *testing.T) {
	ts, _ := setupServer(t)

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUnknownRoute(t *testing.T) {
	ts, _ := setupServer(t)

	res, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestConcurrentMutations(t *testing.T) {
	ts, s := setupServer(t)
	s.AddCourse("Math", "Algebra")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			post(t, ts, `mutation { addStudent(name: "S", lastName: "T", courseId: 1) { id } }`, nil)
			post(t, ts, `{ students { id course { name } } }`, nil)
		}()
	}
	wg.Wait()

	_, students, _ := s.Counts()
	assert.Equal(t, n, students)

	out := post(t, ts, `mutation { delCourse(id: 1) { id } }`, nil)
	require.Empty(t, out.Errors)
	_, students, _ = s.Counts()
	assert.Zero(t, students)
}
