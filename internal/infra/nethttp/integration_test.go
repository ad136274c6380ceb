package nethttp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bool64/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrail/tasktrail/internal/infra"
	"github.com/tasktrail/tasktrail/internal/infra/nethttp"
	"github.com/tasktrail/tasktrail/internal/infra/service"
	"golang.org/x/crypto/bcrypt"
)

func login(t *testing.T, baseURL, username, password string) string {
	t.Helper()

	resp, err := http.Post(baseURL+"/login", "application/json",
		strings.NewReader(`{"username":"`+username+`","password":"`+password+`"}`))
	require.NoError(t, err)

	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func Test_taskLifeSpan(t *testing.T) {
	cfg := service.Config{BCryptCost: bcrypt.MinCost}

	l := infra.NewServiceLocator(cfg)
	defer l.Close()

	srv := httptest.NewServer(nethttp.NewRouter(l, cfg))
	defer srv.Close()

	rc := httpmock.NewClient(srv.URL)

	// Registration.
	rc.WithMethod(http.MethodPost).WithURI("/registration").
		WithContentType("application/json").
		WithBody([]byte(`{"username": "alice", "password": "password"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"id":1,"username":"alice","createdAt":"<ignore-diff>"}`)))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/registration").
		WithContentType("application/json").
		WithBody([]byte(`{"username": "alice", "password": "password"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"INVALID_ARGUMENT",`+
		`"error":"invalid argument: username is already taken","context":{"username":"alice"}}`)))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/registration").
		WithContentType("application/json").
		WithBody([]byte(`{"username": "carol", "password": "short"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"INVALID_ARGUMENT",`+
		`"error":"invalid argument: validation failed","context":"<ignore-diff>"}`)))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/registration").
		WithContentType("application/json").
		WithBody([]byte(`{"username": "bob", "password": "password"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))

	// Login.
	rc.Reset().WithMethod(http.MethodPost).WithURI("/login").
		WithContentType("application/json").
		WithBody([]byte(`{"username": "alice", "password": "wrong-password"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"INVALID_ARGUMENT",`+
		`"error":"invalid argument: unable to log in with provided credentials"}`)))

	alice := login(t, srv.URL, "alice", "password")
	bob := login(t, srv.URL, "bob", "password")

	// Task routes require a token.
	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks").Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusUnauthorized))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"UNAUTHENTICATED",`+
		`"error":"unauthenticated: authentication credentials were not provided"}`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks").
		WithHeader("Authorization", "Token bogus").Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusUnauthorized))

	// Create a task.
	rc.Reset().WithMethod(http.MethodPost).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "title1", "status": "new", "deadline": "2000-08-03"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"id":1,"taskId":1,"title":"title1",`+
		`"status":"new","deadline":"2000-08-03","isCurrent":true}`)))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "", "status": "new"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "t", "status": "unplanned"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))

	// Retrieve current revision.
	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/1").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"id":1,"taskId":1,"title":"title1",`+
		`"status":"new","deadline":"2000-08-03","isCurrent":true}`)))

	// Only the owner may touch the task.
	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/1").
		WithHeader("Authorization", "Token "+bob).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusForbidden))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"PERMISSION_DENIED",`+
		`"error":"permission denied: you must be owner of this object"}`)))

	rc.Reset().WithMethod(http.MethodDelete).WithURI("/tasks/1").
		WithHeader("Authorization", "Token "+bob)

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusForbidden))

	rc.Reset().WithMethod(http.MethodPut).WithURI("/tasks/1/update").
		WithHeader("Authorization", "Token "+bob).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "hijack"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusForbidden))

	// Update appends a revision, it never mutates the stored one.
	rc.Reset().WithMethod(http.MethodPut).WithURI("/tasks/1/update").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "title2", "status": "done", "deadline": "2020-08-03"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"id":2,"taskId":1,"title":"title2",`+
		`"status":"done","deadline":"2020-08-03","isCurrent":true}`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/1/history").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"id":1,"createdAt":"<ignore-diff>","revisions":[`+
		`{"id":1,"taskId":1,"title":"title1","status":"new","deadline":"2000-08-03","isCurrent":false},`+
		`{"id":2,"taskId":1,"title":"title2","status":"done","deadline":"2020-08-03","isCurrent":true}]}`)))

	// Listing is scoped to the caller.
	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks").
		WithHeader("Authorization", "Token "+bob).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[]`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks?status=done").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[{"id":2,"taskId":1,"title":"title2",`+
		`"status":"done","deadline":"2020-08-03","isCurrent":true}]`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks?status=new").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[]`)))

	// Ordering by deadline.
	rc.Reset().WithMethod(http.MethodPost).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "early", "deadline": "1999-01-01"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))

	rc.Reset().WithMethod(http.MethodPost).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).
		WithContentType("application/json").
		WithBody([]byte(`{"title": "whenever"}`))

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusCreated))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks?ordering=deadline").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[`+
		`{"id":3,"taskId":2,"title":"early","status":"new","deadline":"1999-01-01","isCurrent":true},`+
		`{"id":2,"taskId":1,"title":"title2","status":"done","deadline":"2020-08-03","isCurrent":true},`+
		`{"id":4,"taskId":3,"title":"whenever","status":"new","isCurrent":true}]`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks?ordering=-deadline").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[`+
		`{"id":2,"taskId":1,"title":"title2","status":"done","deadline":"2020-08-03","isCurrent":true},`+
		`{"id":3,"taskId":2,"title":"early","status":"new","deadline":"1999-01-01","isCurrent":true},`+
		`{"id":4,"taskId":3,"title":"whenever","status":"new","isCurrent":true}]`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks?ordering=title").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))

	// Delete cascades to all revisions and is not repeatable.
	rc.Reset().WithMethod(http.MethodDelete).WithURI("/tasks/1").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusNoContent))
	assert.NoError(t, rc.ExpectResponseBody(nil))
	assert.NoError(t, rc.ExpectOtherResponsesStatus(http.StatusNotFound))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/1").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusNotFound))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"status":"NOT_FOUND","error":"<ignore-diff>"}`)))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/1/history").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusNotFound))

	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`[`+
		`{"id":3,"taskId":2,"title":"early","status":"new","deadline":"1999-01-01","isCurrent":true},`+
		`{"id":4,"taskId":3,"title":"whenever","status":"new","isCurrent":true}]`)))

	// Malformed task id.
	rc.Reset().WithMethod(http.MethodGet).WithURI("/tasks/abc").
		WithHeader("Authorization", "Token "+alice).Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusBadRequest))
}
