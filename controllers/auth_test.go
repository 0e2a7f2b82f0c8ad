package controllers

import (
	"net/http"
	"testing"

	"ClinicRecords/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupJane(t *testing.T, ts *testServer) {
	t.Helper()
	w := ts.do(http.MethodPost, "/signupPatient", gin.H{
		"email": "jane@x.com", "password": "pw1", "name": "Jane Doe", "age": 34,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())
	signupJane(t, ts)

	w := ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "pw1", "role": "patient"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Role    string `json:"role"`
		Token   string `json:"token"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "patient", body.Role)

	claims, err := ts.tokens.Parse(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", claims.Subject)
	assert.Equal(t, "patient", claims.Role)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())
	signupJane(t, ts)

	wrong := ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "nope", "role": "patient"}, "")
	unknown := ts.do(http.MethodPost, "/login", gin.H{"email": "ghost@x.com", "password": "pw1", "role": "patient"}, "")

	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, "Invalid email or password", message(t, wrong))
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestLogin_RoleSelectsCollection(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())
	signupJane(t, ts)

	w := ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "pw1", "role": "doctor"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", message(t, w))
}

func TestLogin_BadRole(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())

	w := ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "pw1"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, message(t, w), "role")

	w = ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "pw1", "role": "nurse"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, message(t, w), "role")
}

func TestLogin_StoreDown(t *testing.T) {
	ts := newTestServer(t, downStore{})
	w := ts.do(http.MethodPost, "/login", gin.H{"email": "jane@x.com", "password": "pw1", "role": "patient"}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore())
	w := ts.do(http.MethodPost, "/login", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
