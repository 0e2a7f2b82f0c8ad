package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"ClinicRecords/auth"
	"ClinicRecords/role"
	"ClinicRecords/services"
	"ClinicRecords/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenIssuer
}

func newTestServer(t *testing.T, s store.Store) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	clock := func() time.Time { return testNow }
	keys := services.NewTimestampKeys(clock)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	h := NewHandler(
		services.NewAccounts(s, auth.NewBcrypt(bcrypt.MinCost)),
		services.NewAppointments(s, keys, clock),
		services.NewReports(s, keys),
		tokens,
	)
	r := gin.New()
	r.GET("/health", Health)
	h.Auth(r)
	h.Patient(r)
	h.Doctor(r)
	h.Appointment(r)
	h.Report(r)
	h.Admin(r.Group("/", h.RequireToken(role.Doctor)))
	return &testServer{router: r, tokens: tokens}
}

func (ts *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}

// downStore fails every call the way an unreachable database does.
type downStore struct{}

func (downStore) err(op string) error {
	return fmt.Errorf("%w: %s: connection refused", store.ErrUnavailable, op)
}

func (s downStore) Get(ctx context.Context, collection, key string) (store.Document, bool, error) {
	return nil, false, s.err("get")
}

func (s downStore) Put(ctx context.Context, collection, key string, doc store.Document) error {
	return s.err("put")
}

func (s downStore) Merge(ctx context.Context, collection, key string, partial store.Document) error {
	return s.err("merge")
}

func (s downStore) Delete(ctx context.Context, collection, key string) error {
	return s.err("delete")
}

func (s downStore) QueryEqual(ctx context.Context, collection string, preds ...store.Predicate) ([]store.Record, error) {
	return nil, s.err("query")
}
