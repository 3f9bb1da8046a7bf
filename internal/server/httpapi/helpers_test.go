package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/logging"
	"github.com/dmitrijs2005/bankportal/internal/server/metrics"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bankportal/internal/server/seed"
	"github.com/dmitrijs2005/bankportal/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testContext stands in for t.Context (Go 1.24+): a context canceled when the test finishes.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("test-secret")

type testServer struct {
	t       *testing.T
	router  *gin.Engine
	storage *services.Storage
	metrics *metrics.Metrics
	cookie  *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st := services.NewStorage(repomanager.NewInMemoryRepositoryManager(),
		services.WithHasher(cryptox.NewBcryptHasher(bcrypt.MinCost)))
	require.NoError(t, seed.Load(context.Background(), st, seed.Admin{}, time.Now(), logging.Nop{}))

	m := metrics.New()
	h := NewHandler(st, m, logging.Nop{}, Config{SecretKey: testSecret, SessionTTL: time.Hour})
	return &testServer{t: t, router: NewRouter(h), storage: st, metrics: m}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(s.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// login signs in as the seeded admin and keeps the session cookie for
// subsequent requests.
func (s *testServer) login() {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/admin/login", map[string]string{
		"username": seed.DefaultAdminUsername,
		"password": seed.DefaultAdminPassword,
	})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			s.cookie = c
			return
		}
	}
	s.t.Fatal("session cookie not set")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
