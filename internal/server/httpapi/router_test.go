package httpapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReads(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/schemes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Scheme](t, rec), 4)

	rec = s.do(http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	news := decode[[]models.News](t, rec)
	require.Len(t, news, 3)
	assert.Equal(t, "news-1", news[0].ID)

	rec = s.do(http.MethodGet, "/api/branches/branch-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "UB001", decode[models.Branch](t, rec).Code)

	rec = s.do(http.MethodGet, "/api/settings?category=branding", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Setting](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/settings/bank_name", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Unity Banking", decode[models.Setting](t, rec).Value)

	rec = s.do(http.MethodGet, "/api/documents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetMissingReturns404(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/schemes/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Scheme not found", decode[map[string]string](t, rec)["message"])
}

func TestAdminRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/schemes"},
		{http.MethodPut, "/api/schemes/scheme-1"},
		{http.MethodDelete, "/api/branches/branch-1"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/settings"},
	} {
		rec := s.do(tc.method, tc.path, "{}")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}

	s.cookie = &http.Cookie{Name: common.SessionCookieName, Value: "garbage"}
	rec := s.do(http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, s.do(http.MethodGet, "/metrics", nil).Body.String(), `bankportal_admin_logins_total{result="invalid"} 1`)

	rec = s.do(http.MethodPost, "/api/admin/login", `{"username": "admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	s.login()
	assert.True(t, s.cookie.HttpOnly)

	rec = s.do(http.MethodGet, "/api/auth/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	u := decode[sessionUser](t, rec)
	assert.Equal(t, "admin-1", u.ID)
	assert.Equal(t, "admin", u.Username)

	rec = s.do(http.MethodPost, "/api/admin/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestAuthUserWithoutSession(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/auth/user", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSchemeLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/schemes", map[string]any{
		"name":         "FD Plus",
		"type":         "deposit",
		"description":  "Fixed deposit",
		"interestRate": "7.25",
		"minAmount":    "",
		"tenure":       "1-5 years",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[models.Scheme](t, rec)
	assert.Equal(t, models.SchemeStatusActive, created.Status)
	assert.Nil(t, created.MinAmount)
	assert.Contains(t, rec.Body.String(), `"minAmount":null`)

	rec = s.do(http.MethodPut, "/api/schemes/"+created.ID, map[string]any{"interestRate": "7.5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.Scheme](t, rec)
	assert.Equal(t, "7.50", updated.InterestRate)
	assert.Equal(t, "FD Plus", updated.Name)

	rec = s.do(http.MethodPut, "/api/schemes/"+created.ID, map[string]any{"type": "savings"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid scheme data", decode[map[string]string](t, rec)["message"])

	rec = s.do(http.MethodDelete, "/api/schemes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Scheme deleted successfully", decode[map[string]string](t, rec)["message"])

	rec = s.do(http.MethodDelete, "/api/schemes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/schemes/"+created.ID, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBranchReturns201(t *testing.T) {
	s := newTestServer(t)
	s.login()

	body := map[string]any{
		"name": "Pune Branch", "code": "UB003", "address": "1 Road", "city": "Pune",
		"state": "Maharashtra", "pincode": "411001", "phone": "+91-20-1", "email": "pune@unitybanking.com",
		"managerName": "A", "managerPhone": "+91-20-2", "managerEmail": "a@unitybanking.com",
		"ifscCode": "UBNK0000003",
	}
	rec := s.do(http.MethodPost, "/api/branches", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	b := decode[models.Branch](t, rec)
	assert.True(t, b.IsActive)
	assert.Nil(t, b.MICR)

	body["email"] = "not-an-email"
	rec = s.do(http.MethodPost, "/api/branches", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/api/branches/nonexistent-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/users", map[string]string{"username": "editor", "password": "pw"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	created := decode[models.User](t, rec)

	rec = s.do(http.MethodPost, "/api/users", map[string]string{"username": "editor", "password": "pw2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.User](t, rec), 2)
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = s.do(http.MethodPut, "/api/users/"+created.ID, map[string]string{"password": "new"})
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := s.storage.Users.Authenticate(testContext(t), "editor", "new")
	assert.NoError(t, err)

	rec = s.do(http.MethodDelete, "/api/users/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", decode[map[string]string](t, rec)["message"])
}

func TestSettingsUpsertAndUpdate(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/settings", map[string]string{"key": "total_customers", "value": "3,000"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	st := decode[models.Setting](t, rec)
	assert.Equal(t, "setting-3", st.ID)
	assert.Equal(t, "3,000", st.Value)
	assert.Equal(t, "dashboard", st.Category)

	rec = s.do(http.MethodPost, "/api/settings", map[string]string{"key": "tagline", "value": "Bank on us"})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[models.Setting](t, rec)
	assert.Equal(t, "general", created.Category)
	assert.Equal(t, "tagline", created.DisplayName)

	// key is not part of the update body and is ignored
	rec = s.do(http.MethodPut, "/api/settings/setting-5", map[string]string{"key": "renamed", "value": "Unity Bank"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Setting](t, rec)
	assert.Equal(t, "bank_name", updated.Key)
	assert.Equal(t, "Unity Bank", updated.Value)

	rec = s.do(http.MethodPut, "/api/settings/missing", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentsAndNews(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/documents", map[string]any{"name": "Rates", "fileName": "rates.pdf", "fileSize": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	doc := decode[models.Document](t, rec)

	rec = s.do(http.MethodPut, "/api/documents/"+doc.ID, map[string]any{"fileSize": 4096})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4096), decode[models.Document](t, rec).FileSize)

	rec = s.do(http.MethodPost, "/api/news", map[string]any{"title": "T", "content": "C", "excerpt": "E"})
	require.Equal(t, http.StatusOK, rec.Code)
	n := decode[models.News](t, rec)
	assert.Equal(t, models.NewsStatusPublished, n.Status)

	rec = s.do(http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, n.ID, decode[[]models.News](t, rec)[0].ID)

	rec = s.do(http.MethodDelete, "/api/news/"+n.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "News item deleted successfully", decode[map[string]string](t, rec)["message"])
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/schemes", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bankportal_http_requests_total{code="200",method="GET",route="/health"} 1`)
}
