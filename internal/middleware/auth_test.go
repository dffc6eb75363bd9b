package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

type resolverStub struct {
	accounts map[string]*database.Account
}

func (r *resolverStub) FindAccountByID(id string) (*database.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, nil
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Sign("acc-1", 8*time.Hour)
	require.NoError(t, err)

	claims, err := issuer.parse(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issuer.now = func() time.Time { return time.Now().Add(-24 * time.Hour) }

	token, err := issuer.Sign("acc-1", time.Hour)
	require.NoError(t, err)

	_, err = issuer.parse(token)
	assert.Error(t, err)
}

func TestForeignSignatureRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	other := NewTokenIssuer("other-secret")

	token, err := other.Sign("acc-1", time.Hour)
	require.NoError(t, err)

	_, err = issuer.parse(token)
	assert.Error(t, err)
}

func newAuthTestContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/assessments", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// the session middleware normally registers the store
	handler := session.Middleware(SessionStore("session-secret"))(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))
	return c, rec
}

func TestRequirePrincipalWithBearerToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	account := &database.Account{ID: "acc-1", CompanyName: "Acme"}
	auth := NewAuth(issuer, &resolverStub{accounts: map[string]*database.Account{"acc-1": account}})

	token, err := issuer.Sign("acc-1", time.Hour)
	require.NoError(t, err)

	c, _ := newAuthTestContext(t, "Bearer "+token)
	var got *database.Account
	err = auth.RequirePrincipal(func(c echo.Context) error {
		got = Principal(c)
		return nil
	})(c)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acc-1", got.ID)
}

func TestRequirePrincipalRejectsBadToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	auth := NewAuth(issuer, &resolverStub{accounts: map[string]*database.Account{}})

	c, _ := newAuthTestContext(t, "Bearer not-a-token")
	err := auth.RequirePrincipal(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequirePrincipalRejectsDeletedAccount(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	auth := NewAuth(issuer, &resolverStub{accounts: map[string]*database.Account{}})

	token, err := issuer.Sign("acc-gone", time.Hour)
	require.NoError(t, err)

	c, _ := newAuthTestContext(t, "Bearer "+token)
	err = auth.RequirePrincipal(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequirePrincipalRedirectsWithoutSession(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	auth := NewAuth(issuer, &resolverStub{accounts: map[string]*database.Account{}})

	c, rec := newAuthTestContext(t, "")
	err := auth.RequirePrincipal(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
