package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/ciberseguria/sgsi-express/internal/database"
)

const (
	principalKey = "principal"
	sessionName  = "sgsi_session"
	sessionField = "account_id"
)

// Claims is the JWT payload for bearer tokens. Only the account id travels
// in the token; the account itself is reloaded on every request.
type Claims struct {
	AccountID string `json:"uid"`
	jwt.RegisteredClaims
}

// AccountResolver maps a principal id back to a live account.
type AccountResolver interface {
	FindAccountByID(id string) (*database.Account, error)
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

func (t *TokenIssuer) Sign(accountID string, ttl time.Duration) (string, error) {
	now := t.now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) parse(tok string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if c, ok := parsed.Claims.(*Claims); ok && parsed.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// Auth resolves the caller's account from either a bearer token or the
// cookie session and stores it in the echo context. Token failures never
// reveal whether the token was malformed, expired or forged.
type Auth struct {
	issuer   *TokenIssuer
	accounts AccountResolver
}

func NewAuth(issuer *TokenIssuer, accounts AccountResolver) *Auth {
	return &Auth{issuer: issuer, accounts: accounts}
}

// SessionStore builds the cookie session store registered on the router.
func SessionStore(secret string) sessions.Store {
	return sessions.NewCookieStore([]byte(secret))
}

// RequirePrincipal authenticates the request. Requests carrying an
// Authorization header are treated as API calls and answered with 401 on
// failure; everything else goes through the cookie session and is redirected
// to the login page when no session exists.
func (a *Auth) RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
			account, err := a.resolveFromToken(h)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no autenticado")
			}
			c.Set(principalKey, account)
			return next(c)
		}
		account, err := a.resolveFromSession(c)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Set(principalKey, account)
		return next(c)
	}
}

func (a *Auth) resolveFromToken(header string) (*database.Account, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}
	claims, err := a.issuer.parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
	if err != nil {
		return nil, err
	}
	account, err := a.accounts.FindAccountByID(claims.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("account no longer exists")
	}
	return account, nil
}

func (a *Auth) resolveFromSession(c echo.Context) (*database.Account, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil, err
	}
	id, ok := sess.Values[sessionField].(string)
	if !ok || id == "" {
		return nil, errors.New("no session principal")
	}
	account, err := a.accounts.FindAccountByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errors.New("account no longer exists")
	}
	return account, nil
}

// OpenSession writes the principal id into the cookie session after login.
func OpenSession(c echo.Context, accountID string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{Path: "/", HttpOnly: true, MaxAge: int((8 * time.Hour).Seconds())}
	sess.Values[sessionField] = accountID
	return sess.Save(c.Request(), c.Response())
}

// ClearSession drops the cookie session on logout.
func ClearSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{Path: "/", HttpOnly: true, MaxAge: -1}
	delete(sess.Values, sessionField)
	return sess.Save(c.Request(), c.Response())
}

// Principal returns the account resolved by RequirePrincipal.
func Principal(c echo.Context) *database.Account {
	account, _ := c.Get(principalKey).(*database.Account)
	return account
}

// SetPrincipal injects an account into the context. Handler tests use it to
// skip the middleware chain.
func SetPrincipal(c echo.Context, account *database.Account) {
	c.Set(principalKey, account)
}
