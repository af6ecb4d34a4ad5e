package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-room-booking/internal/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, sub uint64) string {
    t.Helper()
    claims := jwt.MapClaims{
        "sub": sub,
        "exp": time.Now().UTC().Add(time.Hour).Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := tok.SignedString([]byte(secret))
    require.NoError(t, err)
    return signed
}

func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, interface{}) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/booking", nil)
    if authorization != "" {
        req.Header.Set("Authorization", authorization)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    var seenUserID interface{}
    next := func(c echo.Context) error {
        seenUserID = c.Get("user_id")
        return c.NoContent(http.StatusOK)
    }
    _ = JWTAuth(testSecret)(next)(c)
    return rec, seenUserID
}

func TestJWTAuthMissingHeader(t *testing.T) {
    rec, _ := runJWT(t, "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthBadToken(t *testing.T) {
    rec, _ := runJWT(t, "Bearer not-a-jwt")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
    rec, _ := runJWT(t, "Bearer "+signToken(t, "other-secret", 1))
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
    rec, uid := runJWT(t, "Bearer "+signToken(t, testSecret, 42))
    assert.Equal(t, http.StatusOK, rec.Code)
    // JSON decoding turns the numeric subject into a float64.
    assert.Equal(t, float64(42), uid)
}

func TestTokenBucketDisabledWithoutRedis(t *testing.T) {
    cfg := config.LoadRateLimitConfig()
    mw := NewTokenBucket(cfg, nil)

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/booking", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
    require.NoError(t, err)
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedisCacheDisabledWithoutRedis(t *testing.T) {
    cfg := config.LoadCacheConfig()
    mw := NewRedisCache(cfg, nil)

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    err := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })(c)
    require.NoError(t, err)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Empty(t, rec.Header().Get("X-Cache"))
}
