package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warga-portal-svc/pkg/logger"
)

func testCodec(t *testing.T) *SessionCodec {
	t.Helper()
	return NewSessionCodec("test-secret-key", logger.NewLogger("error", "text"))
}

func testUser(loginTime time.Time) SessionUser {
	return SessionUser{
		ID:              7,
		Email:           "ketua@rw16.id",
		Nama:            "Pak Budi",
		Role:            RoleAdminRT,
		RtAkses:         "01",
		RwAkses:         "16",
		StatusLangganan: "active",
		LoginTime:       loginTime,
	}
}

func contextWithCookie(t *testing.T, value string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/warga", nil)
	if value != "" {
		c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: value})
	}
	return c
}

func TestSessionRoundTrip(t *testing.T) {
	codec := testCodec(t)
	user := testUser(time.Now())

	token, err := codec.Encode(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, ok := codec.Decode(token)
	require.True(t, ok)
	assert.Equal(t, user.ID, decoded.ID)
	assert.Equal(t, user.Email, decoded.Email)
	assert.Equal(t, user.Role, decoded.Role)
	assert.Equal(t, user.RtAkses, decoded.RtAkses)
	assert.Equal(t, user.RwAkses, decoded.RwAkses)
	assert.WithinDuration(t, user.LoginTime, decoded.LoginTime, time.Second)
}

func TestEncodeMissingSecret(t *testing.T) {
	codec := NewSessionCodec("", logger.NewLogger("error", "text"))

	_, err := codec.Encode(testUser(time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestDecodeTamperedToken(t *testing.T) {
	codec := testCodec(t)

	token, err := codec.Encode(testUser(time.Now()))
	require.NoError(t, err)

	_, ok := codec.Decode(token + "x")
	assert.False(t, ok)
}

func TestDecodeWrongSecret(t *testing.T) {
	other := NewSessionCodec("another-secret", logger.NewLogger("error", "text"))
	token, err := other.Encode(testUser(time.Now()))
	require.NoError(t, err)

	_, ok := testCodec(t).Decode(token)
	assert.False(t, ok)
}

func TestDecodeGarbage(t *testing.T) {
	_, ok := testCodec(t).Decode("not-a-token")
	assert.False(t, ok)
}

func TestSessionFromRequest(t *testing.T) {
	codec := testCodec(t)

	token, err := codec.Encode(testUser(time.Now()))
	require.NoError(t, err)

	user := codec.SessionFromRequest(contextWithCookie(t, token))
	require.NotNil(t, user)
	assert.Equal(t, "ketua@rw16.id", user.Email)
}

func TestSessionFromRequestNoCookie(t *testing.T) {
	assert.Nil(t, testCodec(t).SessionFromRequest(contextWithCookie(t, "")))
}

func TestSessionFromRequestGarbledCookie(t *testing.T) {
	assert.Nil(t, testCodec(t).SessionFromRequest(contextWithCookie(t, "garbage")))
}

func TestSessionFromRequestStaleLoginTime(t *testing.T) {
	codec := testCodec(t)

	// Token is freshly signed (its own exp claim is fine), but the embedded
	// login timestamp is 8 days old. The freshness rule must win.
	token, err := codec.Encode(testUser(time.Now().Add(-8 * 24 * time.Hour)))
	require.NoError(t, err)

	decoded, ok := codec.Decode(token)
	require.True(t, ok, "token itself should still verify")
	require.NotNil(t, decoded)

	assert.Nil(t, codec.SessionFromRequest(contextWithCookie(t, token)))
}
