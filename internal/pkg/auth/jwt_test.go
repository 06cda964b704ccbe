package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "webslearn.test",
	})
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Issue(42, "instructor", "jdoe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "instructor", claims.Role)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "webslearn.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Issue(1, "student", "expired")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Issue(1, "student", "victim")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	verifier := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})

	token, err := issuer.Issue(1, "student", "jdoe")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyRejectsEmptyIdentity(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.Issue(0, "", "nobody")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Raw token without scheme prefix is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}
