package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docshare/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       42,
		Email:    "t1@x.com",
		FullName: "Teacher One",
		Role:     model.RoleTeacher,
	}
}

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour, "docshare")

	token, err := codec.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.ID)
	assert.Equal(t, "t1@x.com", id.Email)
	assert.Equal(t, model.RoleTeacher, id.Role)
}

func TestTokenCodec_VerifyRejectsForgedSignature(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour, "docshare")
	other := NewTokenCodec("other-secret", time.Hour, "docshare")

	token, err := codec.Issue(testUser())
	require.NoError(t, err)

	id, err := other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, id)
}

func TestTokenCodec_VerifyRejectsExpired(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute, "docshare")

	token, err := codec.Issue(testUser())
	require.NoError(t, err)

	id, err := codec.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, id)
}

func TestTokenCodec_VerifyRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour, "docshare")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		id, err := codec.Verify(tok)
		assert.Error(t, err)
		assert.Nil(t, id)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
