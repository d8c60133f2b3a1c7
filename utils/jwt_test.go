package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "admin", claims.Role)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token")
	require.Error(t, err)

	_, err = VerifyToken("")
	require.Error(t, err)
}

func TestVerifyTokenRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	// đổi ký tự cuối làm hỏng chữ ký
	replacement := byte('A')
	if token[len(token)-1] == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)
	_, err = VerifyToken(tampered)
	require.Error(t, err)
}
