package service

import (
	"context"
	"testing"
	"time"

	"quiz-board/internal/config"
	"quiz-board/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecretkeydontuseinproduction32bytes!"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims dto.AuthClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func accessClaims(userID, tokenType string, expiresIn time.Duration) dto.AuthClaims {
	now := time.Now()
	return dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(config.JWTConfig{})
	assert.Error(t, err)
}

func TestAuthService_ValidateJWT(t *testing.T) {
	svc, err := NewAuthService(config.JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
		wantID  string
	}{
		{
			name:   "valid access token",
			token:  signToken(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims("user1", AccessTokenType, time.Hour)),
			wantID: "user1",
		},
		{
			name:    "refresh token rejected",
			token:   signToken(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims("user1", "refresh", time.Hour)),
			wantErr: ErrWrongTokenType,
		},
		{
			name:    "expired",
			token:   signToken(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims("user1", AccessTokenType, -time.Minute)),
			wantErr: ErrInvalidJWTToken,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), accessClaims("user1", AccessTokenType, time.Hour)),
			wantErr: ErrInvalidJWTToken,
		},
		{
			name:    "unsigned",
			token:   signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, accessClaims("user1", AccessTokenType, time.Hour)),
			wantErr: ErrInvalidJWTToken,
		},
		{
			name:    "missing user id",
			token:   signToken(t, jwt.SigningMethodHS256, []byte(testSecret), accessClaims("", AccessTokenType, time.Hour)),
			wantErr: ErrInvalidJWTToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: ErrInvalidJWTToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateJWT(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.UserID)
		})
	}
}
