package service

import (
	"context"
	"errors"
	"fmt"

	"quiz-board/internal/config"
	"quiz-board/internal/dto"
	"quiz-board/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AccessTokenType is the token_type claim accepted on protected routes.
const AccessTokenType = "access"

var (
	ErrInvalidJWTToken = errors.New("invalid JWT token")
	ErrWrongTokenType  = errors.New("token is not an access token")
)

// AuthService verifies access tokens. Tokens are issued by the identity
// service; only the shared HMAC secret is known here.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret []byte
}

func NewAuthService(cfg config.JWTConfig) (AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &authServiceImpl{secret: []byte(cfg.SecretKey)}, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidJWTToken
	}
	if claims.TokenType != AccessTokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
