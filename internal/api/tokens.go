package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minhngct/vitatrack/internal/models"
)

var errInvalidToken = errors.New("invalid token")

func (handler *Handler) buildToken(user *models.User, purpose string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		UserID:  user.ID,
		Role:    user.Role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) buildTokenPair(user *models.User) (string, string, error) {
	accessToken, err := handler.buildToken(user, tokenPurposeAccess, defaultAccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := handler.buildToken(user, tokenPurposeRefresh, defaultRefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (handler *Handler) parseToken(rawToken string, purpose string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, errInvalidToken
	}
	return claims, nil
}
