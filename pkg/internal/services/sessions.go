package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/driftline-social/driftline/pkg/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 7 * 24 * time.Hour

func sessionSecret() []byte {
	return []byte(viper.GetString("security.session_secret"))
}

func Authenticate(name, password string) (models.Account, error) {
	account, err := GetAccountByName(name)
	if err != nil {
		return account, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, ErrInvalidCredentials
	}
	return account, nil
}

func IssueSession(account models.Account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(account.ID)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sessionSecret())
	if err != nil {
		return "", fmt.Errorf("unable to sign session token: %w", err)
	}
	return signed, nil
}

func VerifySession(raw string) (models.Account, error) {
	var account models.Account

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return sessionSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return account, fmt.Errorf("unable to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return account, fmt.Errorf("unexpected session claims")
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return account, fmt.Errorf("malformed session subject: %w", err)
	}

	return GetAccount(uint(id))
}
