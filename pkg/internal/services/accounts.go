package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/driftline-social/driftline/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account #%d: %w", id, ErrNotFound)
		}
		return account, fmt.Errorf("unable to get account: %w", err)
	}
	return account, nil
}

func GetAccountByName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		return account, fmt.Errorf("unable to get account: %w", err)
	}
	return account, nil
}

func RegisterAccount(name, nick, password string) (models.Account, error) {
	var account models.Account

	name = strings.TrimSpace(name)
	nick = strings.TrimSpace(nick)
	if len(name) == 0 || len(password) == 0 {
		return account, fmt.Errorf("name and password are required: %w", ErrValidation)
	}
	if len(nick) == 0 {
		nick = name
	}

	var count int64
	if err := database.C.
		Model(&models.Account{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %w", err)
	}
	if count > 0 {
		return account, fmt.Errorf("username %q is already taken: %w", name, ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %w", err)
	}

	account = models.Account{
		Name:     name,
		Nick:     nick,
		Password: string(hashed),
	}
	if err := database.C.Create(&account).Error; err != nil {
		return account, fmt.Errorf("unable to save account: %w", err)
	}

	return account, nil
}

// EditAccountProfile updates the mutable parts of an account. Name never
// changes after registration.
func EditAccountProfile(account models.Account, nick, headline, avatar string) (models.Account, error) {
	if nick = strings.TrimSpace(nick); len(nick) > 0 {
		account.Nick = nick
	}
	account.Headline = headline
	account.Avatar = avatar

	if err := database.C.Omit("Posts").Save(&account).Error; err != nil {
		return account, fmt.Errorf("unable to save account: %w", err)
	}
	return account, nil
}
