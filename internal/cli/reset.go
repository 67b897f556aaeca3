package cli

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/inmotionhq/inmotion/internal/db"
	"github.com/inmotionhq/inmotion/internal/security"
	"github.com/inmotionhq/inmotion/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

// RunResetPasswordCommand hands the account a generated temporary
// password and flags it so the next login forces a change. This is the
// recovery path for a self-hosted operator locked out of their own
// instance; there is no email-based reset.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := services.NormalizeEmail(email)
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no account for %s", normalizedEmail)
		}
		return fmt.Errorf("look up account: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := users.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return fmt.Errorf("store temporary password: %w", err)
	}

	fmt.Printf("Temporary password for %s: %s\n", user.Email, temporaryPassword)
	fmt.Println("The account must choose a new password at next login.")

	return nil
}

// The alphabet drops 0/O, 1/l/I to keep the password transcribable.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
