package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
)

var (
	// ErrNotFound is returned when no storage location is stored in the keyring
	ErrNotFound = errors.New("storage location not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetStorageLocation returns the remote backend connection string kept in
// the OS keyring.
func GetStorageLocation() (string, error) {
	location, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return location, nil
}

// SetStorageLocation stores a connection string. Passwords are allowed
// here since the keyring itself is encrypted.
func SetStorageLocation(location string) error {
	if location == "" {
		return errors.New("storage location cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, location); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func DeleteStorageLocation() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe of the OS keyring.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
