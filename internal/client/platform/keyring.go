package platform

import (
	"context"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

// accountKey holds the email of the last account whose password was saved.
const accountKey = "account"

// KeyringSource keeps an email and password in the OS keychain.
type KeyringSource struct {
	service string
}

// NewKeyringSource returns a source storing entries under service.
func NewKeyringSource(service string) *KeyringSource {
	return &KeyringSource{service: service}
}

func (k *KeyringSource) Query(_ context.Context, _ string) (Credential, error) {
	email, err := keyring.Get(k.service, accountKey)
	if err != nil {
		return nil, k.translate(err, "read saved account")
	}

	password, err := keyring.Get(k.service, email)
	if err != nil {
		return nil, k.translate(err, "read saved password")
	}

	return PasswordCredential{Email: email, Password: password}, nil
}

func (k *KeyringSource) Save(_ context.Context, email, password string) error {
	if err := keyring.Set(k.service, email, password); err != nil {
		return errors.Wrap(err, "save password")
	}

	return errors.Wrap(keyring.Set(k.service, accountKey, email), "save account")
}

// Forget removes the saved account and its password.
func (k *KeyringSource) Forget(_ context.Context) error {
	email, err := keyring.Get(k.service, accountKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "read saved account")
	}

	if err := keyring.Delete(k.service, email); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "delete saved password")
	}
	if err := keyring.Delete(k.service, accountKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, "delete saved account")
	}

	return nil
}

func (k *KeyringSource) translate(err error, msg string) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.WithStack(ErrNoStoredCredential)
	}

	return errors.Wrap(err, msg)
}
