package authority

import (
	"strings"

	"chess/internal/client/credential"

	"github.com/pkg/errors"
)

// Kind classifies an authority failure independently of the provider's code strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredentials
	KindThrottled
	KindPasswordRejected
	KindUnauthorized
	KindConflict
	KindAccessDenied
	KindInvalidGrant
	KindUnreachable
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindInvalidCredentials: "invalid_credentials",
	KindThrottled:          "throttled",
	KindPasswordRejected:   "password_rejected",
	KindUnauthorized:       "unauthorized",
	KindConflict:           "conflict",
	KindAccessDenied:       "access_denied",
	KindInvalidGrant:       "invalid_grant",
	KindUnreachable:        "unreachable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindUnknown]
}

const wrongCredentialsDescription = "Wrong email or password."

// Error is a failure reported by, or on the way to, the identity authority.
type Error struct {
	Kind        Kind
	Code        string
	Description string
	Status      int
	err         error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("authority")
	if e.Code != "" {
		b.WriteString(": ")
		b.WriteString(e.Code)
	}
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is lets the credential store recognise a dead refresh token.
func (e *Error) Is(target error) bool {
	return target == credential.ErrRefreshRejected && e.Kind == KindInvalidGrant
}

func newError(status int, code, description string) *Error {
	if code == "invalid_grant" && description == wrongCredentialsDescription {
		code = "invalid_user_password"
	}

	return &Error{
		Kind:        kindFor(code, description),
		Code:        code,
		Description: description,
		Status:      status,
	}
}

func unreachable(err error) *Error {
	return &Error{Kind: KindUnreachable, err: err}
}

// invalidResponse covers a success status whose body is not a usable token response.
func invalidResponse(status int, err error) *Error {
	return &Error{Kind: KindUnknown, Code: "invalid_response", Status: status, err: err}
}

func invalidRequest(err error) *Error {
	return &Error{Kind: KindUnknown, Code: "invalid_request", err: err}
}

func kindFor(code, description string) Kind {
	switch code {
	case "invalid_user_password":
		return KindInvalidCredentials
	case "too_many_attempts":
		return KindThrottled
	case "password_leaked", "invalid_password", "password_dictionary_error",
		"password_no_user_info_error", "password_strength_error":
		return KindPasswordRejected
	case "unauthorized", "unauthorized_client":
		return KindUnauthorized
	case "user_exists", "username_exists":
		return KindConflict
	case "invalid_signup":
		if mentionsExistingUser(description) {
			return KindConflict
		}

		return KindUnknown
	case "access_denied":
		return KindAccessDenied
	case "invalid_grant":
		return KindInvalidGrant
	default:
		return KindUnknown
	}
}

func mentionsExistingUser(description string) bool {
	lower := strings.ToLower(description)
	for _, word := range []string{"user", "already", "exist"} {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

const unreachableMessage = "Unable to reach the sign-in service. Please check your connection and try again."

var loginMessages = map[string]string{
	"invalid_user_password": "Invalid email or password.",
	"access_denied":         "Access denied.",
	"too_many_attempts":     "Account temporarily blocked due to too many failed login attempts.",
	"unauthorized":          "Invalid email or password.",
	"password_leaked":       "This password has been compromised. Please use a different password.",
}

var signUpMessages = map[string]string{
	"user_exists":                 "This email is already registered. Please go back and log in instead.",
	"username_exists":             "This username is already taken. Please choose a different one.",
	"invalid_signup":              "Sign up failed. Please check your information.",
	"invalid_password":            "Password does not meet requirements.",
	"password_dictionary_error":   "This password is too common. Please choose a stronger password.",
	"password_no_user_info_error": "Password cannot be based on your personal information.",
	"password_strength_error":     "Password is not strong enough.",
	"unauthorized":                "Sign up is not allowed.",
}

// LoginMessage turns a login failure into text for the user. Unmapped errors yield fallback.
func LoginMessage(err error, fallback string) string {
	var authErr *Error
	if !errors.As(err, &authErr) {
		return fallback
	}
	if authErr.Kind == KindUnreachable {
		return unreachableMessage
	}
	if msg, ok := loginMessages[authErr.Code]; ok {
		return msg
	}

	return fallback
}

// SignUpMessage turns a sign-up failure into text for the user. Unmapped errors yield fallback.
func SignUpMessage(err error, fallback string) string {
	var authErr *Error
	if !errors.As(err, &authErr) {
		return fallback
	}
	if authErr.Kind == KindUnreachable {
		return unreachableMessage
	}
	// Some tenants report an existing user as a generic invalid_signup.
	if authErr.Code == "invalid_signup" && mentionsExistingUser(authErr.Description) {
		return signUpMessages["user_exists"]
	}
	if msg, ok := signUpMessages[authErr.Code]; ok {
		return msg
	}
	// The sign-up call logs in afterwards, so login codes can surface here too.
	if msg, ok := loginMessages[authErr.Code]; ok {
		return msg
	}

	return fallback
}

