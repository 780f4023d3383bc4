package user

import "errors"

// ErrInvalidCredentials is returned when the email/password pair does not
// match a registered account.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrNotFound is returned when the requested user does not exist.
var ErrNotFound = errors.New("user not found")
