package auth

import "errors"

// Account and credential errors surfaced by the auth core. Handlers translate
// these to HTTP statuses; none of them should ever crash the process.
var (
	// ErrDuplicateEmail means an account with that email already exists.
	ErrDuplicateEmail = errors.New("an account with this email already exists")

	// ErrNoSuchAccount means no account matched the given email or id.
	ErrNoSuchAccount = errors.New("no account found")

	// ErrAmbiguousAccount means more than one account matched an email that
	// is supposed to be unique. This is a broken invariant in the store, not
	// a user mistake, and must be logged as such.
	ErrAmbiguousAccount = errors.New("multiple accounts share the same email")

	// ErrBadCredential means the password did not match the stored digest.
	ErrBadCredential = errors.New("incorrect password")

	// ErrCorruptCredential means a stored digest could not be parsed. Like
	// ErrAmbiguousAccount this signals data corruption and is never reported
	// as a plain verification failure.
	ErrCorruptCredential = errors.New("stored credential digest is corrupt")

	// ErrForbidden means the account is authenticated but not authorized.
	ErrForbidden = errors.New("account is not authorized for this action")
)
