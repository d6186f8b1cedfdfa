// Package entity holds the domain types and the closed set of domain errors.
// Repositories and usecases return these sentinel errors; the HTTP layer is
// the single place that maps them to status codes.
package entity

import "errors"

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a uniqueness constraint is violated, e.g. a
// duplicate genre name or user email.
var ErrConflict = errors.New("record already exists")

// ErrValidation is returned for malformed input that passed transport
// binding but fails a domain rule (bad date, unknown foreign key, etc).
var ErrValidation = errors.New("invalid input")

// ErrInvalidCredentials is returned on login with an unknown email or a
// mismatched password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAccountNotVerified is returned on login while a verification code is
// still pending for the account.
var ErrAccountNotVerified = errors.New("account not verified")

// ErrAccountInactive is returned on login for a deactivated account.
var ErrAccountInactive = errors.New("account inactive")

// ErrForbidden is returned when the caller's role does not permit the
// requested operation.
var ErrForbidden = errors.New("forbidden")

// ErrSubuserLimit is returned when creating a subuser would exceed the
// configured per-account limit.
var ErrSubuserLimit = errors.New("subuser limit reached")

// ErrSuperuserSubuser is returned when creating a subuser under a superuser
// account, which is not allowed.
var ErrSuperuserSubuser = errors.New("superuser accounts cannot have subusers")

// ErrRatingRange is returned when a rating falls outside 1..10.
var ErrRatingRange = errors.New("rating must be between 1 and 10")
