package dao

import "errors"

var (
	// ErrInvalidArgument is returned when a call receives malformed inputs
	// (empty type, empty id, nil document, empty view name or key).
	ErrInvalidArgument = errors.New("bramble: invalid argument")

	// ErrInvalidDocument is returned when a document fails schema validation.
	ErrInvalidDocument = errors.New("bramble: document failed validation")

	// ErrAlreadyExists is returned when Create is called on a document that
	// already carries a revision.
	ErrAlreadyExists = errors.New("bramble: document already has a revision")

	// ErrIdentityMismatch is returned when the supplied id does not match the
	// document's own _id.
	ErrIdentityMismatch = errors.New("bramble: document id mismatch")

	// ErrPreconditionFailed is returned when a mutating call is missing the
	// document's revision.
	ErrPreconditionFailed = errors.New("bramble: document has no revision")

	// ErrNotUnique is returned when FindOne matches more than one row.
	ErrNotUnique = errors.New("bramble: more than one document matched")

	// ErrNotFound is returned by Store implementations when a document
	// doesn't exist. Retrieve converts it to a nil result.
	ErrNotFound = errors.New("bramble: document not found")
)
