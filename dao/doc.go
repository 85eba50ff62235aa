// Package dao provides validated access to documents of a single type within
// a partitioned document database.
//
// Bramble is a thin wrapper around a CouchDB-style store. Each [DAO] is bound
// to one document type; every document it touches carries a qualified id of
// the form "<type>:<localid>", with the type doubling as the partition and
// design-document name for view queries.
//
// # Documents
//
// A [Document] is an open-schema map with reserved fields:
//
//   - _id: qualified id, must start with "<type>:"
//   - _rev: revision token, present only on persisted documents
//   - c_by, c_at: creator and creation time (epoch seconds), write-once
//   - m_by, m_at: last modifier and modification time, overwritten by [Touch]
//
// Presence of _rev signals persisted-vs-new state. It is the optimistic
// concurrency token: updates and deletes must supply the revision they intend
// to supersede, and the store rejects stale revisions as conflicts.
//
// # Stores
//
// The DAO delegates persistence to a [Store]. The couch package implements it
// on a partitioned CouchDB database; tests use in-memory fakes. Conflict and
// transport errors from the store pass through unmodified, except that a
// missing document on Retrieve becomes a nil result rather than an error.
//
// # Errors
//
// All argument and validation errors are returned before any store call:
//
//   - [ErrInvalidArgument] - malformed call inputs
//   - [ErrInvalidDocument] - schema validation failed
//   - [ErrAlreadyExists] - Create on a document bearing a revision
//   - [ErrIdentityMismatch] - supplied id doesn't match the document's _id
//   - [ErrPreconditionFailed] - mutating call on a document missing _rev
//   - [ErrNotUnique] - FindOne matched more than one row
package dao
