package dao

import "context"

// Store is the document store a DAO delegates to. Implementations are
// expected to enforce optimistic concurrency on Insert and Destroy via the
// document's revision, surfacing their native conflict errors unmodified.
type Store interface {
	// Get fetches a document by qualified id. Returns ErrNotFound when the
	// document doesn't exist.
	Get(ctx context.Context, id string) (Document, error)

	// Insert creates or updates a document keyed by its own _id, returning
	// the store-assigned revision.
	Insert(ctx context.Context, doc Document) (DocumentMeta, error)

	// Destroy deletes the document identified by id at revision rev,
	// returning the tombstone revision.
	Destroy(ctx context.Context, id, rev string) (DocumentMeta, error)

	// PartitionedView queries a view within one partition of the keyspace.
	// Unrecognized options pass through to the backend unchanged.
	PartitionedView(ctx context.Context, partition, ddoc, view string, opts ViewOptions) (*ViewResult, error)
}

// ViewOptions holds view query options. Recognized keys are "reduce",
// "include_docs", "limit", "skip" and "key"; anything else is forwarded to
// the store as-is.
type ViewOptions map[string]any

// ViewRow is one row of a view result. Doc is set only when the query was
// issued with include_docs.
type ViewRow struct {
	Key   any
	Value any
	Doc   Document
}

// ViewResult holds the fully materialized rows of a view query, in the
// view's key order.
type ViewResult struct {
	Rows []ViewRow
}
