package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jacentio/bramble/internal/token"
)

// DAO provides document access for a single type within a partitioned
// keyspace. It holds no per-call state and is safe for concurrent use.
type DAO struct {
	docType string
	store   Store
	schema  *gojsonschema.Schema
}

// New creates a DAO bound to docType, delegating persistence to store.
// The type-bound validation schema is compiled once here.
func New(docType string, store Store) (*DAO, error) {
	if docType == "" {
		return nil, fmt.Errorf("%w: docType must be a non-empty string", ErrInvalidArgument)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store must be a document store handle", ErrInvalidArgument)
	}

	schema, err := compileSchema(docType)
	if err != nil {
		return nil, err
	}

	return &DAO{
		docType: docType,
		store:   store,
		schema:  schema,
	}, nil
}

// DocType returns the document type this DAO is bound to.
func (d *DAO) DocType() string {
	return d.docType
}

// UUID returns a fresh qualified document id: the DAO's type, a colon, and a
// 22-character random token carrying 122 bits of entropy. Uniqueness is
// statistical; no check against the store is made.
func (d *DAO) UUID() string {
	return d.docType + ":" + token.New()
}

// qualify composes the qualified document id for a local id.
func (d *DAO) qualify(id string) string {
	return d.docType + ":" + id
}

// Create persists a new document. The document must pass validation and must
// not already carry a revision. On success the store-assigned revision is
// merged into doc, which is returned. Id collisions detected by the store
// propagate as the store's native conflict error.
func (d *DAO) Create(ctx context.Context, doc Document) (Document, error) {
	if doc != nil {
		if _, ok := doc[FieldRev]; ok {
			return nil, fmt.Errorf("%w: create must target a new document", ErrAlreadyExists)
		}
	}

	result, err := d.Validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, invalidDocument(result)
	}

	meta, err := d.store.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc[FieldRev] = meta.Rev
	return doc, nil
}

// Retrieve fetches the document with local id. A missing document yields
// (nil, nil); every other store error propagates unchanged.
func (d *DAO) Retrieve(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id must be a non-empty string", ErrInvalidArgument)
	}

	doc, err := d.store.Get(ctx, d.qualify(id))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Update persists a new revision of an existing document. The document must
// pass validation, its _id must equal the qualified id, and it must carry
// the revision it supersedes. The store enforces the optimistic concurrency
// check; on success the new revision is merged into doc, which is returned.
func (d *DAO) Update(ctx context.Context, id string, doc Document) (Document, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id must be a non-empty string", ErrInvalidArgument)
	}

	result, err := d.Validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, invalidDocument(result)
	}

	if doc.ID() != d.qualify(id) {
		return nil, fmt.Errorf("%w: %q is not %q", ErrIdentityMismatch, doc.ID(), d.qualify(id))
	}
	if _, ok := doc[FieldRev]; !ok {
		return nil, fmt.Errorf("%w: update requires the current revision", ErrPreconditionFailed)
	}

	meta, err := d.store.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc[FieldRev] = meta.Rev
	return doc, nil
}

// Delete destroys the document at its current revision, returning the
// store's tombstone acknowledgment. The same identity and revision checks as
// Update apply; the full schema is not enforced on a document being removed.
func (d *DAO) Delete(ctx context.Context, id string, doc Document) (DocumentMeta, error) {
	if id == "" {
		return DocumentMeta{}, fmt.Errorf("%w: id must be a non-empty string", ErrInvalidArgument)
	}
	if doc == nil {
		return DocumentMeta{}, fmt.Errorf("%w: doc must be a document", ErrInvalidArgument)
	}

	if doc.ID() != d.qualify(id) {
		return DocumentMeta{}, fmt.Errorf("%w: %q is not %q", ErrIdentityMismatch, doc.ID(), d.qualify(id))
	}
	rev := doc.Rev()
	if rev == "" {
		return DocumentMeta{}, fmt.Errorf("%w: delete requires the current revision", ErrPreconditionFailed)
	}

	return d.store.Destroy(ctx, d.qualify(id), rev)
}
