package dao

import (
	"fmt"
	"time"
)

// Reserved document field names.
const (
	FieldID         = "_id"
	FieldRev        = "_rev"
	FieldCreatedBy  = "c_by"
	FieldCreatedAt  = "c_at"
	FieldModifiedBy = "m_by"
	FieldModifiedAt = "m_at"
)

// Document is a semi-structured document. Beyond the reserved fields the
// schema is open: unknown fields are stored and validated untouched.
type Document map[string]any

// ID returns the qualified document id, or "" if unset or not a string.
func (d Document) ID() string {
	s, _ := d[FieldID].(string)
	return s
}

// Rev returns the revision token, or "" for a not-yet-persisted document.
func (d Document) Rev() string {
	s, _ := d[FieldRev].(string)
	return s
}

// DocumentMeta is the store's acknowledgment of a write: the document's
// qualified id and its new revision.
type DocumentMeta struct {
	ID  string
	Rev string
}

// Touch stamps audit fields on doc. The first touch sets c_by and c_at;
// they are never overwritten afterwards. Every touch overwrites m_by and
// m_at with userName and the current time in epoch seconds.
//
// The document is mutated in place; the returned map is the same map.
func Touch(doc Document, userName string) (Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: doc must be a document", ErrInvalidArgument)
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: userName must be a non-empty string", ErrInvalidArgument)
	}

	now := time.Now().Unix()
	if _, ok := doc[FieldCreatedBy]; !ok {
		doc[FieldCreatedBy] = userName
		doc[FieldCreatedAt] = now
	}
	doc[FieldModifiedBy] = userName
	doc[FieldModifiedAt] = now

	return doc, nil
}
