package dao_test

import (
	"errors"
	"testing"

	"github.com/jacentio/bramble/dao"
)

func TestValidate(t *testing.T) {
	d, _ := newDAO(t)

	tests := []struct {
		name      string
		doc       dao.Document
		valid     bool
		numErrors int
	}{
		{
			name:  "valid document",
			doc:   validDoc("a1"),
			valid: true,
		},
		{
			name: "valid with revision",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldRev] = "1-abc"
				return doc
			}(),
			valid: true,
		},
		{
			name: "valid with unknown fields",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc["status"] = "ACTIVE"
				doc["lines"] = []any{map[string]any{"sku": "x", "qty": 2}}
				return doc
			}(),
			valid: true,
		},
		{
			name:      "empty document",
			doc:       dao.Document{},
			valid:     false,
			numErrors: 5,
		},
		{
			name: "missing audit fields",
			doc: dao.Document{
				dao.FieldID: "order:a1",
			},
			valid:     false,
			numErrors: 4,
		},
		{
			name: "wrong id prefix",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldID] = "invoice:a1"
				return doc
			}(),
			valid:     false,
			numErrors: 1,
		},
		{
			name: "empty revision",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldRev] = ""
				return doc
			}(),
			valid:     false,
			numErrors: 1,
		},
		{
			name: "empty creator",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldCreatedBy] = ""
				return doc
			}(),
			valid:     false,
			numErrors: 1,
		},
		{
			name: "non-integer timestamp",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldCreatedAt] = "yesterday"
				return doc
			}(),
			valid:     false,
			numErrors: 1,
		},
		{
			name: "fractional timestamp",
			doc: func() dao.Document {
				doc := validDoc("a1")
				doc[dao.FieldModifiedAt] = 1700000000.5
				return doc
			}(),
			valid:     false,
			numErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := d.Validate(tt.doc)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("expected valid=%v, got %v (errors: %v)", tt.valid, result.Valid, result.Errors)
			}
			if !tt.valid && len(result.Errors) != tt.numErrors {
				t.Errorf("expected %d errors, got %d: %v", tt.numErrors, len(result.Errors), result.Errors)
			}
			for _, e := range result.Errors {
				if e.Description == "" {
					t.Errorf("expected non-empty description for %q", e.Field)
				}
			}
		})
	}
}

func TestValidate_NilDoc(t *testing.T) {
	d, _ := newDAO(t)

	_, err := d.Validate(nil)
	if !errors.Is(err, dao.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidate_IDFieldReported(t *testing.T) {
	d, _ := newDAO(t)
	doc := validDoc("a1")
	doc[dao.FieldID] = "invoice:a1"

	result, err := d.Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if result.Errors[0].Field != "_id" {
		t.Errorf("expected error on field '_id', got %q", result.Errors[0].Field)
	}
}

func TestValidate_TypeWithRegexMetacharacters(t *testing.T) {
	// The id prefix pattern must treat the type literally.
	d, err := dao.New("a.b", newFakeStore())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc := dao.Document{
		dao.FieldID:         "axb:1",
		dao.FieldCreatedBy:  "alice",
		dao.FieldCreatedAt:  1700000000,
		dao.FieldModifiedBy: "alice",
		dao.FieldModifiedAt: 1700000000,
	}
	result, err := d.Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Error("expected 'axb:1' to fail the 'a.b:' prefix check")
	}
}
