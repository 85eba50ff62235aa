package dao

import (
	"context"
	"encoding/json"
	"fmt"
)

// List queries a view within the DAO's partition, with the type doubling as
// the design-document name. Defaults are reduce=false and include_docs=true;
// caller-supplied opts win on conflict and unrecognized keys pass through to
// the store. Rows come back in the view's key order, normalized to the
// attached document when include_docs is in effect, the raw row value
// otherwise.
func (d *DAO) List(ctx context.Context, viewName string, opts ViewOptions) ([]any, error) {
	if viewName == "" {
		return nil, fmt.Errorf("%w: viewName must be a non-empty string", ErrInvalidArgument)
	}

	merged := ViewOptions{
		"reduce":       false,
		"include_docs": true,
	}
	for k, v := range opts {
		merged[k] = v
	}

	result, err := d.store.PartitionedView(ctx, d.docType, d.docType, viewName, merged)
	if err != nil {
		return nil, err
	}

	includeDocs, _ := merged["include_docs"].(bool)
	rows := make([]any, 0, len(result.Rows))
	for _, row := range result.Rows {
		if includeDocs {
			rows = append(rows, row.Doc)
		} else {
			rows = append(rows, row.Value)
		}
	}
	return rows, nil
}

// FindOne queries a view for an exact key match, expecting at most one row.
// It returns the sole matching document, (nil, nil) when nothing matches,
// and ErrNotUnique when two or more rows match.
func (d *DAO) FindOne(ctx context.Context, viewName string, key ...any) (Document, error) {
	if err := checkViewArgs(viewName, key); err != nil {
		return nil, err
	}

	result, err := d.store.PartitionedView(ctx, d.docType, d.docType, viewName, ViewOptions{
		"reduce":       false,
		"include_docs": true,
		"limit":        2,
		"key":          viewKey(key),
	})
	if err != nil {
		return nil, err
	}

	switch len(result.Rows) {
	case 0:
		return nil, nil
	case 1:
		return result.Rows[0].Doc, nil
	default:
		return nil, fmt.Errorf("%w: view %q", ErrNotUnique, viewName)
	}
}

// Exists reports whether at least one row matches the key exactly. Unlike
// FindOne it never fails on multiple matches; it checks presence only.
func (d *DAO) Exists(ctx context.Context, viewName string, key ...any) (bool, error) {
	if err := checkViewArgs(viewName, key); err != nil {
		return false, err
	}

	result, err := d.store.PartitionedView(ctx, d.docType, d.docType, viewName, ViewOptions{
		"reduce":       false,
		"include_docs": false,
		"limit":        1,
		"key":          viewKey(key),
	})
	if err != nil {
		return false, err
	}
	return len(result.Rows) > 0, nil
}

// Count returns the view's reduced count for an exact key match, or the
// unfiltered reduction over the whole view when no key components are given.
// An empty reduction (no matching keys) counts as zero, not an error.
func (d *DAO) Count(ctx context.Context, viewName string, key ...any) (int64, error) {
	if viewName == "" {
		return 0, fmt.Errorf("%w: viewName must be a non-empty string", ErrInvalidArgument)
	}

	opts := ViewOptions{"reduce": true}
	if len(key) > 0 {
		opts["key"] = viewKey(key)
	}

	result, err := d.store.PartitionedView(ctx, d.docType, d.docType, viewName, opts)
	if err != nil {
		return 0, err
	}
	if len(result.Rows) == 0 {
		return 0, nil
	}
	return reducedCount(result.Rows[0].Value)
}

// checkViewArgs validates a view name and key for the exact-match helpers.
func checkViewArgs(viewName string, key []any) error {
	if viewName == "" {
		return fmt.Errorf("%w: viewName must be a non-empty string", ErrInvalidArgument)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}
	return nil
}

// viewKey renders key components as a view key: a single component stays a
// scalar, two or more become an array key per standard view collation.
func viewKey(key []any) any {
	if len(key) == 1 {
		return key[0]
	}
	return key
}

// reducedCount coerces a reduce row value to an integer count.
func reducedCount(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("bramble: unexpected reduce value of type %T", v)
	}
}
