// Package couch implements dao.Store on a partitioned CouchDB database via
// go-kivik. The database is expected to be partitioned; the partition and
// design-document names are supplied per query by the DAO.
package couch

import (
	"context"
	"net/http"

	"github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/jacentio/bramble/dao"
)

// DB adapts a kivik database handle to the dao.Store interface. It does not
// own the handle; closing the underlying client is the caller's job.
type DB struct {
	db *kivik.DB
}

var _ dao.Store = (*DB)(nil)

// Open dials a CouchDB server and binds to the named database.
func Open(dsn, name string) (*DB, error) {
	client, err := kivik.New("couch", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{db: client.DB(name)}, nil
}

// Wrap adopts an existing kivik database handle.
func Wrap(db *kivik.DB) *DB {
	return &DB{db: db}
}

// Get fetches a document by its qualified id, mapping HTTP 404 to
// dao.ErrNotFound. All other errors pass through unmodified.
func (d *DB) Get(ctx context.Context, id string) (dao.Document, error) {
	var doc dao.Document
	if err := d.db.Get(ctx, id).ScanDoc(&doc); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, dao.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Insert writes the document keyed by its own _id. CouchDB enforces the
// optimistic concurrency check against the document's _rev; conflicts
// surface as kivik errors with HTTP 409 status.
func (d *DB) Insert(ctx context.Context, doc dao.Document) (dao.DocumentMeta, error) {
	id := doc.ID()
	rev, err := d.db.Put(ctx, id, doc)
	if err != nil {
		return dao.DocumentMeta{}, err
	}
	return dao.DocumentMeta{ID: id, Rev: rev}, nil
}

// Destroy deletes the document at the given revision, returning the
// tombstone revision.
func (d *DB) Destroy(ctx context.Context, id, rev string) (dao.DocumentMeta, error) {
	newRev, err := d.db.Delete(ctx, id, rev)
	if err != nil {
		return dao.DocumentMeta{}, err
	}
	return dao.DocumentMeta{ID: id, Rev: newRev}, nil
}

// PartitionedView queries a view scoped to one partition, materializing all
// rows in view key order. The option map is forwarded verbatim, so
// unrecognized options reach CouchDB unchanged.
func (d *DB) PartitionedView(ctx context.Context, partition, ddoc, view string, opts dao.ViewOptions) (*dao.ViewResult, error) {
	params := make(map[string]any, len(opts)+1)
	for k, v := range opts {
		params[k] = v
	}
	// Routes the query through /{db}/_partition/{partition}/_design/...
	params["partition"] = partition

	rs := d.db.Query(ctx, ddoc, view, kivik.Params(params))
	defer rs.Close()

	result := &dao.ViewResult{}
	withDocs := includeDocs(opts)
	for rs.Next() {
		var row dao.ViewRow
		if err := rs.ScanKey(&row.Key); err != nil {
			return nil, err
		}
		if err := rs.ScanValue(&row.Value); err != nil {
			return nil, err
		}
		if withDocs {
			if err := rs.ScanDoc(&row.Doc); err != nil {
				return nil, err
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// includeDocs reports whether the query asked for attached documents.
func includeDocs(opts dao.ViewOptions) bool {
	v, ok := opts["include_docs"].(bool)
	return ok && v
}
