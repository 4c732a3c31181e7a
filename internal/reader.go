package internal

import (
	"database/sql"
	"fmt"
	"path/filepath"
)

// Connection binds a topic name to its message type and serialization
// format, as recorded in the bag's topics table.
type Connection struct {
	ID                  int64
	Topic               string
	MsgType             string
	SerializationFormat string
}

// MessageFunc is called for every stored message in storage order. Returning
// an error aborts the iteration.
type MessageFunc func(conn *Connection, timestamp int64, data []byte) error

// BagReader provides access to the connections, metadata and messages of one
// opened bag. Lifecycle is scoped to a single invocation: Open, use, Close.
type BagReader struct {
	Location BagLocation

	db       *sql.DB
	conns    []*Connection
	connByID map[int64]*Connection
	meta     *BagMetadata
}

// OpenBag resolves the given path and opens the bag for reading. metadata.yaml
// is preferred for bag metadata; if it is missing or unreadable, equivalent
// metadata is derived from the database and the inconsistency is logged.
func OpenBag(path string) (*BagReader, error) {
	loc, err := LocateBag(path)
	if err != nil {
		return nil, err
	}
	db, err := OpenDatabase(loc.DataFile)
	if err != nil {
		return nil, &BagError{Dir: loc.Dir, Op: "open", Err: err}
	}
	r := &BagReader{Location: loc, db: db}
	if err := r.loadConnections(); err != nil {
		db.Close()
		return nil, &BagError{Dir: loc.Dir, Op: "open", Err: err}
	}
	r.meta, err = ReadMetadata(loc.Dir)
	if err != nil {
		LogWarn("failed to read %s, deriving metadata from storage: %v", metadataFileName, err)
		r.meta, err = r.deriveMetadata()
		if err != nil {
			db.Close()
			return nil, &BagError{Dir: loc.Dir, Op: "metadata", Err: err}
		}
	}
	return r, nil
}

// Close releases the underlying database handle.
func (r *BagReader) Close() error {
	return r.db.Close()
}

// Connections returns the recorded topic connections in table order.
func (r *BagReader) Connections() []*Connection {
	return r.conns
}

// Metadata returns the bag metadata.
func (r *BagReader) Metadata() *BagMetadata {
	return r.meta
}

func (r *BagReader) loadConnections() error {
	rows, err := r.db.Query("SELECT id, name, type, serialization_format FROM topics ORDER BY id")
	if err != nil {
		return fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	r.connByID = make(map[int64]*Connection)
	for rows.Next() {
		var conn Connection
		if err := rows.Scan(&conn.ID, &conn.Topic, &conn.MsgType, &conn.SerializationFormat); err != nil {
			return fmt.Errorf("failed to scan topic row: %w", err)
		}
		r.conns = append(r.conns, &conn)
		r.connByID[conn.ID] = &conn
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("topics iteration error: %w", err)
	}
	return nil
}

// deriveMetadata reconstructs bag metadata from the storage tables when
// metadata.yaml is unavailable.
func (r *BagReader) deriveMetadata() (*BagMetadata, error) {
	meta := &BagMetadata{
		StorageIdentifier: "sqlite3",
		RelativeFilePaths: []string{filepath.Base(r.Location.DataFile)},
	}

	var count int64
	var start, end sql.NullInt64
	row := r.db.QueryRow("SELECT COUNT(*), MIN(timestamp), MAX(timestamp) FROM messages")
	if err := row.Scan(&count, &start, &end); err != nil {
		return nil, fmt.Errorf("failed to derive message stats: %w", err)
	}
	meta.MessageCount = count
	if start.Valid {
		meta.StartingTime.NanosecondsSinceEpoch = start.Int64
		meta.Duration.Nanoseconds = end.Int64 - start.Int64
	}

	counts := make(map[string]int64)
	rows, err := r.db.Query("SELECT topic_id, COUNT(*) FROM messages GROUP BY topic_id")
	if err != nil {
		return nil, fmt.Errorf("failed to derive topic counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var topicID, n int64
		if err := rows.Scan(&topicID, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		if conn, ok := r.connByID[topicID]; ok {
			counts[conn.Topic] = n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count iteration error: %w", err)
	}

	for _, conn := range r.conns {
		meta.Topics = append(meta.Topics, TopicWithCount{
			TopicMetadata: TopicMetadata{
				Name:                conn.Topic,
				Type:                conn.MsgType,
				SerializationFormat: conn.SerializationFormat,
			},
			MessageCount: counts[conn.Topic],
		})
	}
	return meta, nil
}

// Messages iterates every stored message in storage order and calls fn for
// each. Messages referencing an unknown topic id are skipped with a warning.
func (r *BagReader) Messages(fn MessageFunc) error {
	rows, err := r.db.Query("SELECT topic_id, timestamp, data FROM messages ORDER BY id")
	if err != nil {
		return &BagError{Dir: r.Location.Dir, Op: "read", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var topicID, timestamp int64
		var data []byte
		if err := rows.Scan(&topicID, &timestamp, &data); err != nil {
			return &BagError{Dir: r.Location.Dir, Op: "read", Err: err}
		}
		conn, ok := r.connByID[topicID]
		if !ok {
			LogWarn("message references unknown topic id %d, skipping", topicID)
			continue
		}
		if err := fn(conn, timestamp, data); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return &BagError{Dir: r.Location.Dir, Op: "read", Err: err}
	}
	return nil
}
