package interning

import (
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerInterner is the disk-spilling Interner selected by the parser's
// Options.DiskInterningDir field, for documents large enough that an in-memory
// table would grow unbounded. Grounded on the teacher's BadgerStorage
// wrapper: DefaultOptions with the logger disabled, one DB per instance.
type BadgerInterner struct {
	db  *badger.DB
	dir string
}

// NewBadgerInterner opens (creating if necessary) a badger database rooted
// at dir, scoped to one parse.
func NewBadgerInterner(dir string) (*BadgerInterner, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("interning: open badger db at %s: %w", dir, err)
	}
	return &BadgerInterner{db: db, dir: dir}, nil
}

func (b *BadgerInterner) Intern(s string) string {
	key := HashKey(s)

	var canonical string
	err := b.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key[:])
		if err == nil {
			return item.Value(func(val []byte) error {
				canonical = string(val)
				return nil
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		canonical = s
		return txn.Set(key[:], []byte(s))
	})
	if err != nil {
		// The interning layer is a dedup optimization, not a correctness
		// requirement: on any storage error fall back to the literal
		// string rather than failing the parse.
		return s
	}
	return canonical
}

// Close drops the parse-scoped keyspace and closes the database, per the
// Lifecycle clause in spec.md §3: blank-node/prefix state does not
// survive across documents, even when it has spilled to disk.
func (b *BadgerInterner) Close() error {
	if err := b.db.DropAll(); err != nil {
		_ = b.db.Close()
		return fmt.Errorf("interning: drop badger keyspace: %w", err)
	}
	return b.db.Close()
}
