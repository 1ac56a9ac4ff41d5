// Package store keeps compiled hyphenation dictionaries in badger database, so patterns do not have to be
// parsed on every run.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/dgraph-io/badger/v4"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/rupor-github/hyph/hyphenator"
)

// FormatVersion is version of stored trie layout. Dumps with different major version are not readable.
var FormatVersion = semver.Version{Major: 1, Minor: 0, Patch: 0}

const (
	prefixDict = "dict/"
	prefixMeta = "meta/"
)

var (
	// ErrNotFound is returned when there is no dictionary for requested language.
	ErrNotFound = errors.New("dictionary not found")
	// ErrIncompatible is returned for dictionaries stored with unsupported format version.
	ErrIncompatible = errors.New("incompatible dictionary format")
)

// Store is compiled dictionaries database.
type Store struct {
	log *zap.Logger
	db  *badger.DB
}

// Open opens (creating if necessary) database in directory.
func Open(dir string, log *zap.Logger) (*Store, error) {
	return open(badger.DefaultOptions(dir), log)
}

// OpenInMemory opens database which is never written to disk.
func OpenInMemory(log *zap.Logger) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), log)
}

func open(opts badger.Options, log *zap.Logger) (*Store, error) {

	if log == nil {
		log = zap.NewNop()
	}
	// badger is rather chatty
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("unable to open dictionary store [%s]: %w", opts.Dir, err)
	}
	return &Store{log: log, db: db}, nil
}

// Close closes database.
func (s *Store) Close() error {
	return s.db.Close()
}

// key normalizes language name, so "en_US" and "en-us" are the same dictionary.
func key(lang string) string {
	return slug.Make(strings.ReplaceAll(lang, "_", "-"))
}

// Put stores trie for language replacing previous one.
func (s *Store) Put(lang string, t *hyphenator.Trie) error {

	k := key(lang)
	if len(k) == 0 {
		return fmt.Errorf("unable to store dictionary: bad language name %q", lang)
	}

	data, err := t.MarshalJSON()
	if err != nil {
		return fmt.Errorf("unable to serialize dictionary %s: %w", lang, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixMeta+k), []byte(FormatVersion.String())); err != nil {
			return err
		}
		return txn.Set([]byte(prefixDict+k), data)
	})
	if err != nil {
		return fmt.Errorf("unable to store dictionary %s: %w", lang, err)
	}

	s.log.Debug("Dictionary stored", zap.String("lang", k), zap.Stringer("stats", t.Stats()), zap.Int("size", len(data)))
	return nil
}

// Get restores trie for language.
func (s *Store) Get(lang string) (*hyphenator.Trie, error) {

	k := key(lang)

	var (
		ver  semver.Version
		data []byte
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixMeta + k))
		if err != nil {
			return err
		}
		meta, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if ver, err = semver.Parse(string(meta)); err != nil {
			return fmt.Errorf("%w: %v", ErrIncompatible, err)
		}
		if item, err = txn.Get([]byte(prefixDict + k)); err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, lang)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read dictionary %s: %w", lang, err)
	}
	if ver.Major != FormatVersion.Major {
		return nil, fmt.Errorf("%w: %s stored as %s, supported %s", ErrIncompatible, lang, ver, FormatVersion)
	}

	t := hyphenator.NewTrie()
	if err := t.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("unable to restore dictionary %s: %w", lang, err)
	}
	s.log.Debug("Dictionary restored", zap.String("lang", k), zap.Stringer("version", ver), zap.Stringer("stats", t.Stats()))
	return t, nil
}

// List returns names of all stored dictionaries in key order.
func (s *Store) List() ([]string, error) {

	var langs []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixMeta)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			langs = append(langs, strings.TrimPrefix(string(it.Item().Key()), prefixMeta))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list dictionaries: %w", err)
	}
	return langs, nil
}

// Delete removes dictionary for language.
func (s *Store) Delete(lang string) error {

	k := key(lang)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(prefixMeta + k)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(prefixMeta + k)); err != nil {
			return err
		}
		return txn.Delete([]byte(prefixDict + k))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, lang)
	}
	if err != nil {
		return fmt.Errorf("unable to delete dictionary %s: %w", lang, err)
	}
	s.log.Debug("Dictionary deleted", zap.String("lang", k))
	return nil
}
