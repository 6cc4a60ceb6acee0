package twittercsv

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/contribdash/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// BatchLoader loads profile batches from csv files.
type BatchLoader interface {
	Load(paths ...string) ([]app.TwitterProfile, error)
}

// SnapshotLoader wraps a BatchLoader with a kv-backed snapshot of the parsed
// table. The snapshot key is the checksum of the source file contents: any
// change to the batches invalidates it, identical content skips reparsing.
// There is no ttl: the sources are immutable for the process lifetime.
type SnapshotLoader struct {
	loader BatchLoader
	store  KVStore
	l      logrus.FieldLogger
}

// NewSnapshotLoader creates new SnapshotLoader instance.
func NewSnapshotLoader(loader BatchLoader, store KVStore, l logrus.FieldLogger) *SnapshotLoader {
	return &SnapshotLoader{
		loader: loader,
		store:  store,
		l:      l,
	}
}

// Load returns the parsed profile table for given batches.
// Serves the stored snapshot when the sources are unchanged, otherwise parses
// the batches and stores a fresh snapshot.
func (s *SnapshotLoader) Load(paths ...string) ([]app.TwitterProfile, error) {
	key, err := s.snapshotKey(paths)
	if err != nil {
		return nil, fmt.Errorf("building snapshot key: %w", err)
	}

	data, err := s.store.ReadKey(key)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if data != nil {
		var entry snapshotEntry
		if err := jsoniter.ConfigFastest.Unmarshal(data, &entry); err == nil {
			s.l.Infof("SnapshotLoader: serving %d profiles from snapshot", len(entry.Data))
			return entry.Data, nil
		}
		// Unreadable snapshot entry. Reparse and overwrite it.
		s.l.Warnf("SnapshotLoader: discarding unreadable snapshot entry")
	}

	profiles, err := s.loader.Load(paths...)
	if err != nil {
		return nil, err
	}

	dbdata, err := jsoniter.ConfigFastest.Marshal(snapshotEntry{Data: profiles})
	if err != nil {
		return nil, fmt.Errorf("serializing snapshot: %w", err)
	}
	if err := s.store.UpdateKey(key, dbdata); err != nil {
		// The parse succeeded, a failed snapshot write only costs the next startup.
		s.l.Warnf("SnapshotLoader: saving snapshot: %v", err)
	}

	return profiles, nil
}

func (s *SnapshotLoader) snapshotKey(paths []string) ([]byte, error) {
	h := sha256.New()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("hashing file %s: %w", path, err)
		}
	}

	return []byte("tw/" + hex.EncodeToString(h.Sum(nil))), nil
}

type snapshotEntry struct {
	Data []app.TwitterProfile
}
