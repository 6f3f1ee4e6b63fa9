package papertrading

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LedgerStore is the durable home of the ledger: a flat list of lot records
// supporting full-list load and full-list save.
type LedgerStore interface {
	Load() (*Ledger, error)
	Save(*Ledger) error
}

// fileStore persists the ledger as a JSONL file on disk.
type fileStore struct {
	path string
}

// NewFileStore returns a LedgerStore backed by the JSONL file at path.
func NewFileStore(path string) LedgerStore {
	return &fileStore{path: path}
}

// Load reads the whole ledger file. A missing file loads as an empty ledger.
func (s *fileStore) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting with an empty ledger", s.path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	return ledger, nil
}

// Save rewrites the whole ledger file. The write goes through a temporary file
// in the same directory, renamed over the target, so a failed save never
// leaves a half-written ledger behind.
func (s *fileStore) Save(ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace ledger file %q: %w", s.path, err)
	}
	return nil
}
