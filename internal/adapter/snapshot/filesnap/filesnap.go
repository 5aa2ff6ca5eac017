// Package filesnap persists the snapshot as a single JSON file. Writes go to
// a temp file first and replace the real file with os.Rename, so a crash
// mid-write leaves the previous snapshot intact.
package filesnap

import (
	"context"
	"encoding/json"
	"os"

	"ruralbank/internal/domain/snapshot"
)

type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

var _ snapshot.Store = (*Store)(nil)

func (s *Store) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, snapshot.ErrNoSnapshot
		}
		return nil, err
	}
	defer f.Close()

	var snap snapshot.Snapshot
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Store) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	// Indented output so the file stays inspectable by hand.
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
