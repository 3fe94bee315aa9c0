package gamelog

import (
	"context"
	"fmt"
	"hearts-client/pkg/wire"
	"os"
	"path/filepath"
)

// FileRecorder writes every snapshot to its own JSON file under Dir. The files decode with
// wire.DecodeGameStatus, so any of them can be replayed
type FileRecorder struct {
	Dir string
}

// NewFileRecorder returns a recorder writing under dir
func NewFileRecorder(dir string) *FileRecorder {
	return &FileRecorder{Dir: dir}
}

// Path returns the file the record is written to
func (f *FileRecorder) Path(r *Record) string {
	name := fmt.Sprintf("%02d-%02d.json", r.RoundID(), r.Deal)

	gameID := filepath.Base(filepath.Clean("/" + r.GameID()))
	if gameID == "/" {
		gameID = "unknown"
	}

	return filepath.Join(f.Dir, gameID, name)
}

// Record writes the snapshot
func (f *FileRecorder) Record(_ context.Context, r *Record) error {
	data, err := wire.EncodeGameStatus(r.Status)
	if err != nil {
		return err
	}

	path := f.Path(r)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create game log directory: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
