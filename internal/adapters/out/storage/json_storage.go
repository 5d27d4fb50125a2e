package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
)

// JSONStorageAdapter persists the whole state document as one JSON
// file, read once at startup and rewritten at register close.
type JSONStorageAdapter struct {
	path   string
	logger out.LoggerPort
}

func NewJSONStorageAdapter(cfg *config.Config, logger out.LoggerPort) *JSONStorageAdapter {
	return &JSONStorageAdapter{
		path:   cfg.Storage.ConfigFile,
		logger: logger.WithModule("JSONStorageAdapter"),
	}
}

func (a *JSONStorageAdapter) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		a.logger.Warn("storage.load.read_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, &domain.ConfigLoadError{Path: a.path, Err: err}
	}

	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		a.logger.Warn("storage.load.decode_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, &domain.ConfigLoadError{Path: a.path, Err: err}
	}

	a.logger.Info("storage.load.ok", out.LogFields{
		"path":         a.path,
		"patients":     len(snapshot.Patients),
		"appointments": len(snapshot.Appointments),
	})

	return snapshot, nil
}

// Save writes to a temp file in the same directory and renames it over
// the target, so a failed write leaves the prior file untouched.
func (a *JSONStorageAdapter) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(a.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(a.path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), a.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	a.logger.Info("storage.save.ok", out.LogFields{
		"path":         a.path,
		"patients":     len(snapshot.Patients),
		"appointments": len(snapshot.Appointments),
	})

	return nil
}
