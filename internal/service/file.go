package service

import (
	"fmt"
	"time"

	"github.com/Ning0612/fileporter/internal/config"
	"github.com/Ning0612/fileporter/internal/core/transfer"
	"github.com/Ning0612/fileporter/internal/fsops"
	"github.com/Ning0612/fileporter/internal/history"
	"github.com/Ning0612/fileporter/internal/logger"
)

// FileService orchestrates file operations with journaling
type FileService struct {
	config     *config.Config
	journal    *history.Manager
	transferer transfer.Transferer
}

// NewFileService creates a new file service
func NewFileService(cfg *config.Config) (*FileService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	svc := &FileService{
		config:     cfg,
		transferer: transfer.NewDefaultTransferer(),
	}

	if cfg.History.Enabled {
		journal, err := history.NewManager(cfg.History.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create operation journal: %w", err)
		}
		svc.journal = journal
	}

	return svc, nil
}

// Upload copies source to destination, creating the destination
// directory when missing
func (s *FileService) Upload(source, destination string, copy transfer.CopyFunc) error {
	logger.Get().Debug("starting upload", "source", source, "destination", destination)
	return s.record("upload", source, destination, func() error {
		return s.transferer.Transfer(source, destination, copy)
	})
}

// Download copies source to destination, creating the destination
// directory when missing
func (s *FileService) Download(source, destination string, copy transfer.CopyFunc) error {
	logger.Get().Debug("starting download", "source", source, "destination", destination)
	return s.record("download", source, destination, func() error {
		return s.transferer.Transfer(source, destination, copy)
	})
}

// Backup copies a file to a sibling path carrying the configured backup
// suffix and returns the backup path
func (s *FileService) Backup(path string) (string, error) {
	logger.Get().Debug("starting backup", "path", path)

	var backupPath string
	err := s.record("backup", path, "", func() error {
		var bkErr error
		backupPath, bkErr = fsops.CreateBackupWithSuffix(path, s.config.Backup.Suffix)
		return bkErr
	})
	if err != nil {
		return "", err
	}
	return backupPath, nil
}

// EnsureDir creates a directory and any missing parents
func (s *FileService) EnsureDir(path string) error {
	return s.record("mkdir", path, "", func() error {
		return fsops.EnsureDirectory(path)
	})
}

// RemoveDir removes a directory tree
func (s *FileService) RemoveDir(path string) error {
	return s.record("rmdir", path, "", func() error {
		return fsops.RemoveDirectoryRecursive(path)
	})
}

// History returns the most recent recorded operations
// Returns nil when journaling is disabled
func (s *FileService) History(limit int) ([]history.OperationRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.GetAllHistory(limit)
}

// LastSuccess returns the most recent successful outcome for an
// operation kind, or nil when there is none or journaling is disabled
func (s *FileService) LastSuccess(op string) (*history.OperationRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.GetLastSuccess(op)
}

// record times an operation and journals its outcome
// Journal write failures are logged and never propagated
func (s *FileService) record(op, source, destination string, fn func() error) error {
	start := time.Now()
	opErr := fn()
	end := time.Now()

	if s.journal != nil {
		record := history.OperationRecord{
			Op:          op,
			Source:      source,
			Destination: destination,
			StartTime:   start,
			EndTime:     end,
			Status:      "success",
		}
		if opErr != nil {
			record.Status = "failed"
			record.Error = opErr.Error()
		}
		if err := s.journal.SaveOperation(record); err != nil {
			logger.Get().Error("failed to journal operation",
				"op", op,
				"source", source,
				"error", err,
			)
		}
	}

	return opErr
}

// Close releases the service's resources
func (s *FileService) Close() error {
	if s.journal != nil {
		return s.journal.Close()
	}
	return nil
}
