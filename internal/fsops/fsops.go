package fsops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Ning0612/fileporter/internal/domain"
	"github.com/Ning0612/fileporter/internal/logger"
)

// BackupSuffix is the extension given to backup copies
const BackupSuffix = ".bak"

// Exists checks if a path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if a path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir checks if a path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDirectory creates a directory and any necessary parents
// No error and no side effect if the directory already exists
// Permission and read-only failures are mapped to domain errors;
// any other OS failure propagates verbatim
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		logFailure("mkdir", path, err)
		return classifyCreateError(err)
	}
	return nil
}

// RemoveDirectoryRecursive removes a directory and all its contents
// An empty directory is removed directly; a non-empty one has its
// children removed first (files unlinked, subdirectories recursed into)
// Any failure other than "directory not empty" on the initial attempt
// propagates immediately without the recursive fallback
// A path that does not denote a directory fails with ENOTDIR
func RemoveDirectoryRecursive(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		logFailure("rmdir", path, err)
		return err
	}
	if !info.IsDir() {
		err := &os.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
		logFailure("rmdir", path, err)
		return err
	}

	err = os.Remove(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.ENOTEMPTY) {
		logFailure("rmdir", path, err)
		return err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		logFailure("readdir", path, err)
		return err
	}
	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if err := RemoveDirectoryRecursive(childPath); err != nil {
				return err
			}
		} else {
			if err := os.Remove(childPath); err != nil {
				logFailure("unlink", childPath, err)
				return err
			}
		}
	}

	if err := os.Remove(path); err != nil {
		logFailure("rmdir", path, err)
		return err
	}
	return nil
}

// CopyFile copies a file from source to destination, preserving mode
// bits and modification time. If destination is an existing directory
// the file is copied into it under the source's base name. OS failures
// propagate verbatim
func CopyFile(source, destination string) error {
	srcInfo, err := os.Stat(source)
	if err != nil {
		logFailure("copy", source, err)
		return err
	}

	// Copying into a directory keeps the source's name
	if info, err := os.Stat(destination); err == nil && info.IsDir() {
		destination = filepath.Join(destination, filepath.Base(source))
	}

	src, err := os.Open(source)
	if err != nil {
		logFailure("copy", source, err)
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		logFailure("copy", destination, err)
		return err
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()

	if copyErr != nil {
		logFailure("copy", destination, copyErr)
		return copyErr
	}
	if closeErr != nil {
		logFailure("copy", destination, closeErr)
		return closeErr
	}

	if err := os.Chmod(destination, srcInfo.Mode().Perm()); err != nil {
		logFailure("chmod", destination, err)
		return err
	}
	if err := os.Chtimes(destination, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		logFailure("chtimes", destination, err)
		return err
	}
	return nil
}

// CreateBackup copies a file to a sibling path with the backup suffix
// replacing its last extension (appended when there is none) and
// returns the backup path. An existing backup is silently overwritten
func CreateBackup(path string) (string, error) {
	return CreateBackupWithSuffix(path, BackupSuffix)
}

// CreateBackupWithSuffix is CreateBackup with a caller-chosen suffix
func CreateBackupWithSuffix(path, suffix string) (string, error) {
	backupPath := strings.TrimSuffix(path, filepath.Ext(path)) + suffix
	if err := CopyFile(path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// classifyCreateError maps directory creation failures to domain errors
// Unrecognized errors pass through untouched
func classifyCreateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EROFS) {
		return domain.ErrReadOnly
	}
	if os.IsPermission(err) {
		return domain.ErrPermissionDenied
	}
	return err
}

// logFailure reports a failed operation to the diagnostic logger
// Fire-and-forget: never blocks and never affects control flow
func logFailure(op, path string, err error) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		logger.Get().Error("filesystem operation failed",
			"op", op,
			"path", path,
			"errno", int(errno),
			"error", err,
		)
		return
	}
	logger.Get().Error("filesystem operation failed",
		"op", op,
		"path", path,
		"error", err,
	)
}
