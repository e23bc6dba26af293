package domain

import "errors"

// Filesystem errors - 檔案系統層錯誤
var (
	// ErrSourceNotValid indicates the transfer source does not exist
	ErrSourceNotValid = errors.New("source not valid")

	// ErrDestinationNotValid indicates the transfer destination does not
	// exist and could not be created
	ErrDestinationNotValid = errors.New("destination not valid")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")

	// ErrReadOnly indicates the target filesystem is mounted read-only
	ErrReadOnly = errors.New("read-only filesystem")
)

// Config errors - 設定檔錯誤
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)
