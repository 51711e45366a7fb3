package fileutil

import "errors"

var (
	// Download errors
	ErrInvalidURL         = errors.New("invalid download URL")
	ErrInvalidDestination = errors.New("invalid destination path")
	ErrUnexpectedStatus   = errors.New("unexpected HTTP status")
	ErrChecksumMismatch   = errors.New("checksum mismatch")

	// Archive errors
	ErrInvalidArchivePath  = errors.New("invalid archive entry path") // Prevents zip-slip attacks
	ErrFailedToOpenArchive = errors.New("failed to open archive")

	// I/O operation errors - wrapped with context for debugging
	ErrFailedToCreateFile      = errors.New("failed to create file")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
)
