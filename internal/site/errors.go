package site

// Sentinel errors for walk failures. Walker errors are ClassifiedErrors whose
// cause chain carries one of these, so callers can match with errors.Is.

import "errors"

var (
	// ErrReadmeMissing indicates the README at the configured path does not exist or cannot be read.
	ErrReadmeMissing = errors.New("readme missing or unreadable")

	// ErrFileReadFailed indicates reading a markdown file selected for rendering failed.
	ErrFileReadFailed = errors.New("documentation file read failed")

	// ErrRenderFailed indicates the markdown pipeline rejected a document.
	ErrRenderFailed = errors.New("markdown render failed")

	// ErrOutputDirFailed indicates a mirrored output directory could not be created.
	ErrOutputDirFailed = errors.New("output directory creation failed")

	// ErrOutputWriteFailed indicates writing a rendered page failed.
	ErrOutputWriteFailed = errors.New("output file write failed")

	// ErrDirWalkFailed indicates listing an input directory failed.
	ErrDirWalkFailed = errors.New("input directory walk failed")
)
