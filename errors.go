package barscan

import "errors"

var (
	// ErrNotFound is returned when a barcode is not found in the image.
	ErrNotFound = errors.New("barcode not found")

	// ErrChecksum is returned when a barcode's checksum does not match.
	ErrChecksum = errors.New("checksum error")

	// ErrFormat is returned when a barcode cannot be decoded due to format issues.
	ErrFormat = errors.New("format error")

	// ErrWriter is returned when a barcode cannot be encoded.
	ErrWriter = errors.New("writer error")

	// ErrEncodingNotSupported is returned when a BYTE segment requests a
	// character set the decoder does not implement.
	ErrEncodingNotSupported = errors.New("encoding not supported")

	// ErrInvalidArgument is returned for programmer errors: a required field
	// left unset, or a value outside its documented range. It is never
	// retried by the dispatcher.
	ErrInvalidArgument = errors.New("invalid argument")
)
