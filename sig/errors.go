package sig

import "github.com/pkg/errors"

var (
	// ErrInvalidLength rejects fixed and compact buffers whose size
	// does not match the curve.
	ErrInvalidLength = errors.New("invalid signature length")

	// ErrMalformedDER rejects structural violations in DER input.
	ErrMalformedDER = errors.New("malformed DER signature")

	// ErrValueOutOfRange rejects integers wider than the curve element.
	ErrValueOutOfRange = errors.New("signature value out of range")
)
