package nutshash

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrInvalidKeyLength is raised when a fixed-width hasher is given
	// anything other than exactly 8 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrUnknownAlgorithm is returned when an Algorithm value or name is not
	// one this package implements.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// IsInvalidKeyLength is true if the error indicates a fixed-width hasher was
// given a key that is not 8 bytes long.
func IsInvalidKeyLength(err error) bool {
	return errors.Is(err, ErrInvalidKeyLength)
}

// IsUnknownAlgorithm is true if the error indicates an unsupported algorithm.
func IsUnknownAlgorithm(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm)
}

func invalidKeyLength(alg Algorithm, n int) error {
	return pkgerrors.Wrapf(ErrInvalidKeyLength, "%s is only valid for 8-byte keys, got %d bytes", alg, n)
}

func unknownAlgorithm(alg Algorithm) error {
	return pkgerrors.Wrapf(ErrUnknownAlgorithm, "algorithm %d", uint8(alg))
}

func unknownAlgorithmName(name string) error {
	return pkgerrors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}
