// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	// ErrHeader indicates the container header could not be built
	ErrHeader = errors.New("cannot build header")

	// ErrInvalidPayload indicates a payload that is not a whole number of samples
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnknownFormat indicates a format name missing from the registry
	ErrUnknownFormat = errors.New("unknown output format")
)
