// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrInvalidInput marks a distance matrix that is empty, non-square,
	// asymmetric, non-finite or negative.
	ErrInvalidInput = errors.New("cluster: invalid distance matrix")

	// ErrUnknownLinkage is returned by ParseLinkage for an unrecognized name.
	ErrUnknownLinkage = errors.New("cluster: unknown linkage")
)
