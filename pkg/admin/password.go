// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	tempPasswordLength   = 16
	tempPasswordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%"
)

// generateTempPassword draws from a reduced alphabet without lookalike
// characters, since the result is read out to a human exactly once.
func generateTempPassword() (string, error) {
	out := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}
