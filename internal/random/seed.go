// Package random provides the uniform integer source behind every die roll.
//
// Sources are seeded from crypto/rand so each process rolls a different
// sequence, while NewWithSeed keeps the sequence reproducible for tests.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return readSeed(crand.Reader)
}

func readSeed(reader io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(reader, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
