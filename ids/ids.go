// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Length bounds accepted by NewUUIDGenerator.
const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 8
)

// Id formats accepted by New.
const (
	FormatUUID = "uuid"
	FormatHex  = "hex"
)

// Generator produces opaque, URL-safe identifiers. Implementations must be
// safe for concurrent use.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to a Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string { return f() }

// UUIDGenerator returns the first Length hex characters of a random UUID.
type UUIDGenerator struct {
	Length int
}

// NewUUIDGenerator validates length and returns a generator for it.
func NewUUIDGenerator(length int) (*UUIDGenerator, error) {
	if length < MinLength || length > MaxLength {
		return nil, fmt.Errorf("id length must be between %d and %d, got %d", MinLength, MaxLength, length)
	}
	return &UUIDGenerator{Length: length}, nil
}

func (g *UUIDGenerator) NewID() string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:g.Length]
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HexGenerator is a Generator backed by GenerateID.
type HexGenerator struct {
	ByteLen int
}

func (g HexGenerator) NewID() string {
	id, err := GenerateID(g.ByteLen)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return id
}

// New returns a generator producing ids of the given format and length.
// Hex ids encode whole bytes, so their length must be even.
func New(format string, length int) (Generator, error) {
	switch format {
	case FormatUUID:
		return NewUUIDGenerator(length)
	case FormatHex:
		if length < MinLength || length > MaxLength {
			return nil, fmt.Errorf("id length must be between %d and %d, got %d", MinLength, MaxLength, length)
		}
		if length%2 != 0 {
			return nil, fmt.Errorf("hex id length must be even, got %d", length)
		}
		return HexGenerator{ByteLen: length / 2}, nil
	default:
		return nil, fmt.Errorf("unknown id format %q", format)
	}
}
