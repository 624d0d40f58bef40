package id

import (
	"github.com/google/uuid"

	crerr "github.com/cockroachdb/errors"
)

// Generator creates opaque IDs for archive import runs.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", crerr.Wrap(err, "generate uuid")
	}
	return value.String(), nil
}
