package infra

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RunIDGenerator stamps each invocation with a time-ordered UUID, so the log
// lines of successive runs over the same file sort by start time.
type RunIDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{newID: uuid.NewV7}
}

func (g *RunIDGenerator) Generate() (string, error) {
	id, err := g.newID()
	if err != nil {
		return "", errors.Wrap(err, "generate run id")
	}

	return id.String(), nil
}
