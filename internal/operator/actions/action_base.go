package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// stamp returns a fresh record id and creation time.
func stamp(clock Clock) (uuid.UUID, time.Time, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return id, clock.now(), nil
}
