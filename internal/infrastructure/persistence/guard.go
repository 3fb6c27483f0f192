package persistence

import (
	"context"
	"errors"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/circuitbreaker"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// guarded routes a remote repository through a circuit breaker. Missing or
// invalid snapshots are answers, not outages, and never trip it.
type guarded struct {
	next    addressbook.Repository
	breaker *circuitbreaker.CircuitBreaker
}

func guard(next addressbook.Repository, name string, log *logger.Logger) *guarded {
	onChange := func(name string, from, to circuitbreaker.State) {
		log.Warn("store circuit changed state",
			logger.String("breaker", name),
			logger.String("from", from.String()),
			logger.String("to", to.String()))
	}
	return &guarded{
		next:    next,
		breaker: circuitbreaker.StoreBreaker(name, onChange, isOutage),
	}
}

func isOutage(err error) bool {
	return !errors.Is(err, shared.ErrSnapshotNotFound) &&
		!errors.Is(err, shared.ErrIllegalValue) &&
		!shared.IsDuplicate(err)
}

func (g *guarded) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	var ab *addressbook.AddressBook
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		ab, err = g.next.Load(ctx)
		return err
	})
	return ab, err
}

func (g *guarded) Save(ctx context.Context, ab addressbook.ReadOnly) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.next.Save(ctx, ab)
	})
}
