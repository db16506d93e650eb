package pgsql

import (
	"github.com/hearthsure/policyadmin/internal/core/domain"
	portsrepo "github.com/hearthsure/policyadmin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool, clock domain.Clock) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PolicyRepo: newPgxPolicyRepository(dbPool, clock),
	}
}
