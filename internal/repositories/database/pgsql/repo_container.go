package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/gstnote/gstnote_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		VendorRepo:      newPgxVendorRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
