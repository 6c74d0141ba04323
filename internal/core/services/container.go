package services

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftbank/bank_records_app/internal/adapters/database/pgsql"
	portssvc "github.com/swiftbank/bank_records_app/internal/core/ports/services"
	"github.com/swiftbank/bank_records_app/internal/platform/config"
)

// NewServiceContainer wires repositories and services onto the shared pool.
func NewServiceContainer(pool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	accountRepo := pgsql.NewAccountRepository(pool)
	txnRepo := pgsql.NewTransactionRepository(pool)
	adminRepo := pgsql.NewAdminRepository(pool)

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(accountRepo, txnRepo),
		Transaction: NewTransactionService(txnRepo, accountRepo),
		Admin:       NewAdminService(adminRepo, cfg),
	}
}
