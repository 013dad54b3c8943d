package main

import (
	"context"
	"log"

	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/infrastructure/database"
	"github.com/primag/sales-api/internal/infrastructure/repository"
)

// revenuegen rebuilds every revenue rollup period that has qualifying
// activity and exits. Useful for backfills and after restoring a
// database dump, since historical periods are rebuilt too.
func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	revenueService := service.NewRevenueService(
		repository.NewRevenueRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSaleRepository(db),
		repository.NewTransactionRepository(db),
	)

	created, updated, err := revenueService.RecomputeAll(context.Background())
	if err != nil {
		log.Fatalf("Revenue recompute failed: %v", err)
	}
	log.Printf("Revenue rollups: %d created, %d updated", created, updated)
}
