package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/primag/sales-api/pkg/apperror"
	"github.com/primag/sales-api/pkg/logger"
	"github.com/primag/sales-api/pkg/pagination"
)

// RevenueService maintains per-customer revenue rollups
type RevenueService struct {
	revenueRepo     repository.RevenueRepository
	customerRepo    repository.CustomerRepository
	saleRepo        repository.SaleRepository
	transactionRepo repository.TransactionRepository
}

// NewRevenueService creates a new revenue service
func NewRevenueService(
	revenueRepo repository.RevenueRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	transactionRepo repository.TransactionRepository,
) *RevenueService {
	return &RevenueService{
		revenueRepo:     revenueRepo,
		customerRepo:    customerRepo,
		saleRepo:        saleRepo,
		transactionRepo: transactionRepo,
	}
}

// RecomputePeriod rebuilds the rollup for the period containing ref and
// reports whether the row was newly created. The computation reads
// current sale and transaction totals, so running it twice with
// unchanged data yields the same row.
func (s *RevenueService) RecomputePeriod(ctx context.Context, customerID uuid.UUID, freq enum.Frequency, ref time.Time) (*entity.Revenue, bool, error) {
	start, end := entity.PeriodBounds(freq, ref)

	revenue, created, err := s.revenueRepo.GetOrCreate(ctx, customerID, freq, start, end)
	if err != nil {
		return nil, false, err
	}

	salesTotals, err := s.saleRepo.TotalsForPeriod(ctx, customerID, start, end)
	if err != nil {
		return nil, false, err
	}
	otherTotals, err := s.transactionRepo.IncomeTotalsForPeriod(ctx, customerID, start, end)
	if err != nil {
		return nil, false, err
	}

	revenue.SetTotals(salesTotals, otherTotals)
	if err := s.revenueRepo.Update(ctx, revenue); err != nil {
		return nil, false, err
	}
	return revenue, created, nil
}

// RecomputeForCustomer rebuilds the customer's rollup for the period
// containing ref, using the customer's configured frequency.
func (s *RevenueService) RecomputeForCustomer(ctx context.Context, customerID uuid.UUID, ref time.Time) (*entity.Revenue, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	revenue, _, err := s.RecomputePeriod(ctx, customerID, customer.Frequency, ref)
	return revenue, err
}

// RecomputeAll rebuilds every rollup period that has qualifying
// activity, for every customer. Periods are derived from the distinct
// sale and income transaction dates, so back-dated writes and restored
// dumps are covered, not just the current period. A failure on one
// customer or period is logged and does not stop the rest. Returns how
// many rollup rows were created and how many updated.
func (s *RevenueService) RecomputeAll(ctx context.Context) (int, int, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		return 0, 0, err
	}

	created, updated := 0, 0
	for _, customer := range customers {
		dates, err := s.activityDates(ctx, customer.ID)
		if err != nil {
			logger.Get().WithError(err).WithField("customer_id", customer.ID).
				Warn("revenue recompute failed for customer")
			continue
		}

		seen := make(map[time.Time]struct{})
		for _, date := range dates {
			start, _ := entity.PeriodBounds(customer.Frequency, date)
			if _, done := seen[start]; done {
				continue
			}
			seen[start] = struct{}{}

			_, wasCreated, err := s.RecomputePeriod(ctx, customer.ID, customer.Frequency, date)
			if err != nil {
				logger.Get().WithError(err).
					WithField("customer_id", customer.ID).
					WithField("period_start", start.Format("2006-01-02")).
					Warn("revenue recompute failed for period")
				continue
			}
			if wasCreated {
				created++
			} else {
				updated++
			}
		}
	}
	return created, updated, nil
}

// activityDates gathers every date a customer had a revenue-counting
// sale or an income transaction.
func (s *RevenueService) activityDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error) {
	saleDates, err := s.saleRepo.RevenueDates(ctx, customerID)
	if err != nil {
		return nil, err
	}
	incomeDates, err := s.transactionRepo.IncomeDates(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return append(saleDates, incomeDates...), nil
}

// GetRevenue retrieves a rollup row by ID
func (s *RevenueService) GetRevenue(ctx context.Context, id uuid.UUID) (*entity.Revenue, error) {
	revenue, err := s.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, apperror.NewNotFoundError("Revenue")
	}
	return revenue, nil
}

// ListRevenues lists rollups with pagination and filters
func (s *RevenueService) ListRevenues(ctx context.Context, params *pagination.PaginationParams, customerID *uuid.UUID, freq *enum.Frequency) (*pagination.PaginatedResult[entity.Revenue], error) {
	revenues, total, err := s.revenueRepo.List(ctx, params, customerID, freq)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(revenues, pag), nil
}

// ListRevenuesForExport returns all matching rollups without pagination
func (s *RevenueService) ListRevenuesForExport(ctx context.Context, customerID *uuid.UUID, freq *enum.Frequency, from, to *time.Time) ([]entity.Revenue, error) {
	return s.revenueRepo.ListByFilter(ctx, customerID, freq, from, to)
}
