package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes embed the repository interface so only the methods the service
// actually calls need implementations.

type fakeRevenueRepo struct {
	repository.RevenueRepository
	rows    map[string]*entity.Revenue
	updated *entity.Revenue
}

func (f *fakeRevenueRepo) GetOrCreate(ctx context.Context, customerID uuid.UUID, freq enum.Frequency, start, end time.Time) (*entity.Revenue, bool, error) {
	key := customerID.String() + freq.String() + start.Format("2006-01-02")
	if row, ok := f.rows[key]; ok {
		return row, false, nil
	}
	row := &entity.Revenue{
		ID:         uuid.New(),
		CustomerID: customerID,
		Frequency:  freq,
		StartDate:  start,
		EndDate:    end,
	}
	if f.rows == nil {
		f.rows = make(map[string]*entity.Revenue)
	}
	f.rows[key] = row
	return row, true, nil
}

func (f *fakeRevenueRepo) Update(ctx context.Context, revenue *entity.Revenue) error {
	f.updated = revenue
	return nil
}

func (f *fakeRevenueRepo) rowStartingOn(start time.Time) *entity.Revenue {
	for _, row := range f.rows {
		if row.StartDate.Equal(start) {
			return row
		}
	}
	return nil
}

type fakeSaleRepo struct {
	repository.SaleRepository
	totals entity.PeriodTotals
	dates  []time.Time
	err    error
}

func (f *fakeSaleRepo) TotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error) {
	return f.totals, f.err
}

func (f *fakeSaleRepo) RevenueDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error) {
	return f.dates, nil
}

type fakeTransactionRepo struct {
	repository.TransactionRepository
	totals entity.PeriodTotals
	dates  []time.Time
}

func (f *fakeTransactionRepo) IncomeTotalsForPeriod(ctx context.Context, customerID uuid.UUID, start, end time.Time) (entity.PeriodTotals, error) {
	return f.totals, nil
}

func (f *fakeTransactionRepo) IncomeDates(ctx context.Context, customerID uuid.UUID) ([]time.Time, error) {
	return f.dates, nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customers map[uuid.UUID]*entity.Customer
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) ListAll(ctx context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func TestRecomputePeriodSetsTotals(t *testing.T) {
	revenueRepo := &fakeRevenueRepo{}
	svc := NewRevenueService(
		revenueRepo,
		&fakeCustomerRepo{},
		&fakeSaleRepo{totals: entity.PeriodTotals{
			Total: decimal.NewFromInt(1200),
			Tax:   decimal.NewFromInt(60),
			Count: 3,
		}},
		&fakeTransactionRepo{totals: entity.PeriodTotals{
			Total: decimal.NewFromInt(300),
			Tax:   decimal.NewFromInt(15),
			Count: 2,
		}},
	)

	customerID := uuid.New()
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	revenue, created, err := svc.RecomputePeriod(context.Background(), customerID, enum.FrequencyMonthly, ref)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if !created {
		t.Error("first recompute should create the row")
	}
	if got := revenue.SalesTotal.StringFixed(2); got != "1200.00" {
		t.Errorf("sales total = %s, want 1200.00", got)
	}
	if got := revenue.GrandTotal.StringFixed(2); got != "1500.00" {
		t.Errorf("grand total = %s, want 1500.00", got)
	}
	if got := revenue.TaxTotal.StringFixed(2); got != "75.00" {
		t.Errorf("tax total = %s, want 75.00", got)
	}
	if revenue.TransactionCount != 5 {
		t.Errorf("transaction count = %d, want 5", revenue.TransactionCount)
	}
	if !revenue.StartDate.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start date = %v, want 2024-03-01", revenue.StartDate)
	}
	if revenueRepo.updated == nil {
		t.Error("updated row was not persisted")
	}
}

func TestRecomputePeriodReusesExistingRow(t *testing.T) {
	revenueRepo := &fakeRevenueRepo{}
	svc := NewRevenueService(
		revenueRepo,
		&fakeCustomerRepo{},
		&fakeSaleRepo{totals: entity.PeriodTotals{Total: decimal.NewFromInt(100), Count: 1}},
		&fakeTransactionRepo{},
	)

	customerID := uuid.New()
	ref := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	first, _, err := svc.RecomputePeriod(context.Background(), customerID, enum.FrequencyMonthly, ref)
	if err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	// A later ref inside the same month must hit the same row.
	second, created, err := svc.RecomputePeriod(context.Background(), customerID, enum.FrequencyMonthly, ref.AddDate(0, 0, 10))
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if created {
		t.Error("second recompute reported a new row")
	}
	if first.ID != second.ID {
		t.Errorf("same period produced two rows: %s and %s", first.ID, second.ID)
	}
}

func TestRecomputeForCustomerUnknownCustomer(t *testing.T) {
	svc := NewRevenueService(
		&fakeRevenueRepo{},
		&fakeCustomerRepo{},
		&fakeSaleRepo{},
		&fakeTransactionRepo{},
	)

	_, err := svc.RecomputeForCustomer(context.Background(), uuid.New(), time.Now())
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestRecomputeAllCoversHistoricalPeriods(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Frequency: enum.FrequencyMonthly}
	revenueRepo := &fakeRevenueRepo{}

	// Sales in March 2024 only, income in January 2024; the bulk pass
	// runs much later and must still rebuild both months.
	svc := NewRevenueService(
		revenueRepo,
		&fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{customer.ID: customer}},
		&fakeSaleRepo{
			totals: entity.PeriodTotals{Total: decimal.NewFromInt(500), Count: 2},
			dates: []time.Time{
				time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			},
		},
		&fakeTransactionRepo{
			dates: []time.Time{time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
		},
	)

	created, updated, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("recompute all: %v", err)
	}
	if created != 2 || updated != 0 {
		t.Errorf("created/updated = %d/%d, want 2/0", created, updated)
	}
	march := revenueRepo.rowStartingOn(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	if march == nil {
		t.Fatal("March 2024 rollup was never rebuilt")
	}
	if got := march.SalesTotal.StringFixed(2); got != "500.00" {
		t.Errorf("March sales total = %s, want 500.00", got)
	}
	if revenueRepo.rowStartingOn(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) == nil {
		t.Fatal("January 2024 rollup was never rebuilt")
	}
}

func TestRecomputeAllTwiceYieldsIdenticalRows(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Frequency: enum.FrequencyMonthly}
	revenueRepo := &fakeRevenueRepo{}

	svc := NewRevenueService(
		revenueRepo,
		&fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{customer.ID: customer}},
		&fakeSaleRepo{
			totals: entity.PeriodTotals{Total: decimal.NewFromInt(800), Tax: decimal.NewFromInt(40), Count: 4},
			dates: []time.Time{
				time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
			},
		},
		&fakeTransactionRepo{},
	)

	created, updated, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if created != 2 || updated != 0 {
		t.Errorf("first pass created/updated = %d/%d, want 2/0", created, updated)
	}

	firstTotals := make(map[uuid.UUID]string)
	for _, row := range revenueRepo.rows {
		firstTotals[row.ID] = row.GrandTotal.StringFixed(2)
	}

	created, updated, err = svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if created != 0 || updated != 2 {
		t.Errorf("second pass created/updated = %d/%d, want 0/2", created, updated)
	}
	if len(revenueRepo.rows) != 2 {
		t.Fatalf("row count = %d after second pass, want 2", len(revenueRepo.rows))
	}
	for _, row := range revenueRepo.rows {
		if firstTotals[row.ID] != row.GrandTotal.StringFixed(2) {
			t.Errorf("row %s changed between passes: %s vs %s",
				row.ID, firstTotals[row.ID], row.GrandTotal.StringFixed(2))
		}
	}
}

func TestRecomputeAllSkipsFailingCustomer(t *testing.T) {
	good := &entity.Customer{ID: uuid.New(), Frequency: enum.FrequencyMonthly}
	customerRepo := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{good.ID: good}}

	svc := NewRevenueService(
		&fakeRevenueRepo{},
		customerRepo,
		&fakeSaleRepo{
			dates: []time.Time{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
			err:   errors.New("db down"),
		},
		&fakeTransactionRepo{},
	)

	created, updated, err := svc.RecomputeAll(context.Background())
	if err != nil {
		t.Fatalf("recompute all: %v", err)
	}
	if created != 0 || updated != 0 {
		t.Errorf("created/updated = %d/%d, want 0/0 when every period fails", created, updated)
	}
}
