package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/hook"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakeSaleStore struct {
	repository.SaleRepository
	sales       map[uuid.UUID]*entity.Sale
	createCount int64
	failCreates int
	creates     int
	updated     *entity.Sale
}

func (f *fakeSaleStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.sales[id], nil
}

func (f *fakeSaleStore) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	return f.createCount, nil
}

func (f *fakeSaleStore) Create(ctx context.Context, sale *entity.Sale) error {
	f.creates++
	if f.creates <= f.failCreates {
		f.createCount++
		return gorm.ErrDuplicatedKey
	}
	sale.ID = uuid.New()
	return nil
}

func (f *fakeSaleStore) Update(ctx context.Context, sale *entity.Sale) error {
	f.updated = sale
	return nil
}

type fakeItemStore struct {
	repository.ItemRepository
	items     map[uuid.UUID]*entity.Item
	movements []*entity.StockMovement
}

func (f *fakeItemStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return f.items[id], nil
}

func (f *fakeItemStore) AdjustQuantity(ctx context.Context, itemID uuid.UUID, delta int, movement *entity.StockMovement) (*entity.Item, error) {
	item := f.items[itemID]
	item.Quantity += delta
	f.movements = append(f.movements, movement)
	return item, nil
}

func newSaleTestService(saleStore *fakeSaleStore, itemStore *fakeItemStore, customerRepo *fakeCustomerRepo) *SaleService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewSaleService(saleStore, itemStore, customerRepo, config.LetterheadConfig{}, hook.NewDispatcher(log))
}

func TestCreateSaleRetriesNumberOnConflict(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New()}
	item := &entity.Item{ID: uuid.New(), SellingPrice: decimal.NewFromInt(50), Quantity: 10}

	saleStore := &fakeSaleStore{failCreates: 1}
	svc := newSaleTestService(
		saleStore,
		&fakeItemStore{items: map[uuid.UUID]*entity.Item{item.ID: item}},
		&fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{customer.ID: customer}},
	)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: customer.ID,
		CreatedBy:  uuid.New(),
		SaleDate:   time.Now(),
		Lines:      []SaleLineInput{{ItemID: item.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saleStore.creates != 2 {
		t.Errorf("creates = %d, want 2 (one conflict, one success)", saleStore.creates)
	}
	want := fmt.Sprintf("SAL-%s-00002", time.Now().Format("20060102"))
	if sale.SaleNumber != want {
		t.Errorf("sale number = %q, want %q", sale.SaleNumber, want)
	}
	if got := sale.GrandTotal.StringFixed(2); got != "100.00" {
		t.Errorf("grand total = %s, want 100.00", got)
	}
}

func TestCreateSaleGivesUpAfterRepeatedConflicts(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New()}
	item := &entity.Item{ID: uuid.New(), SellingPrice: decimal.NewFromInt(10)}

	svc := newSaleTestService(
		&fakeSaleStore{failCreates: numberRetries},
		&fakeItemStore{items: map[uuid.UUID]*entity.Item{item.ID: item}},
		&fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{customer.ID: customer}},
	)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: customer.ID,
		SaleDate:   time.Now(),
		Lines:      []SaleLineInput{{ItemID: item.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected conflict error after exhausting retries")
	}
}

func TestCreateSaleUnknownCustomer(t *testing.T) {
	svc := newSaleTestService(&fakeSaleStore{}, &fakeItemStore{}, &fakeCustomerRepo{})

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: uuid.New(),
		SaleDate:   time.Now(),
		Lines:      []SaleLineInput{{ItemID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestTransitionStatusRejectsInvalidMove(t *testing.T) {
	sale := &entity.Sale{ID: uuid.New(), Status: enum.SaleStatusDraft}
	saleStore := &fakeSaleStore{sales: map[uuid.UUID]*entity.Sale{sale.ID: sale}}
	svc := newSaleTestService(saleStore, &fakeItemStore{}, &fakeCustomerRepo{})

	_, err := svc.TransitionStatus(context.Background(), sale.ID, uuid.New(), enum.SaleStatusDelivered)
	if err == nil {
		t.Fatal("expected conflict for draft -> delivered")
	}
	if saleStore.updated != nil {
		t.Error("rejected transition still persisted the sale")
	}
}

func TestTransitionConfirmChecksStock(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), Name: "Widget", Quantity: 1}
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: enum.SaleStatusDraft,
		Items:  []entity.SaleItem{{ItemID: item.ID, Quantity: 5}},
	}
	saleStore := &fakeSaleStore{sales: map[uuid.UUID]*entity.Sale{sale.ID: sale}}
	svc := newSaleTestService(
		saleStore,
		&fakeItemStore{items: map[uuid.UUID]*entity.Item{item.ID: item}},
		&fakeCustomerRepo{},
	)

	_, err := svc.TransitionStatus(context.Background(), sale.ID, uuid.New(), enum.SaleStatusConfirmed)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if item.Quantity != 1 {
		t.Errorf("stock changed to %d on failed confirm", item.Quantity)
	}
}

func TestTransitionConfirmDeductsStock(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), Name: "Widget", Quantity: 10}
	sale := &entity.Sale{
		ID:     uuid.New(),
		Status: enum.SaleStatusDraft,
		Items:  []entity.SaleItem{{ItemID: item.ID, Quantity: 4}},
	}
	saleStore := &fakeSaleStore{sales: map[uuid.UUID]*entity.Sale{sale.ID: sale}}
	svc := newSaleTestService(
		saleStore,
		&fakeItemStore{items: map[uuid.UUID]*entity.Item{item.ID: item}},
		&fakeCustomerRepo{},
	)

	updated, err := svc.TransitionStatus(context.Background(), sale.ID, uuid.New(), enum.SaleStatusConfirmed)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if updated.Status != enum.SaleStatusConfirmed {
		t.Errorf("status = %v, want confirmed", updated.Status)
	}
	if item.Quantity != 6 {
		t.Errorf("stock = %d, want 6", item.Quantity)
	}
}

func TestTransitionCancelRestocksWithReturnMovement(t *testing.T) {
	item := &entity.Item{ID: uuid.New(), Name: "Widget", Quantity: 6}
	sale := &entity.Sale{
		ID:         uuid.New(),
		SaleNumber: "SAL-20240315-00001",
		Status:     enum.SaleStatusConfirmed,
		Items:      []entity.SaleItem{{ItemID: item.ID, Quantity: 4}},
	}
	saleStore := &fakeSaleStore{sales: map[uuid.UUID]*entity.Sale{sale.ID: sale}}
	itemStore := &fakeItemStore{items: map[uuid.UUID]*entity.Item{item.ID: item}}
	svc := newSaleTestService(saleStore, itemStore, &fakeCustomerRepo{})

	updated, err := svc.TransitionStatus(context.Background(), sale.ID, uuid.New(), enum.SaleStatusCancelled)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if updated.Status != enum.SaleStatusCancelled {
		t.Errorf("status = %v, want cancelled", updated.Status)
	}
	if item.Quantity != 10 {
		t.Errorf("stock = %d, want 10", item.Quantity)
	}
	if len(itemStore.movements) != 1 {
		t.Fatalf("movements = %d, want 1", len(itemStore.movements))
	}
	movement := itemStore.movements[0]
	if movement.Type != enum.MovementTypeReturn {
		t.Errorf("movement type = %v, want return", movement.Type)
	}
	if movement.Reference != sale.SaleNumber {
		t.Errorf("movement reference = %q, want %q", movement.Reference, sale.SaleNumber)
	}
}

func TestUpdateSaleRejectsNonDraft(t *testing.T) {
	sale := &entity.Sale{ID: uuid.New(), Status: enum.SaleStatusConfirmed}
	saleStore := &fakeSaleStore{sales: map[uuid.UUID]*entity.Sale{sale.ID: sale}}
	svc := newSaleTestService(saleStore, &fakeItemStore{}, &fakeCustomerRepo{})

	notes := "changed"
	_, err := svc.UpdateSale(context.Background(), &UpdateSaleInput{ID: sale.ID, Notes: &notes})
	if err == nil {
		t.Fatal("expected conflict for editing a confirmed sale")
	}
}
