package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/config"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

type fakeReceiptStore struct {
	repository.ReceiptRepository
	receipts map[uuid.UUID]*entity.Receipt
	byTx     map[uuid.UUID]*entity.Receipt
	updated  *entity.Receipt
}

func (f *fakeReceiptStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptStore) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	return f.byTx[transactionID], nil
}

func (f *fakeReceiptStore) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	return int64(len(f.byTx)), nil
}

func (f *fakeReceiptStore) Create(ctx context.Context, receipt *entity.Receipt) error {
	receipt.ID = uuid.New()
	if f.byTx == nil {
		f.byTx = make(map[uuid.UUID]*entity.Receipt)
	}
	f.byTx[receipt.TransactionID] = receipt
	return nil
}

func (f *fakeReceiptStore) Update(ctx context.Context, receipt *entity.Receipt) error {
	f.updated = receipt
	return nil
}

type fakeTransactionStore struct {
	repository.TransactionRepository
	transactions map[uuid.UUID]*entity.Transaction
}

func (f *fakeTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return f.transactions[id], nil
}

func newReceiptTestService(receiptStore *fakeReceiptStore, txStore *fakeTransactionStore) *ReceiptService {
	return NewReceiptService(receiptStore, txStore, config.LetterheadConfig{}, nil)
}

func TestCreateReceiptMirrorsTransactionTotal(t *testing.T) {
	tx := &entity.Transaction{ID: uuid.New(), TotalAmount: decimal.RequireFromString("1180.00")}
	svc := newReceiptTestService(
		&fakeReceiptStore{},
		&fakeTransactionStore{transactions: map[uuid.UUID]*entity.Transaction{tx.ID: tx}},
	)

	receipt, err := svc.CreateReceipt(context.Background(), tx.ID, uuid.New(), "paid in full")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !receipt.Amount.Equal(tx.TotalAmount) {
		t.Errorf("amount = %s, want %s", receipt.Amount, tx.TotalAmount)
	}
	if receipt.Status != enum.ReceiptStatusDraft {
		t.Errorf("status = %v, want draft", receipt.Status)
	}
	if receipt.ReceiptNumber == "" {
		t.Error("receipt number not assigned")
	}
}

func TestCreateReceiptRejectsSecondForSameTransaction(t *testing.T) {
	tx := &entity.Transaction{ID: uuid.New(), TotalAmount: decimal.NewFromInt(100)}
	svc := newReceiptTestService(
		&fakeReceiptStore{},
		&fakeTransactionStore{transactions: map[uuid.UUID]*entity.Transaction{tx.ID: tx}},
	)

	if _, err := svc.CreateReceipt(context.Background(), tx.ID, uuid.New(), ""); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateReceipt(context.Background(), tx.ID, uuid.New(), ""); err == nil {
		t.Fatal("expected conflict creating a second receipt")
	}
}

func TestIssueReceiptStampsDate(t *testing.T) {
	receipt := &entity.Receipt{ID: uuid.New(), Status: enum.ReceiptStatusDraft}
	store := &fakeReceiptStore{receipts: map[uuid.UUID]*entity.Receipt{receipt.ID: receipt}}
	svc := newReceiptTestService(store, &fakeTransactionStore{})

	issued, err := svc.IssueReceipt(context.Background(), receipt.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if issued.Status != enum.ReceiptStatusIssued {
		t.Errorf("status = %v, want issued", issued.Status)
	}
	if issued.IssuedDate == nil {
		t.Error("issued date not stamped")
	}
}

func TestIssueReceiptRejectsNonDraft(t *testing.T) {
	receipt := &entity.Receipt{ID: uuid.New(), Status: enum.ReceiptStatusCancelled}
	store := &fakeReceiptStore{receipts: map[uuid.UUID]*entity.Receipt{receipt.ID: receipt}}
	svc := newReceiptTestService(store, &fakeTransactionStore{})

	if _, err := svc.IssueReceipt(context.Background(), receipt.ID); err == nil {
		t.Fatal("expected conflict issuing a cancelled receipt")
	}
}
