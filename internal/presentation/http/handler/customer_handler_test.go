package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primag/sales-api/internal/application/service"
	"github.com/primag/sales-api/internal/domain/entity"
	"github.com/primag/sales-api/internal/domain/enum"
	"github.com/primag/sales-api/internal/domain/repository"
)

type fakeCustomerStore struct {
	repository.CustomerRepository
	customers map[uuid.UUID]*entity.Customer
	deleted   []uuid.UUID
}

func (f *fakeCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerStore) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerStore) Create(ctx context.Context, customer *entity.Customer) error {
	customer.ID = uuid.New()
	return nil
}

func (f *fakeCustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAuditStore struct {
	repository.AuditLogRepository
	logs []*entity.AuditLog
}

func (f *fakeAuditStore) Create(ctx context.Context, log *entity.AuditLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func newCustomerTestRouter(store *fakeCustomerStore, audits *fakeAuditStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCustomerHandler(service.NewCustomerService(store), service.NewAuditService(audits))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})
	router.POST("/customers", h.Create)
	router.DELETE("/customers/:id", h.Delete)
	return router
}

func TestDeleteCustomerWritesOneAuditRow(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Acme Traders", Email: "acme@example.com"}
	store := &fakeCustomerStore{customers: map[uuid.UUID]*entity.Customer{customer.ID: customer}}
	audits := &fakeAuditStore{}
	router := newCustomerTestRouter(store, audits)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.ID.String(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if len(audits.logs) != 1 {
		t.Fatalf("audit rows = %d, want exactly 1", len(audits.logs))
	}
	row := audits.logs[0]
	if row.Action != enum.AuditActionDelete {
		t.Errorf("action = %v, want delete", row.Action)
	}
	if row.EntityType != "customer" {
		t.Errorf("entity type = %q, want customer", row.EntityType)
	}
	if row.EntityID != customer.ID.String() {
		t.Errorf("entity id = %q, want %q", row.EntityID, customer.ID)
	}
	if row.EntityLabel != customer.Name {
		t.Errorf("entity label = %q, want %q", row.EntityLabel, customer.Name)
	}
	if row.Description == "" {
		t.Error("description is empty")
	}
	if row.OldValues == nil {
		t.Error("delete row carries no old-value snapshot")
	}
}

func TestCreateCustomerWritesAuditRow(t *testing.T) {
	store := &fakeCustomerStore{customers: map[uuid.UUID]*entity.Customer{}}
	audits := &fakeAuditStore{}
	router := newCustomerTestRouter(store, audits)

	body := `{"name":"Acme Traders","email":"acme@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if len(audits.logs) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(audits.logs))
	}
	row := audits.logs[0]
	if row.Action != enum.AuditActionCreate {
		t.Errorf("action = %v, want create", row.Action)
	}
	if row.EntityType != "customer" {
		t.Errorf("entity type = %q, want customer", row.EntityType)
	}
	if row.NewValues == nil {
		t.Error("create row carries no new-value snapshot")
	}
}
