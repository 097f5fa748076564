package usecase

import (
	"context"
	"fmt"
	"sync"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
)

// fakeTenantRepo implementación en memoria de port.TenantRepository
type fakeTenantRepo struct {
	owners    map[string]string // operatorID → business name (puede ser "")
	employees map[string]string // email normalizado → tenantID
	err       error
}

func (f *fakeTenantRepo) GetBusinessName(_ context.Context, operatorID string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	name, found := f.owners[operatorID]
	return name, found, nil
}

func (f *fakeTenantRepo) FindTenantByEmployeeEmail(_ context.Context, email string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	tenantID, found := f.employees[email]
	return tenantID, found, nil
}

// fakeCatalog implementación en memoria de port.CatalogView
type fakeCatalog struct {
	mu           sync.Mutex
	products     map[uuid.UUID]*entity.Product
	settings     entity.Settings
	invalidated  []string
	employeeList []*entity.Employee
}

func newFakeCatalog(tenantID string) *fakeCatalog {
	return &fakeCatalog{
		products: make(map[uuid.UUID]*entity.Product),
		settings: entity.DefaultSettings(tenantID),
	}
}

func (f *fakeCatalog) addProduct(p *entity.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
}

func (f *fakeCatalog) Product(_ string, productID uuid.UUID) (*entity.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	return p, ok
}

func (f *fakeCatalog) Products(_ string) []*entity.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out
}

func (f *fakeCatalog) Employees(_ string) []*entity.Employee {
	return f.employeeList
}

func (f *fakeCatalog) Settings(_ string) entity.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

func (f *fakeCatalog) Invalidate(_ string, collection string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, collection)
}

// fakeSaleRepo simula la transacción atómica de finalización: todos los
// descuentos de stock y el write de la venta bajo un solo lock, o nada
type fakeSaleRepo struct {
	mu    sync.Mutex
	stock map[uuid.UUID]int
	sales []*entity.Sale
	err   error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{stock: make(map[uuid.UUID]int)}
}

func (f *fakeSaleRepo) FinalizeSale(_ context.Context, sale *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	// Validar todos los renglones antes de mutar: falla sin aplicación parcial
	for _, item := range sale.Items {
		if f.stock[item.ProductID] < item.Quantity {
			return fmt.Errorf("%w for product %s (requested %d)",
				entity.ErrInsufficientStock, item.ProductID, item.Quantity)
		}
	}
	for _, item := range sale.Items {
		f.stock[item.ProductID] -= item.Quantity
	}
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) saleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sales)
}

func (f *fakeSaleRepo) stockOf(productID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stock[productID]
}

// fakePublisher implementación en memoria de port.SalePublisher
type fakePublisher struct {
	mu        sync.Mutex
	published []*entity.Sale
	err       error
}

func (f *fakePublisher) PublishSaleCompleted(_ context.Context, sale *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, sale)
	return nil
}

func (f *fakePublisher) Close() error { return nil }
