package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos/src/pos/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo implementación en memoria de port.ProductRepository
type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	calls    int
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Restock(_ context.Context, _ string, productID uuid.UUID, quantity int) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == productID {
			p.Stock += quantity
			return p, nil
		}
	}
	return nil, entity.ErrProductNotFound
}

func (f *fakeProductRepo) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeEmployeeRepo implementación en memoria de port.EmployeeRepository
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []*entity.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees = append(f.employees, employee)
	return nil
}

func (f *fakeEmployeeRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeSettingsRepo implementación en memoria de port.SettingsRepository
type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings entity.Settings
	found    bool
}

func (f *fakeSettingsRepo) Get(_ context.Context, tenantID string) (entity.Settings, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.found {
		return entity.DefaultSettings(tenantID), false, nil
	}
	return f.settings, true, nil
}

func (f *fakeSettingsRepo) ApplyPatch(_ context.Context, tenantID string, patch entity.SettingsPatch) (entity.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.found {
		f.settings = entity.DefaultSettings(tenantID)
	}
	f.settings = f.settings.Apply(patch)
	f.found = true
	return f.settings, nil
}

func newTestSync() (*CatalogSync, *fakeProductRepo, *fakeEmployeeRepo, *fakeSettingsRepo) {
	productRepo := &fakeProductRepo{}
	employeeRepo := &fakeEmployeeRepo{}
	settingsRepo := &fakeSettingsRepo{}
	return NewCatalogSync(productRepo, employeeRepo, settingsRepo), productRepo, employeeRepo, settingsRepo
}

func syncTestProduct(tenantID, name string, stock int) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     name,
		Price:    decimal.RequireFromString("2.00"),
		Stock:    stock,
	}
}

func TestCatalogSyncLazyFirstLoad(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	product := syncTestProduct("tenant-1", "Cafe", 7)
	require.NoError(t, productRepo.Create(context.Background(), product))

	got, ok := cs.Product("tenant-1", product.ID)

	require.True(t, ok)
	assert.Equal(t, "Cafe", got.Name)
	assert.Equal(t, 7, got.Stock)
	assert.Len(t, cs.Products("tenant-1"), 1)
}

func TestCatalogSyncTenantsAreIsolated(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	p1 := syncTestProduct("tenant-1", "Cafe", 7)
	p2 := syncTestProduct("tenant-2", "Pan", 3)
	require.NoError(t, productRepo.Create(context.Background(), p1))
	require.NoError(t, productRepo.Create(context.Background(), p2))

	assert.Len(t, cs.Products("tenant-1"), 1)
	assert.Len(t, cs.Products("tenant-2"), 1)

	_, ok := cs.Product("tenant-1", p2.ID)
	assert.False(t, ok)
}

func TestCatalogSyncInvalidateRefreshes(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	first := syncTestProduct("tenant-1", "Cafe", 7)
	require.NoError(t, productRepo.Create(context.Background(), first))
	require.Len(t, cs.Products("tenant-1"), 1)

	// Write local nuevo: la vista no lo ve hasta el invalidate
	second := syncTestProduct("tenant-1", "Pan", 3)
	require.NoError(t, productRepo.Create(context.Background(), second))
	require.Len(t, cs.Products("tenant-1"), 1)

	cs.Invalidate("tenant-1", "products")

	assert.Len(t, cs.Products("tenant-1"), 2)
}

func TestCatalogSyncSettingsDefaultsAndRetention(t *testing.T) {
	cs, _, _, settingsRepo := newTestSync()

	// Sin fila persistida: defaults
	settings := cs.Settings("tenant-1")
	assert.Equal(t, "USD", settings.Currency)
	assert.True(t, settings.TaxRate.Equal(decimal.NewFromInt(8)))

	// Se persiste una tasa distinta
	rate := decimal.NewFromInt(16)
	_, err := settingsRepo.ApplyPatch(context.Background(), "tenant-1", entity.SettingsPatch{TaxRate: &rate})
	require.NoError(t, err)
	cs.Invalidate("tenant-1", "settings")
	assert.True(t, cs.Settings("tenant-1").TaxRate.Equal(rate))

	// Una lectura sin fila (found=false) no pisa el último valor conocido
	settingsRepo.mu.Lock()
	settingsRepo.found = false
	settingsRepo.mu.Unlock()
	cs.Invalidate("tenant-1", "settings")
	assert.True(t, cs.Settings("tenant-1").TaxRate.Equal(rate))
}

func TestCatalogSyncRelease(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	product := syncTestProduct("tenant-1", "Cafe", 7)
	require.NoError(t, productRepo.Create(context.Background(), product))

	require.Len(t, cs.Products("tenant-1"), 1)
	callsBefore := productRepo.listCalls()

	cs.Release("tenant-1")

	// El próximo acceso recarga las vistas de cero
	require.Len(t, cs.Products("tenant-1"), 1)
	assert.Greater(t, productRepo.listCalls(), callsBefore)
}

func TestCatalogSyncSubscribe(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	product := syncTestProduct("tenant-1", "Cafe", 7)
	require.NoError(t, productRepo.Create(context.Background(), product))

	ch, cancel := cs.Subscribe("tenant-1")
	defer cancel()

	// Snapshot inicial para que el consumidor no arranque vacío
	snapshot := receiveSnapshot(t, ch)
	assert.Len(t, snapshot.Products, 1)

	second := syncTestProduct("tenant-1", "Pan", 3)
	require.NoError(t, productRepo.Create(context.Background(), second))
	cs.Invalidate("tenant-1", "products")

	snapshot = receiveSnapshot(t, ch)
	assert.Len(t, snapshot.Products, 2)
}

// Con el consumidor atrasado se descarta el snapshot pendiente:
// siempre se entrega el estado más nuevo disponible
func TestCatalogSyncSubscribeDropsStaleSnapshot(t *testing.T) {
	cs, productRepo, _, _ := newTestSync()
	require.NoError(t, productRepo.Create(context.Background(), syncTestProduct("tenant-1", "Cafe", 7)))

	ch, cancel := cs.Subscribe("tenant-1")
	defer cancel()

	// No leer el snapshot inicial; generar dos actualizaciones seguidas
	require.NoError(t, productRepo.Create(context.Background(), syncTestProduct("tenant-1", "Pan", 3)))
	cs.Invalidate("tenant-1", "products")
	require.NoError(t, productRepo.Create(context.Background(), syncTestProduct("tenant-1", "Leche", 2)))
	cs.Invalidate("tenant-1", "products")

	snapshot := receiveSnapshot(t, ch)
	assert.Len(t, snapshot.Products, 3)
}

func TestCatalogSyncSubscribeCancelClosesChannel(t *testing.T) {
	cs, _, _, _ := newTestSync()

	ch, cancel := cs.Subscribe("tenant-1")
	receiveSnapshot(t, ch)
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Cancel repetido es inocuo
	cancel()
}

func receiveSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snapshot := <-ch:
		return snapshot
	case <-time.After(time.Second):
		t.Fatal("no llegó ningún snapshot")
		return Snapshot{}
	}
}
