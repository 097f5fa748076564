package catalog

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"
	"pos/src/shared/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// listenChannel canal de NOTIFY de Postgres; payload "tenant_id:collection"
const listenChannel = "pos_catalog"

// Snapshot copia completa point-in-time de las tres vistas de un tenant
type Snapshot struct {
	TenantID  string
	Products  []*entity.Product
	Employees []*entity.Employee
	Settings  entity.Settings
}

// tenantView las tres vistas vivas de un tenant
// Cada refresh reemplaza la colección entera: los lectores ven el snapshot
// anterior completo o el nuevo completo, nunca uno parcial
type tenantView struct {
	products     []*entity.Product
	productIndex map[uuid.UUID]*entity.Product
	employees    []*entity.Employee
	settings     entity.Settings
	settingsSeen bool
}

type subscriber struct {
	tenantID string
	ch       chan Snapshot
}

// CatalogSync mantiene vistas read-mostly por tenant, actualizadas por
// notificaciones LISTEN/NOTIFY más un ticker de respaldo
// Errores de suscripción se loguean y no tumban la sesión: el último
// snapshot bueno queda visible hasta que llegue uno nuevo
type CatalogSync struct {
	productRepo  port.ProductRepository
	employeeRepo port.EmployeeRepository
	settingsRepo port.SettingsRepository

	mu      sync.RWMutex
	views   map[string]*tenantView
	subs    map[int]*subscriber
	nextSub int

	listener *pq.Listener
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCatalogSync crea el sincronizador de catálogo
func NewCatalogSync(
	productRepo port.ProductRepository,
	employeeRepo port.EmployeeRepository,
	settingsRepo port.SettingsRepository,
) *CatalogSync {
	return &CatalogSync{
		productRepo:  productRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		views:        make(map[string]*tenantView),
		subs:         make(map[int]*subscriber),
		stop:         make(chan struct{}),
	}
}

// Start establece la suscripción a Postgres y lanza el loop de refresh
// refreshEvery es el intervalo del ticker de respaldo por si se pierden
// notificaciones
func (c *CatalogSync) Start(dsn string, refreshEvery time.Duration) {
	c.listener = pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("⚠️  Evento de listener de catálogo: %v", err)
		}
	})

	if err := c.listener.Listen(listenChannel); err != nil {
		// No fatal: el ticker de respaldo sigue refrescando las vistas
		log.Printf("⚠️  No se pudo escuchar el canal %s: %v", listenChannel, err)
	} else {
		log.Printf("🔄 CatalogSync escuchando canal %s", listenChannel)
	}

	go c.loop(refreshEvery)
}

// Stop corta la suscripción y el loop de refresh
func (c *CatalogSync) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
		if c.listener != nil {
			c.listener.Close()
		}
	})
}

func (c *CatalogSync) loop(refreshEvery time.Duration) {
	ticker := time.NewTicker(refreshEvery)
	defer ticker.Stop()

	var notify chan *pq.Notification
	if c.listener != nil {
		notify = c.listener.Notify
	}

	for {
		select {
		case <-c.stop:
			return
		case n := <-notify:
			if n == nil {
				// Reconexión del listener: las vistas pueden estar viejas
				c.refreshAll()
				continue
			}
			tenantID, collection := parsePayload(n.Extra)
			if tenantID != "" {
				c.Invalidate(tenantID, collection)
			}
		case <-ticker.C:
			c.refreshAll()
		}
	}
}

// parsePayload separa "tenant_id:collection"; collection vacío = todas
func parsePayload(payload string) (tenantID, collection string) {
	parts := strings.SplitN(payload, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return payload, ""
}

// Product implementa port.CatalogView
func (c *CatalogSync) Product(tenantID string, productID uuid.UUID) (*entity.Product, bool) {
	c.ensure(tenantID)
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, ok := c.views[tenantID]
	if !ok {
		return nil, false
	}
	p, ok := view.productIndex[productID]
	return p, ok
}

// Products implementa port.CatalogView
func (c *CatalogSync) Products(tenantID string) []*entity.Product {
	c.ensure(tenantID)
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, ok := c.views[tenantID]
	if !ok {
		return nil
	}
	out := make([]*entity.Product, len(view.products))
	copy(out, view.products)
	return out
}

// Employees implementa port.CatalogView
func (c *CatalogSync) Employees(tenantID string) []*entity.Employee {
	c.ensure(tenantID)
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, ok := c.views[tenantID]
	if !ok {
		return nil
	}
	out := make([]*entity.Employee, len(view.employees))
	copy(out, view.employees)
	return out
}

// Settings implementa port.CatalogView
func (c *CatalogSync) Settings(tenantID string) entity.Settings {
	c.ensure(tenantID)
	c.mu.RLock()
	defer c.mu.RUnlock()

	view, ok := c.views[tenantID]
	if !ok {
		return entity.DefaultSettings(tenantID)
	}
	return view.settings
}

// Invalidate recarga una colección del tenant y notifica a los suscriptores
// collection vacío recarga las tres
func (c *CatalogSync) Invalidate(tenantID string, collection string) {
	c.ensure(tenantID)

	switch collection {
	case "products":
		c.refreshProducts(tenantID)
	case "employees":
		c.refreshEmployees(tenantID)
	case "settings":
		c.refreshSettings(tenantID)
	default:
		c.refreshProducts(tenantID)
		c.refreshEmployees(tenantID)
		c.refreshSettings(tenantID)
	}

	c.notifySubscribers(tenantID)
}

// Release desarma el scope de un tenant: limpia las tres vistas
// (se usa cuando la sesión pierde el scope o termina)
func (c *CatalogSync) Release(tenantID string) {
	c.mu.Lock()
	delete(c.views, tenantID)
	c.mu.Unlock()
	log.Printf("🔄 Scope de catálogo liberado para tenant %s", tenantID)
}

// Subscribe entrega snapshots completos del tenant a medida que cambian
// El canal tiene buffer 1 con descarte del snapshot pendiente: el consumidor
// siempre recibe el estado más nuevo disponible
// La suscripción no es rebobinable; el cancel devuelto es el teardown explícito
func (c *CatalogSync) Subscribe(tenantID string) (<-chan Snapshot, func()) {
	c.ensure(tenantID)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	sub := &subscriber{
		tenantID: tenantID,
		ch:       make(chan Snapshot, 1),
	}
	c.subs[id] = sub
	snapshot := c.snapshotLocked(tenantID)
	c.mu.Unlock()

	// Snapshot inicial para que el consumidor no arranque vacío
	sub.ch <- snapshot

	cancel := func() {
		c.mu.Lock()
		if s, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(s.ch)
		}
		c.mu.Unlock()
	}
	return sub.ch, cancel
}

func (c *CatalogSync) notifySubscribers(tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.snapshotLocked(tenantID)
	for _, sub := range c.subs {
		if sub.tenantID != tenantID {
			continue
		}
		// Descartar el snapshot pendiente si el consumidor va atrasado
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- snapshot
	}
}

// snapshotLocked arma un snapshot completo; requiere el lock tomado
func (c *CatalogSync) snapshotLocked(tenantID string) Snapshot {
	view, ok := c.views[tenantID]
	if !ok {
		return Snapshot{TenantID: tenantID, Settings: entity.DefaultSettings(tenantID)}
	}

	products := make([]*entity.Product, len(view.products))
	copy(products, view.products)
	employees := make([]*entity.Employee, len(view.employees))
	copy(employees, view.employees)

	return Snapshot{
		TenantID:  tenantID,
		Products:  products,
		Employees: employees,
		Settings:  view.settings,
	}
}

// ensure carga las tres vistas del tenant la primera vez que se lo toca
func (c *CatalogSync) ensure(tenantID string) {
	c.mu.RLock()
	_, ok := c.views[tenantID]
	c.mu.RUnlock()
	if ok {
		return
	}

	c.mu.Lock()
	if _, ok := c.views[tenantID]; !ok {
		c.views[tenantID] = &tenantView{
			productIndex: make(map[uuid.UUID]*entity.Product),
			settings:     entity.DefaultSettings(tenantID),
		}
	}
	c.mu.Unlock()

	c.refreshProducts(tenantID)
	c.refreshEmployees(tenantID)
	c.refreshSettings(tenantID)
}

func (c *CatalogSync) refreshAll() {
	c.mu.RLock()
	tenants := make([]string, 0, len(c.views))
	for tenantID := range c.views {
		tenants = append(tenants, tenantID)
	}
	c.mu.RUnlock()

	for _, tenantID := range tenants {
		c.refreshProducts(tenantID)
		c.refreshEmployees(tenantID)
		c.refreshSettings(tenantID)
		c.notifySubscribers(tenantID)
	}
}

func (c *CatalogSync) refreshProducts(tenantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := c.productRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		// La última vista buena queda visible hasta el próximo refresh
		log.Printf("⚠️  Error refrescando productos de %s: %v", tenantID, err)
		return
	}

	index := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	c.mu.Lock()
	if view, ok := c.views[tenantID]; ok {
		view.products = products
		view.productIndex = index
	}
	c.mu.Unlock()
	metrics.CatalogRefreshes.WithLabelValues("products").Inc()
}

func (c *CatalogSync) refreshEmployees(tenantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employees, err := c.employeeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		log.Printf("⚠️  Error refrescando empleados de %s: %v", tenantID, err)
		return
	}

	c.mu.Lock()
	if view, ok := c.views[tenantID]; ok {
		view.employees = employees
	}
	c.mu.Unlock()
	metrics.CatalogRefreshes.WithLabelValues("employees").Inc()
}

func (c *CatalogSync) refreshSettings(tenantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	settings, found, err := c.settingsRepo.Get(ctx, tenantID)
	if err != nil {
		log.Printf("⚠️  Error refrescando settings de %s: %v", tenantID, err)
		return
	}

	c.mu.Lock()
	if view, ok := c.views[tenantID]; ok {
		// Merge-on-read: una lectura sin fila persistida no pisa los últimos
		// settings conocidos de la vista (los writes pueden ser merges parciales)
		if found || !view.settingsSeen {
			view.settings = settings
			view.settingsSeen = found
		}
	}
	c.mu.Unlock()
	metrics.CatalogRefreshes.WithLabelValues("settings").Inc()
}
