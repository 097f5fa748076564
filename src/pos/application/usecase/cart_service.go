package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"pos/src/pos/domain/entity"
	"pos/src/pos/domain/port"

	"github.com/google/uuid"
)

// CartService carritos en memoria por sesión, respaldados por el store durable
// Las mutaciones son sincrónicas y se aplican en orden de llegada bajo el lock;
// los chequeos de stock usan siempre el registro más recientemente sincronizado
// del catálogo, nunca el snapshot guardado al agregar el item
type CartService struct {
	catalog port.CatalogView
	store   port.CartStore // puede ser nil (durabilidad deshabilitada)

	mu    sync.Mutex
	carts map[string]*entity.Cart
}

// NewCartService crea el servicio de carritos
func NewCartService(catalog port.CatalogView, store port.CartStore) *CartService {
	return &CartService{
		catalog: catalog,
		store:   store,
		carts:   make(map[string]*entity.Cart),
	}
}

// Get retorna una copia del carrito de la sesión (rehidratado si hace falta)
func (s *CartService) Get(ctx context.Context, tenantID, sessionID string) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartFor(ctx, tenantID, sessionID).Copy()
}

// AddItem agrega una unidad del producto al carrito
// No-op si no hay stock o si ya está al tope del stock sincronizado
func (s *CartService) AddItem(ctx context.Context, tenantID, sessionID string, productID uuid.UUID) (*entity.Cart, error) {
	product, ok := s.catalog.Product(tenantID, productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	if cart.Add(product) {
		s.persist(ctx, cart)
	}
	return cart.Copy(), nil
}

// UpdateQuantity ajusta la cantidad de un item por delta contra el stock vivo
func (s *CartService) UpdateQuantity(ctx context.Context, tenantID, sessionID string, productID uuid.UUID, delta int) (*entity.Cart, error) {
	currentStock := 0
	if product, ok := s.catalog.Product(tenantID, productID); ok {
		currentStock = product.Stock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	if cart.UpdateQuantity(productID, delta, currentStock) {
		s.persist(ctx, cart)
	}
	return cart.Copy(), nil
}

// RemoveItem elimina el producto del carrito incondicionalmente
func (s *CartService) RemoveItem(ctx context.Context, tenantID, sessionID string, productID uuid.UUID) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	cart.Remove(productID)
	s.persist(ctx, cart)
	return cart.Copy()
}

// Clear vacía el carrito de la sesión
func (s *CartService) Clear(ctx context.Context, tenantID, sessionID string) *entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	cart.Clear()
	s.persist(ctx, cart)
	return cart.Copy()
}

// Snapshot retorna una copia de los items para el checkout
func (s *CartService) Snapshot(ctx context.Context, tenantID, sessionID string) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return items
}

// ClearCommitted vacía el carrito tras una venta commiteada y descarta
// el carrito persistido
func (s *CartService) ClearCommitted(ctx context.Context, tenantID, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(ctx, tenantID, sessionID)
	cart.Clear()
	if s.store != nil {
		if err := s.store.Delete(ctx, tenantID, sessionID); err != nil {
			log.Printf("⚠️  No se pudo borrar el carrito persistido %s/%s: %v", tenantID, sessionID, err)
		}
	}
}

// cartFor retorna el carrito vivo de la sesión, rehidratando del store
// durable la primera vez; debe llamarse con el lock tomado
func (s *CartService) cartFor(ctx context.Context, tenantID, sessionID string) *entity.Cart {
	key := tenantID + ":" + sessionID
	if cart, ok := s.carts[key]; ok {
		return cart
	}

	if s.store != nil {
		stored, err := s.store.Load(ctx, tenantID, sessionID)
		if err != nil {
			log.Printf("⚠️  No se pudo rehidratar el carrito %s/%s: %v", tenantID, sessionID, err)
		} else if stored != nil {
			s.carts[key] = stored
			return stored
		}
	}

	cart := entity.NewCart(tenantID, sessionID)
	s.carts[key] = cart
	return cart
}

// persist escribe el carrito al store durable; un fallo se loguea y no
// interrumpe la mutación (el estado autoritativo vive en memoria)
func (s *CartService) persist(ctx context.Context, cart *entity.Cart) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, cart); err != nil {
		log.Printf("⚠️  No se pudo persistir el carrito %s/%s: %v", cart.TenantID, cart.SessionID, err)
	}
}
