package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bar-bike/models"
)

// CartService keeps shopping carts in process memory. Carts idle for longer
// than ttl are dropped the next time a cart is created.
type CartService struct {
	productRepo ProductStore
	ttl         time.Duration
	now         func() time.Time

	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartService(productRepo ProductStore, ttl time.Duration) *CartService {
	return &CartService{
		productRepo: productRepo,
		ttl:         ttl,
		now:         time.Now,
		carts:       map[string]*models.Cart{},
	}
}

func (s *CartService) Create() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	cart := &models.Cart{
		ID:        uuid.NewString(),
		Items:     []models.CartItem{},
		UpdatedAt: s.now(),
	}
	s.carts[cart.ID] = cart
	return cart.Summary()
}

func (s *CartService) Get(id string) (models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(id)
	if err != nil {
		return models.CartSummary{}, err
	}
	return cart.Summary(), nil
}

// AddProduct looks the product up in the catalog and adds one unit of the
// current record to the cart.
func (s *CartService) AddProduct(ctx context.Context, id, productID string) (models.CartSummary, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return models.CartSummary{}, err
	}

	return s.mutate(id, func(cart *models.Cart) {
		cart.Add(*product)
	})
}

func (s *CartService) UpdateQuantity(id, productID string, delta int) (models.CartSummary, error) {
	return s.mutate(id, func(cart *models.Cart) {
		cart.UpdateQuantity(productID, delta)
	})
}

func (s *CartService) Remove(id, productID string) (models.CartSummary, error) {
	return s.mutate(id, func(cart *models.Cart) {
		cart.Remove(productID)
	})
}

func (s *CartService) Clear(id string) (models.CartSummary, error) {
	return s.mutate(id, func(cart *models.Cart) {
		cart.Clear()
	})
}

// Snapshot returns a detached copy of the cart for checkout.
func (s *CartService) Snapshot(id string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(id)
	if err != nil {
		return models.Cart{}, err
	}
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return models.Cart{ID: cart.ID, Items: items, UpdatedAt: cart.UpdatedAt}, nil
}

func (s *CartService) mutate(id string, fn func(cart *models.Cart)) (models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartLocked(id)
	if err != nil {
		return models.CartSummary{}, err
	}
	fn(cart)
	cart.UpdatedAt = s.now()
	return cart.Summary(), nil
}

func (s *CartService) cartLocked(id string) (*models.Cart, error) {
	cart, ok := s.carts[id]
	if !ok || s.expired(cart) {
		delete(s.carts, id)
		return nil, ErrCartNotFound
	}
	return cart, nil
}

func (s *CartService) expired(cart *models.Cart) bool {
	return s.ttl > 0 && s.now().Sub(cart.UpdatedAt) > s.ttl
}

func (s *CartService) sweepLocked() {
	for id, cart := range s.carts {
		if s.expired(cart) {
			delete(s.carts, id)
		}
	}
}
