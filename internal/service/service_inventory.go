package service

import (
	"context"
	"time"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

// inventoryService is the concrete implementation of InventoryService.
// All durable state lives in the SweetRepository; the service itself holds
// no mutable state and is safe for concurrent use.
type inventoryService struct {
	sweetRepository store.SweetRepository
	logger          *logger.Logger
}

// NewInventoryService constructs an InventoryService backed by the given
// SweetRepository.
func NewInventoryService(sweetRepository store.SweetRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		sweetRepository: sweetRepository,
		logger:          logger,
	}
}

// List returns the whole catalog, newest-created first.
func (s *inventoryService) List(ctx context.Context) ([]models.Sweet, error) {
	return s.sweetRepository.ListSweets(ctx)
}

// Search returns the sweets matching the conjunction of all supplied
// filters. An empty filter is equivalent to List.
func (s *inventoryService) Search(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	return s.sweetRepository.SearchSweets(ctx, filter)
}

// Create persists a new catalog entry. Quantity defaults to zero when
// unspecified; field constraints have been validated at the API boundary.
func (s *inventoryService) Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
	sweet := models.Sweet{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	if req.Quantity != nil {
		sweet.Quantity = *req.Quantity
	}

	return s.sweetRepository.CreateSweet(ctx, sweet)
}

// Update applies a merge-patch to an existing sweet: only the supplied
// fields are overwritten. Returns store.ErrSweetNotFound if the id does
// not exist.
func (s *inventoryService) Update(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error) {
	return s.sweetRepository.UpdateSweet(ctx, id, req.Patch())
}

// Delete removes a sweet from the catalog.
// Returns store.ErrSweetNotFound if the id does not exist.
func (s *inventoryService) Delete(ctx context.Context, id int64) error {
	return s.sweetRepository.DeleteSweet(ctx, id)
}

// Purchase decrements the stock of a sweet by quantity.
//
// The decrement is a single conditional statement in the store, so a
// request exactly equal to current stock succeeds and leaves quantity at
// zero, while a request exceeding stock fails entirely with
// store.ErrInsufficientStock and changes nothing — even under concurrent
// purchases of the same sweet.
func (s *inventoryService) Purchase(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	if quantity <= 0 {
		return models.Sweet{}, ErrInvalidQuantity
	}

	return s.sweetRepository.DecrementQuantity(ctx, id, quantity)
}

// Restock increments the stock of a sweet by quantity. The increment is
// unbounded; the admin gate at the HTTP layer is the only restriction.
func (s *inventoryService) Restock(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	if quantity <= 0 {
		return models.Sweet{}, ErrInvalidQuantity
	}

	return s.sweetRepository.IncrementQuantity(ctx, id, quantity)
}
