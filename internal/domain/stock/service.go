package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// ErrInvalid wraps every validation failure so handlers can map it to a 400.
var ErrInvalid = errors.New("invalid stock entry")

// CreateStockRequest is the create payload. Quantity and location are
// pointers so an absent field is rejected instead of being read as a zero
// quantity at (0,0).
type CreateStockRequest struct {
	ItemName   string        `json:"item_name"`
	Quantity   *int          `json:"quantity"`
	Unit       string        `json:"unit"`
	Location   *geo.Location `json:"location"`
	ExpiryDate *time.Time    `json:"expiry_date"`
}

type Service struct {
	stocks Repository
	now    func() time.Time
}

func NewService(stocks Repository) *Service {
	return &Service{stocks: stocks, now: time.Now}
}

// CreateStock validates the entry, derives its status from the quantity and
// stamps last_updated. The stored status is a snapshot and is never
// recomputed on read.
func (s *Service) CreateStock(ctx context.Context, req *CreateStockRequest) (*MedicalStock, error) {
	if req.ItemName == "" {
		return nil, fmt.Errorf("%w: item_name is required", ErrInvalid)
	}
	if req.Unit == "" {
		return nil, fmt.Errorf("%w: unit is required", ErrInvalid)
	}
	if req.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity is required", ErrInvalid)
	}
	if *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalid)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if err := req.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	m := &MedicalStock{
		ID:          uuid.New(),
		ItemName:    req.ItemName,
		Quantity:    *req.Quantity,
		Unit:        req.Unit,
		Status:      Classify(*req.Quantity),
		Location:    *req.Location,
		ExpiryDate:  req.ExpiryDate,
		LastUpdated: s.now().UTC(),
	}

	if err := s.stocks.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListStocks(ctx context.Context, limit int) ([]*MedicalStock, error) {
	return s.stocks.List(ctx, limit)
}
