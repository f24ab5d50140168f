package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vyanckus/food-delivery-api/internal/catalog"
)

// ProductChecker is the slice of catalog storage the order pipeline needs.
type ProductChecker interface {
	ProductExists(ctx context.Context, id int64) (bool, error)
}

type Service interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error)
}

type service struct {
	products ProductChecker
	phone    *PhoneRule
}

func NewService(products ProductChecker, phone *PhoneRule) Service {
	return &service{
		products: products,
		phone:    phone,
	}
}

// CreateOrder runs the validation rules in a fixed order and stops at the
// first violation. Nothing is persisted: a passing order only produces the
// confirmation response.
func (s *service) CreateOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	if err := s.validateCustomerName(req); err != nil {
		return nil, err
	}

	if err := s.validatePhoneNumber(req); err != nil {
		return nil, err
	}

	if err := s.validateItems(ctx, req); err != nil {
		return nil, err
	}

	orderRef, err := uuid.NewV4()
	if err != nil {
		log.Error().Err(err).Msg("service: failed to generate order reference")
	}

	log.Info().
		Stringer("order_ref", orderRef).
		Str("customer", req.CustomerName).
		Int("items", len(req.Items)).
		Msg("service: order accepted")

	return &OrderResponse{
		Success: true,
		Message: ConfirmationMessage,
	}, nil
}

func (s *service) validateCustomerName(req *OrderRequest) error {
	if isBlank(req.CustomerName) {
		log.Warn().Msg("service: order rejected, customer name is blank")
		return &InvalidOrderError{Reason: "missing customer name"}
	}

	return nil
}

func (s *service) validatePhoneNumber(req *OrderRequest) error {
	if isBlank(req.PhoneNumber) {
		log.Warn().Msg("service: order rejected, phone number is blank")
		return &InvalidOrderError{Reason: "missing phone number"}
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if !s.phone.Matches(phone) {
		log.Warn().Str("phone", phone).Msg("service: order rejected, phone number does not match the accepted format")
		return &InvalidOrderError{Reason: "invalid phone number"}
	}

	return nil
}

// validateItems checks presence first, then existence of every referenced
// product in sequence order. Quantity is accepted as-is and not validated.
func (s *service) validateItems(ctx context.Context, req *OrderRequest) error {
	if len(req.Items) == 0 {
		log.Warn().Msg("service: order rejected, no items")
		return &InvalidOrderError{Reason: "order cannot be empty"}
	}

	for _, item := range req.Items {
		exists, err := s.products.ProductExists(ctx, item.ProductID)
		if err != nil {
			log.Error().Err(err).Int64("product_id", item.ProductID).Msg("service: failed to check product existence in repository")
			return fmt.Errorf("service: failed to check product %d: %w", item.ProductID, err)
		}

		if !exists {
			log.Warn().Int64("product_id", item.ProductID).Msg("service: order rejected, product not found")
			return &catalog.ProductNotFoundError{ID: item.ProductID}
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
