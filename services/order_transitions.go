package services

import (
	"errors"
	"fmt"

	"fooddelivery/entity"

	"gorm.io/gorm"
)

// UpdateStatus overwrites the order status with the requested value. The
// workflow is deliberately permissive: any known status may be set on any
// order, matching the administrative surface this service exposes.
// TODO: decide whether transition legality should be enforced once the
// dispatch flow is nailed down; the status set lives in entity/order.go.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	if err := s.Repo.UpdateStatus(s.DB, orderID, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(orderID)
}
