package services

import (
	"github.com/SscSPs/money_ops/internal/core/ports"
	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
)

// NewContainer creates the service container with every service reporting to the same audit port.
func NewContainer(audit ports.MoneyAuditPort) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		GrowthDiscount: NewGrowthDiscountService(audit),
		Transfer:       NewTransferService(audit),
	}
}
