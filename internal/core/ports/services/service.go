package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at registration time.
type ServiceContainer struct {
	GrowthDiscount GrowthDiscountSvc
	Transfer       TransferSvc
}
