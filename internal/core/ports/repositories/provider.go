package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	ProductRepo   ProductRepository
	CustomerRepo  CustomerRepository
	SaleRepo      SaleRepository
	GuestSaleRepo GuestSaleRepository
	BillingRepo   BillingRepository
	ReportingRepo ReportingRepository
}
