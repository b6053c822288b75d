package services

import (
	portsrepo "github.com/latadairy/dairy_backend/internal/core/ports/repositories"
	portssvc "github.com/latadairy/dairy_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, emailSender portssvc.EmailSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.CustomerRepo)
	container.GuestSale = NewGuestSaleService(repos.GuestSaleRepo)
	container.Billing = NewBillingService(repos.BillingRepo, repos.SaleRepo, repos.CustomerRepo, emailSender)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Email = NewEmailService(emailSender)

	return container
}

// Compile-time checks that each service satisfies its facade.
var (
	_ portssvc.ProductSvcFacade   = (*ProductService)(nil)
	_ portssvc.CustomerSvcFacade  = (*CustomerService)(nil)
	_ portssvc.SaleSvcFacade      = (*SaleService)(nil)
	_ portssvc.GuestSaleSvcFacade = (*GuestSaleService)(nil)
	_ portssvc.BillingSvcFacade   = (*BillingService)(nil)
	_ portssvc.ReportingSvcFacade = (*ReportingService)(nil)
	_ portssvc.EmailSvcFacade     = (*EmailService)(nil)
)
