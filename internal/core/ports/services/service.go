package services

// ServiceContainer holds instances of all application services. This is
// the main entry point for accessing service functionality and is used
// throughout the handlers.
type ServiceContainer struct {
	Token    TokenSvcFacade
	Auth     AuthSvcFacade
	User     UserSvcFacade
	Admin    AdminSvcFacade
	Customer CustomerSvcFacade
	Product  ProductSvcFacade
	Student  StudentSvcFacade
}
