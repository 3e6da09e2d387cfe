package catalogRepo

import "glowbook/models"

// Repository is the read-only directory of vendors, services and add-ons the
// booking engine draws from. The engine never writes through it.
type Repository interface {
	FindVendor(id string) (*models.Vendor, error)
	FindService(id string) (*models.Service, error)
	FindAddon(id string) (*models.Addon, error)
	ListServices() ([]models.Service, error)
}
