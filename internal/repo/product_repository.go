package repo

import (
	"errors"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

// ProductRepository defines read access to the storefront catalog. The
// catalog is static: there are no create/update/delete operations.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Search(q CatalogQuery) ([]models.Product, int, error)
}

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProductID is returned when the seed data carries the same
// product id twice.
var ErrDuplicateProductID = errors.New("duplicate product id")
