package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

func boolPtr(b bool) *bool { return &b }

// DefaultProducts returns the built-in catalog seed. A deployment can
// replace it with a JSON file via LoadProductsFile.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Saucisson sec artisanal", Slug: "saucisson-sec-artisanal", Description: "Saucisson sec affiné, recette maison au poivre noir.", Category: models.CategoryMeats, Price: 8.5, Image: "/assets/images/products/saucisson-sec.jpg", Popularity: 87},
		{ID: 2, Name: "Jambon fumé de campagne", Slug: "jambon-fume-de-campagne", Description: "Jambon fumé lentement au bois de hêtre, tranché à la demande.", Category: models.CategoryMeats, Price: 12, Image: "/assets/images/products/jambon-fume.jpg", Popularity: 74},
		{ID: 3, Name: "Chorizo doux", Slug: "chorizo-doux", Description: "Chorizo doux au paprika, idéal pour les planches apéritives.", Category: models.CategoryMeats, Price: 7, Image: "/assets/images/products/chorizo-doux.jpg", Popularity: 61},
		{ID: 4, Name: "Saucisse de porc fraîche", Slug: "saucisse-de-porc-fraiche", Description: "Saucisse fraîche préparée chaque matin par notre boucher.", Category: models.CategoryMeats, Price: 3, Image: "/assets/images/products/saucisse-fraiche.jpg", Popularity: 58},
		{ID: 5, Name: "Jus de gingembre", Slug: "jus-de-gingembre", Description: "Jus de gingembre frais pressé, sans sucre ajouté.", Category: models.CategoryNaturalBeverages, Price: 2.5, Image: "/assets/images/products/jus-gingembre.jpg", Popularity: 92},
		{ID: 6, Name: "Jus de bissap", Slug: "jus-de-bissap", Description: "Infusion d'hibiscus maison, servie bien fraîche.", Category: models.CategoryNaturalBeverages, Price: 2, Image: "/assets/images/products/jus-bissap.jpg", Popularity: 80},
		{ID: 7, Name: "Jus de tamarin", Slug: "jus-de-tamarin", Description: "Jus de tamarin naturel, légèrement acidulé.", Category: models.CategoryNaturalBeverages, Price: 2, Image: "/assets/images/products/jus-tamarin.jpg", InStock: boolPtr(false), Popularity: 45},
		{ID: 8, Name: "Miel de forêt", Slug: "miel-de-foret", Description: "Miel récolté en forêt, texture crémeuse.", Category: models.CategoryOtherProducts, Price: 6, Image: "/assets/images/products/miel-foret.jpg", Popularity: 66},
		{ID: 9, Name: "Fromage de chèvre affiné", Slug: "fromage-de-chevre-affine", Description: "Fromage de chèvre affiné trois semaines en cave.", Category: models.CategoryOtherProducts, Price: 5.5, Image: "/assets/images/products/fromage-chevre.jpg", Popularity: 71},
		{ID: 10, Name: "Huile d'arachide artisanale", Slug: "huile-d-arachide-artisanale", Description: "Huile d'arachide pressée à froid, bouteille d'un litre.", Category: models.CategoryOtherProducts, Price: 4, Image: "/assets/images/products/huile-arachide.jpg", Popularity: 39},
		{ID: 11, Name: "Vin Baron Rouge", Slug: "vin-baron-rouge", Description: "Vin rouge de table, corps souple et fruité.", Category: models.CategoryRedWines, Price: 12, Image: "/assets/images/products/vin-baron.jpg", Popularity: 84},
		{ID: 12, Name: "Vin rouge Château Kivu", Slug: "vin-rouge-chateau-kivu", Description: "Cuvée rouge charpentée, élevée en fût.", Category: models.CategoryRedWines, Price: 18, Image: "/assets/images/products/chateau-kivu.jpg", Popularity: 52},
		{ID: 13, Name: "Vin rouge réserve du patron", Slug: "vin-rouge-reserve-du-patron", Description: "La réserve du patron, quantités limitées.", Category: models.CategoryRedWines, Price: 25, Image: "/assets/images/products/reserve-patron.jpg", InStock: boolPtr(false), Popularity: 48},
	}
}

// LoadProductsFile reads a catalog seed from a JSON array and validates each
// row. Invalid rows fail the whole load; a storefront with a half-loaded
// catalog is worse than one that refuses to start.
func LoadProductsFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse products file: %w", err)
	}

	for i, p := range products {
		if err := validateSeedProduct(p); err != nil {
			return nil, fmt.Errorf("product %d (index %d): %w", p.ID, i, err)
		}
	}
	return products, nil
}

func validateSeedProduct(p models.Product) error {
	if p.ID <= 0 {
		return fmt.Errorf("id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("negative price")
	}
	if p.Popularity < 0 {
		return fmt.Errorf("negative popularity")
	}
	return nil
}
