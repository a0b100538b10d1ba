// Package catalog holds the pure derived-state functions behind the product
// and store views: id lookups with sentinel fallbacks, search/brand filtering,
// checkbox-intersection visibility, order partitioning and the shared sort.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"storefront/internal/models"
)

type SortOrder string

const (
	Ascending  SortOrder = "ASC"
	Descending SortOrder = "DESC"
)

// Sortable catalog columns.
const (
	ColumnProductName = "productName"
	ColumnPrice       = "price"
	ColumnBrand       = "brand"
	ColumnCategory    = "category"
	ColumnRating      = "rating"
)

// BrandByID resolves a brand id against the fetched brand list. A dangling id
// degrades to the "Unknown Brand" sentinel, never an error.
func BrandByID(brands []models.Brand, id string) models.Brand {
	for _, b := range brands {
		if b.ID == id {
			return b
		}
	}
	return models.Brand{BrandName: "Unknown Brand"}
}

// CategoryByID resolves a category id, falling back to the "Unknown Category"
// sentinel on a miss.
func CategoryByID(categories []models.Category, id string) models.Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return models.Category{CategoryName: "Unknown Category"}
}

func ProductByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Enrich resolves each product's brand and category and clears any ordered
// flag. The input slice is left untouched.
func Enrich(products []models.Product, brands []models.Brand, categories []models.Category) []models.Product {
	enriched := make([]models.Product, len(products))
	for i, p := range products {
		p.Brand = BrandByID(brands, p.BrandID)
		p.Category = CategoryByID(categories, p.CategoryID)
		p.IsOrdered = false
		enriched[i] = p
	}
	return enriched
}

// Filter keeps products whose name contains the search text (case-insensitive)
// and, when brandName is non-empty, whose resolved brand name equals it.
func Filter(products []models.Product, search, brandName string) []models.Product {
	needle := strings.ToLower(search)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.ProductName), needle) {
			continue
		}
		if brandName != "" && p.Brand.BrandName != brandName {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Visible returns the intersection of the two independent checkbox groups:
// products whose category id and brand id are both checked.
func Visible(products []models.Product, checkedBrandIDs, checkedCategoryIDs map[string]bool) []models.Product {
	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if checkedCategoryIDs[p.CategoryID] && checkedBrandIDs[p.BrandID] {
			visible = append(visible, p)
		}
	}
	return visible
}

// SortedCopy orders products by the given column without mutating the input.
// Column values are compared as lowercase strings, numerically when both sides
// parse as numbers. The descending sequence is the exact reverse of the
// ascending one.
func SortedCopy(products []models.Product, column string, order SortOrder) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		return compareValues(sortKey(sorted[i], column), sortKey(sorted[j], column)) < 0
	})

	if order == Descending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}

func sortKey(p models.Product, column string) string {
	switch column {
	case ColumnPrice:
		return strconv.FormatFloat(p.Price, 'f', -1, 64)
	case ColumnBrand:
		return p.Brand.BrandName
	case ColumnCategory:
		return p.Category.CategoryName
	case ColumnRating:
		return strconv.Itoa(p.Rating)
	default:
		return p.ProductName
	}
}

func compareValues(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	numA, errA := strconv.ParseFloat(a, 64)
	numB, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case numA < numB:
			return -1
		case numA > numB:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// PreviousOrders keeps orders whose payment is completed.
func PreviousOrders(orders []models.Order) []models.Order {
	previous := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsPaymentCompleted {
			previous = append(previous, o)
		}
	}
	return previous
}

// Cart keeps orders whose payment is still pending.
func Cart(orders []models.Order) []models.Order {
	cart := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !o.IsPaymentCompleted {
			cart = append(cart, o)
		}
	}
	return cart
}

// Stars reports how many filled and empty icons a rating renders as, clamped
// to the 0..5 range so out-of-range data cannot produce a negative row.
func Stars(rating int) (filled, empty int) {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return rating, 5 - rating
}
