package models

// Product as stored by the backend. Brand, Category and IsOrdered are resolved
// per request from the fetched brand/category/order collections and are never
// written back.
type Product struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	BrandID     string  `json:"brandId"`
	CategoryID  string  `json:"categoryId"`
	Rating      int     `json:"rating"`

	Brand     Brand    `json:"-"`
	Category  Category `json:"-"`
	IsOrdered bool     `json:"-"`
}

// Brand carries IsChecked as view-local selection state for the store filters,
// not server data.
type Brand struct {
	ID        string `json:"id"`
	BrandName string `json:"brandName"`
	IsChecked bool   `json:"-"`
}

type Category struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
	IsChecked    bool   `json:"-"`
}
