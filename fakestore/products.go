package fakestore

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int     `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
	Rating      float64 `json:"rating"`
	IsFeatured  bool    `json:"isFeatured"`
}

const allProductsCategory = "All Products"

// DefaultProducts returns the catalog that the contract tests expect: 15 products, 3 of them in
// the "Earring" category.
func DefaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Royal Gold Jhumkas", Price: 12999, Category: "Earring", InStock: true, Rating: 4.8, IsFeatured: true},
		{ID: "2", Name: "Elegant Stud Earrings", Price: 8999, Category: "Earring", InStock: true, Rating: 4.6},
		{ID: "3", Name: "Modern Drop Earrings", Price: 10499, Category: "Earring", InStock: true, Rating: 4.7},
		{ID: "4", Name: "Bridal Kundan Nath", Price: 15999, Category: "Traditional Nath", InStock: true, Rating: 4.9, IsFeatured: true},
		{ID: "5", Name: "Traditional Gold Nath", Price: 11999, Category: "Traditional Nath", InStock: true, Rating: 4.7},
		{ID: "6", Name: "Royal Pearl Nath", Price: 13499, Category: "Traditional Nath", InStock: true, Rating: 4.8},
		{ID: "7", Name: "Classic Gold Mangalsutra", Price: 24999, Category: "Mangalsutra", InStock: true, Rating: 4.9, IsFeatured: true},
		{ID: "8", Name: "Modern Diamond Mangalsutra", Price: 34999, Category: "Mangalsutra", InStock: true, Rating: 4.8},
		{ID: "9", Name: "Delicate Chain Mangalsutra", Price: 18999, Category: "Mangalsutra", InStock: true, Rating: 4.6},
		{ID: "10", Name: "Bridal Complete Set", Price: 89999, Category: "Jewellery Set", InStock: true, Rating: 5.0, IsFeatured: true},
		{ID: "11", Name: "Festive Jewellery Set", Price: 45999, Category: "Jewellery Set", InStock: true, Rating: 4.7},
		{ID: "12", Name: "Royal Wedding Set", Price: 67999, Category: "Jewellery Set", InStock: true, Rating: 4.9},
		{ID: "13", Name: "Embroidered Potli Bag", Price: 2999, Category: "Embroidery", InStock: true, Rating: 4.5},
		{ID: "14", Name: "Embroidered Hair Accessories", Price: 1999, Category: "Embroidery", InStock: true, Rating: 4.4},
		{ID: "15", Name: "Designer Embroidered Bracelet", Price: 3499, Category: "Embroidery", InStock: true, Rating: 4.6},
	}
}
