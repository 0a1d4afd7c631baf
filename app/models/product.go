package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultSizes is the size run substituted when a stored record carries none.
var DefaultSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Product is a catalog record as stored in the "product" collection. Fields
// other than name/description/price/category may be absent on externally
// inserted documents; defaults are applied by NewProductView, never here.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Subcategory *string            `bson:"subcategory,omitempty" json:"subcategory"`
	Sizes       []string           `bson:"sizes,omitempty" json:"sizes"`
	Images      []string           `bson:"images,omitempty" json:"images"`
	Stock       int                `bson:"stock,omitempty" json:"stock"`
	Tags        []string           `bson:"tags,omitempty" json:"tags"`
}

// ProductView is the externally visible product shape served to the
// storefront.
type ProductView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
}

// NewProductView maps a stored record to its external view. This is the one
// place read-time defaults are applied: an absent size run becomes
// DefaultSizes, absent images/tags become empty arrays (never null in JSON),
// and the object id is rendered as its hex string.
func NewProductView(p Product) ProductView {
	sizes := p.Sizes
	if sizes == nil {
		sizes = append([]string(nil), DefaultSizes...)
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return ProductView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Sizes:       sizes,
		Images:      images,
		Stock:       p.Stock,
		Tags:        tags,
	}
}
