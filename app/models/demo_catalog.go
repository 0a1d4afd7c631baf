package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Demo catalog content. SeedProducts is inserted once into an empty store;
// FallbackProduct is served when no store is reachable at all. Both the
// seeder CLI and the catalog service read from here so there is a single
// source of truth for the literals.

func strPtr(s string) *string { return &s }

// SeedProducts returns the fixed demo records inserted into an empty catalog.
func SeedProducts() []Product {
	return []Product{
		{
			Name:        "CTRL-Z Oversized Tee — Neon Grid",
			Description: "Heavyweight cotton tee with neon cyan glitch print.",
			Price:       49.0,
			Category:    "Unisex",
			Subcategory: strPtr("Tees"),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Images: []string{
				"https://images.unsplash.com/photo-1520975661595-6453be3f7070?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1548883354-94bcfe321cce?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1520974735194-6c0a6b4a37d1?q=80&w=1200&auto=format&fit=crop",
			},
			Stock: 120,
			Tags:  []string{"glitch", "oversized", "core"},
		},
		{
			Name:        "CTRL-Z Tech Cargo — Midnight",
			Description: "Water-resistant tech cargos with magnetic closures.",
			Price:       89.0,
			Category:    "Men",
			Subcategory: strPtr("Cargo Pants"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Images: []string{
				"https://images.unsplash.com/photo-1543087903-1ac2ec7aa8c5?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=1200&auto=format&fit=crop",
			},
			Stock: 60,
			Tags:  []string{"techwear", "cargo"},
		},
		{
			Name:        "CTRL-Z Cropped Hoodie — Crimson Pulse",
			Description: "Fleece cropped hoodie with crimson pulse embroidery.",
			Price:       79.0,
			Category:    "Women",
			Subcategory: strPtr("Hoodies"),
			Sizes:       []string{"XS", "S", "M", "L"},
			Images: []string{
				"https://images.unsplash.com/photo-1517649763962-0c623066013b?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1488188840666-e2308741a62f?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1520975661595-6453be3f7070?q=80&w=1200&auto=format&fit=crop",
			},
			Stock: 40,
			Tags:  []string{"cropped", "hoodie"},
		},
	}
}

// FallbackProduct returns the single static record served while the store is
// unreachable. The id is freshly generated per call, mirroring a
// store-assigned identifier; callers must not treat it as stable.
func FallbackProduct() Product {
	p := SeedProducts()[0]
	p.ID = primitive.NewObjectID()
	return p
}
