package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrlz-wear/ctrlz-api/app/models"
)

func TestNewProductView_AppliesDefaults(t *testing.T) {
	// A bare record, as an external writer might insert it: no sizes, images,
	// stock or tags at all.
	p := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        "Plain Tee",
		Description: "Just a tee.",
		Price:       19.0,
		Category:    "Unisex",
	}

	v := models.NewProductView(p)

	assert.Equal(t, p.ID.Hex(), v.ID)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL", "XXL"}, v.Sizes)
	assert.Equal(t, []string{}, v.Images)
	assert.Equal(t, []string{}, v.Tags)
	assert.Equal(t, 0, v.Stock)
	assert.Nil(t, v.Subcategory)
}

func TestNewProductView_PresentEmptySizesStayEmpty(t *testing.T) {
	// A present-but-empty size list is not the same as an absent one; only
	// the latter gets the default run.
	p := models.Product{Name: "One-size Cap", Category: "Unisex", Sizes: []string{}}

	v := models.NewProductView(p)

	assert.Empty(t, v.Sizes)
	assert.NotNil(t, v.Sizes)
}

func TestNewProductView_CopiesFieldsVerbatim(t *testing.T) {
	sub := "Tees"
	p := models.Product{
		Name:        "CTRL-Z Oversized Tee — Neon Grid",
		Description: "Heavyweight cotton tee with neon cyan glitch print.",
		Price:       49.0,
		Category:    "Unisex",
		Subcategory: &sub,
		Sizes:       []string{"S", "M"},
		Images:      []string{"https://example.com/a.jpg"},
		Stock:       7,
		Tags:        []string{"glitch"},
	}

	v := models.NewProductView(p)

	assert.Equal(t, p.Name, v.Name)
	assert.Equal(t, p.Description, v.Description)
	assert.Equal(t, p.Price, v.Price)
	assert.Equal(t, p.Category, v.Category)
	require.NotNil(t, v.Subcategory)
	assert.Equal(t, "Tees", *v.Subcategory)
	assert.Equal(t, p.Sizes, v.Sizes)
	assert.Equal(t, p.Images, v.Images)
	assert.Equal(t, p.Stock, v.Stock)
	assert.Equal(t, p.Tags, v.Tags)
}

func TestSeedProducts_Invariants(t *testing.T) {
	seed := models.SeedProducts()
	require.Len(t, seed, 3)

	for _, p := range seed {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.Sizes, "seeded records always carry a size run")
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}

func TestFallbackProduct_IsTheTee(t *testing.T) {
	p := models.FallbackProduct()

	assert.Equal(t, "CTRL-Z Oversized Tee — Neon Grid", p.Name)
	assert.False(t, p.ID.IsZero(), "fallback carries a generated id")

	// Two calls never share an id; the fallback id is not stable.
	assert.NotEqual(t, p.ID, models.FallbackProduct().ID)
}
