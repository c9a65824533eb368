// Package domain defines the core types and interfaces for recipe costing.
// All other packages depend on domain; domain depends on nothing but its
// validator.
package domain

import "sort"

// Ingredient names what a line item needs. Products are looked up by it.
type Ingredient struct {
	Name string `json:"ingredientName" msgpack:"ingredientName" validate:"required"`
}

// RecipeLineItem is one ingredient and the quantity of it a recipe requires.
type RecipeLineItem struct {
	Ingredient    Ingredient    `json:"ingredient" msgpack:"ingredient"`
	UnitOfMeasure UnitOfMeasure `json:"unitOfMeasure" msgpack:"unitOfMeasure"`
}

// Recipe is a named list of line items.
type Recipe struct {
	Name      string           `json:"recipeName" msgpack:"recipeName" validate:"required"`
	LineItems []RecipeLineItem `json:"lineItems" msgpack:"lineItems" validate:"dive"`
}

// SupplierProduct is one offer under which a product can be bought:
// Price buys UoM.Amount units of UoM.Name.
type SupplierProduct struct {
	SupplierName        string        `json:"supplierName" msgpack:"supplierName"`
	SupplierProductName string        `json:"supplierProductName" msgpack:"supplierProductName"`
	Price               float64       `json:"supplierPrice" msgpack:"supplierPrice" validate:"gte=0"`
	UoM                 UnitOfMeasure `json:"supplierProductUoM" msgpack:"supplierProductUoM"`
}

// NutrientFact is the quantity of a nutrient per a reference amount of product.
type NutrientFact struct {
	NutrientName   string        `json:"nutrientName" msgpack:"nutrientName" validate:"required"`
	QuantityAmount UnitOfMeasure `json:"quantityAmount" msgpack:"quantityAmount"`
	QuantityPer    UnitOfMeasure `json:"quantityPer" msgpack:"quantityPer"`
}

// Product is a candidate that can fulfil an ingredient.
type Product struct {
	Name             string            `json:"productName" msgpack:"productName" validate:"required"`
	BrandName        string            `json:"brandName,omitempty" msgpack:"brandName,omitempty"`
	IngredientName   string            `json:"ingredientName" msgpack:"ingredientName" validate:"required"`
	SupplierProducts []SupplierProduct `json:"supplierProducts" msgpack:"supplierProducts" validate:"dive"`
	NutrientFacts    []NutrientFact    `json:"nutrientFacts" msgpack:"nutrientFacts" validate:"dive"`
}

// Selection is the offer chosen to cover one line item and what it costs.
type Selection struct {
	Product       Product
	SupplierIndex int
	Cost          float64
}

// Offer returns the chosen supplier offer.
func (s Selection) Offer() SupplierProduct {
	return s.Product.SupplierProducts[s.SupplierIndex]
}

// RecipeSummary is the cheapest cost of a recipe and the nutrients of the
// products that achieve it.
type RecipeSummary struct {
	CheapestCost            float64                 `json:"cheapestCost"`
	NutrientsAtCheapestCost map[string]NutrientFact `json:"nutrientsAtCheapestCost"`
}

// SortedNutrients returns the nutrients ordered by name.
func (s RecipeSummary) SortedNutrients() []NutrientFact {
	names := make([]string, 0, len(s.NutrientsAtCheapestCost))
	for name := range s.NutrientsAtCheapestCost {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]NutrientFact, 0, len(names))
	for _, name := range names {
		out = append(out, s.NutrientsAtCheapestCost[name])
	}
	return out
}

// Summaries maps recipe name to its summary.
type Summaries map[string]RecipeSummary

// Names returns the recipe names in lexical order.
func (s Summaries) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot is a complete catalog: the recipes to cost and every product.
type Snapshot struct {
	Recipes  []Recipe  `json:"recipes" msgpack:"recipes" validate:"dive"`
	Products []Product `json:"products" msgpack:"products" validate:"dive"`
}
