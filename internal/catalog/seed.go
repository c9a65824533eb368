package catalog

import "github.com/hammamikhairi/recipecost/internal/domain"

func mass(amount float64, name domain.UnitName) domain.UnitOfMeasure {
	return domain.UoM(amount, name, domain.UnitTypeMass)
}

func volume(amount float64, name domain.UnitName) domain.UnitOfMeasure {
	return domain.UoM(amount, name, domain.UnitTypeVolume)
}

func count(amount float64) domain.UnitOfMeasure {
	return domain.UoM(amount, domain.UnitEach, domain.UnitTypeCount)
}

func per100g(name string, grams float64) domain.NutrientFact {
	return domain.NutrientFact{
		NutrientName:   name,
		QuantityAmount: mass(grams, domain.UnitGrams),
		QuantityPer:    mass(100, domain.UnitGrams),
	}
}

func per100mL(name string, grams float64) domain.NutrientFact {
	return domain.NutrientFact{
		NutrientName:   name,
		QuantityAmount: mass(grams, domain.UnitGrams),
		QuantityPer:    volume(100, domain.UnitMillilitres),
	}
}

func line(ingredient string, uom domain.UnitOfMeasure) domain.RecipeLineItem {
	return domain.RecipeLineItem{Ingredient: domain.Ingredient{Name: ingredient}, UnitOfMeasure: uom}
}

func offer(supplier, name string, price float64, uom domain.UnitOfMeasure) domain.SupplierProduct {
	return domain.SupplierProduct{SupplierName: supplier, SupplierProductName: name, Price: price, UoM: uom}
}

// Seed returns the built-in fixture catalog.
func Seed() *domain.Snapshot {
	return &domain.Snapshot{
		Recipes: []domain.Recipe{
			{
				Name: "Vanilla Sponge",
				LineItems: []domain.RecipeLineItem{
					line("flour", volume(2, domain.UnitCups)),
					line("sugar", mass(200, domain.UnitGrams)),
					line("eggs", count(3)),
					line("milk", volume(1, domain.UnitCups)),
				},
			},
			{
				Name: "Pancakes",
				LineItems: []domain.RecipeLineItem{
					line("flour", volume(1, domain.UnitCups)),
					line("milk", volume(2, domain.UnitCups)),
					line("eggs", count(2)),
				},
			},
		},
		Products: []domain.Product{
			{
				Name:           "Plain Flour",
				BrandName:      "Millers",
				IngredientName: "flour",
				SupplierProducts: []domain.SupplierProduct{
					offer("Corner Grocer", "Plain Flour 1kg", 2.00, mass(1, domain.UnitKilograms)),
					offer("Bulk Barn", "Plain Flour 500g", 1.20, mass(500, domain.UnitGrams)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100g("Carbohydrate", 76),
					per100g("Protein", 10),
					per100g("Fat", 1),
				},
			},
			{
				Name:           "Stoneground Flour",
				BrandName:      "Old Mill",
				IngredientName: "flour",
				SupplierProducts: []domain.SupplierProduct{
					offer("Bulk Barn", "Stoneground Flour 10kg", 15.00, mass(10, domain.UnitKilograms)),
					offer("Farmers Market", "Stoneground Flour Bag", 3.00, count(1)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100g("Carbohydrate", 70),
					per100g("Protein", 12),
					per100g("Fat", 2),
				},
			},
			{
				Name:           "Caster Sugar",
				BrandName:      "Sweetfields",
				IngredientName: "sugar",
				SupplierProducts: []domain.SupplierProduct{
					offer("Corner Grocer", "Caster Sugar 1kg", 3.00, mass(1, domain.UnitKilograms)),
					offer("Corner Grocer", "Caster Sugar 250g", 0.70, mass(250, domain.UnitGrams)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100g("Carbohydrate", 100),
				},
			},
			{
				Name:           "Raw Sugar",
				BrandName:      "Cane Co",
				IngredientName: "sugar",
				SupplierProducts: []domain.SupplierProduct{
					offer("Bulk Barn", "Raw Sugar 2kg", 5.00, mass(2, domain.UnitKilograms)),
				},
				NutrientFacts: []domain.NutrientFact{
					{
						NutrientName:   "Carbohydrate",
						QuantityAmount: mass(995, domain.UnitGrams),
						QuantityPer:    mass(1, domain.UnitKilograms),
					},
				},
			},
			{
				Name:           "Free Range Eggs",
				BrandName:      "Happy Hens",
				IngredientName: "eggs",
				SupplierProducts: []domain.SupplierProduct{
					offer("Farmers Market", "Free Range Dozen", 6.00, count(12)),
					offer("Corner Grocer", "Free Range Half Dozen", 3.30, count(6)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100g("Protein", 13),
					per100g("Fat", 10),
				},
			},
			{
				Name:           "Cage Eggs",
				BrandName:      "Value",
				IngredientName: "eggs",
				SupplierProducts: []domain.SupplierProduct{
					offer("Corner Grocer", "Cage Eggs Dozen", 6.00, count(12)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100g("Protein", 12),
					per100g("Fat", 11),
				},
			},
			{
				Name:           "Full Cream Milk",
				BrandName:      "Dairy Vale",
				IngredientName: "milk",
				SupplierProducts: []domain.SupplierProduct{
					offer("Corner Grocer", "Full Cream 1L", 1.60, volume(1000, domain.UnitMillilitres)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100mL("Protein", 3.4),
					per100mL("Carbohydrate", 4.8),
					per100mL("Fat", 3.5),
				},
			},
			{
				Name:           "Skim Milk",
				BrandName:      "Dairy Vale",
				IngredientName: "milk",
				SupplierProducts: []domain.SupplierProduct{
					offer("Bulk Barn", "Skim 2L", 3.00, volume(2000, domain.UnitMillilitres)),
				},
				NutrientFacts: []domain.NutrientFact{
					per100mL("Protein", 3.5),
					per100mL("Carbohydrate", 5),
					per100mL("Fat", 0.1),
				},
			},
		},
	}
}
