package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateUnitOfMeasure, UnitOfMeasure{})
	return v
}

// validateUnitOfMeasure rejects unit names used outside their dimension,
// e.g. cups typed as mass.
func validateUnitOfMeasure(sl validator.StructLevel) {
	u := sl.Current().Interface().(UnitOfMeasure)
	typ, ok := DimensionOf(u.Name)
	if !ok {
		sl.ReportError(u.Name, "Name", "Name", "unitname", string(u.Name))
		return
	}
	if typ != u.Type {
		sl.ReportError(u.Type, "Type", "Type", "unitdimension", string(u.Name))
	}
}

// Validate checks catalog entities (a Snapshot, Recipe, Product or
// UnitOfMeasure) against their field rules. Failures wrap ErrInvalidCatalog.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}
