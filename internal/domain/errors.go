package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound               = errors.New("not found")
	ErrNoConversionPath       = errors.New("no conversion path")
	ErrUnresolvableIngredient = errors.New("unresolvable ingredient")
	ErrInvalidCatalog         = errors.New("invalid catalog")
	ErrOutOfRange             = errors.New("amount out of range")
)

// ConversionError reports a unit pair with no defined conversion.
type ConversionError struct {
	From Unit
	To   Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("no conversion from %s to %s", e.From, e.To)
}

func (e *ConversionError) Unwrap() error { return ErrNoConversionPath }

// UnresolvableIngredientError reports a line item no candidate can cost.
type UnresolvableIngredientError struct {
	Recipe     string
	Ingredient string
}

func (e *UnresolvableIngredientError) Error() string {
	return fmt.Sprintf("recipe %q: could not find any product for ingredient %q", e.Recipe, e.Ingredient)
}

func (e *UnresolvableIngredientError) Unwrap() error { return ErrUnresolvableIngredient }
