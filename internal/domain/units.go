package domain

import "fmt"

// UnitName identifies a unit of measure.
type UnitName string

const (
	UnitGrams       UnitName = "grams"
	UnitKilograms   UnitName = "kilograms"
	UnitMillilitres UnitName = "millilitres"
	UnitCups        UnitName = "cups"
	UnitEach        UnitName = "each"
)

// UnitType is the dimension a unit belongs to.
type UnitType string

const (
	UnitTypeMass   UnitType = "mass"
	UnitTypeVolume UnitType = "volume"
	UnitTypeCount  UnitType = "count"
)

// dimensions lists which unit names are valid for each dimension.
var dimensions = map[UnitName]UnitType{
	UnitGrams:       UnitTypeMass,
	UnitKilograms:   UnitTypeMass,
	UnitMillilitres: UnitTypeVolume,
	UnitCups:        UnitTypeVolume,
	UnitEach:        UnitTypeCount,
}

// DimensionOf returns the dimension a unit name belongs to.
func DimensionOf(name UnitName) (UnitType, bool) {
	t, ok := dimensions[name]
	return t, ok
}

// UnitOfMeasure is an amount expressed in a named unit.
type UnitOfMeasure struct {
	Amount float64  `json:"uomAmount" msgpack:"uomAmount" validate:"gte=0"`
	Name   UnitName `json:"uomName" msgpack:"uomName" validate:"required"`
	Type   UnitType `json:"uomType" msgpack:"uomType" validate:"required"`
}

// UoM is shorthand for building a UnitOfMeasure.
func UoM(amount float64, name UnitName, typ UnitType) UnitOfMeasure {
	return UnitOfMeasure{Amount: amount, Name: name, Type: typ}
}

// Unit returns the amount-less part of the measure.
func (u UnitOfMeasure) Unit() Unit {
	return Unit{Name: u.Name, Type: u.Type}
}

// Scale returns a copy with the amount multiplied by k.
func (u UnitOfMeasure) Scale(k float64) UnitOfMeasure {
	u.Amount *= k
	return u
}

func (u UnitOfMeasure) String() string {
	return fmt.Sprintf("%g %s", u.Amount, u.Name)
}

// Unit is a (name, dimension) pair. Conversion rules are keyed by it.
type Unit struct {
	Name UnitName
	Type UnitType
}

func (u Unit) String() string {
	return fmt.Sprintf("%s(%s)", u.Name, u.Type)
}
