package catalog

import (
	"fmt"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

type Design struct {
	ID    string
	Name  string
	Price kernel.Money
}

type AddOn struct {
	ID    string
	Name  string
	Price kernel.Money
}

type MeasurementField struct {
	ID    string
	Label string
	Unit  string
}

type Category struct {
	ID                string
	Name              string
	BasePrice         kernel.Money
	Designs           []Design
	MeasurementFields []MeasurementField
}

// Design looks up one of the category's designs.
func (c Category) Design(id string) (Design, error) {
	for _, d := range c.Designs {
		if d.ID == id {
			return d, nil
		}
	}
	return Design{}, errs.NewObjectNotFoundError("design", id)
}

// HasMeasurementField reports whether id is one of the category's measurement fields.
func (c Category) HasMeasurementField(id string) bool {
	for _, f := range c.MeasurementFields {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Catalog is an immutable set of categories and add-ons.
type Catalog struct {
	categories []Category
	addOns     []AddOn
}

func New(categories []Category, addOns []AddOn) Catalog {
	return Catalog{
		categories: append([]Category(nil), categories...),
		addOns:     append([]AddOn(nil), addOns...),
	}
}

func (c Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

func (c Catalog) AddOns() []AddOn {
	return append([]AddOn(nil), c.addOns...)
}

func (c Catalog) Category(id string) (Category, error) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, errs.NewObjectNotFoundError("category", id)
}

func (c Catalog) AddOn(id string) (AddOn, error) {
	for _, a := range c.addOns {
		if a.ID == id {
			return a, nil
		}
	}
	return AddOn{}, errs.NewObjectNotFoundError("add-on", id)
}

// ResolveAddOns returns the add-ons in the requested order. Unknown or repeated ids fail.
func (c Catalog) ResolveAddOns(ids []string) ([]AddOn, error) {
	resolved := make([]AddOn, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("add_ons", fmt.Errorf("%s is selected twice", id))
		}
		seen[id] = struct{}{}

		a, err := c.AddOn(id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, a)
	}
	return resolved, nil
}
