package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var (
	ErrGarmentIsNotConstructed = errors.New("Garment must be created via NewGarment constructor")
	ErrCategoryIsRequired      = errs.NewValueIsRequiredError("category")
	ErrDesignIsRequired        = errs.NewValueIsRequiredError("design")
)

// AddOn is one priced extra of an order, frozen at placement.
type AddOn struct {
	id    string
	name  string
	price kernel.Money
}

func NewAddOn(id, name string, price kernel.Money) (AddOn, error) {
	var problems []error
	if strings.TrimSpace(id) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("add_on.id"))
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("add_on.name"))
	}
	if err := errors.Join(problems...); err != nil {
		return AddOn{}, err
	}
	return AddOn{id: strings.TrimSpace(id), name: strings.TrimSpace(name), price: price}, nil
}

func (a AddOn) ID() string          { return a.id }
func (a AddOn) Name() string        { return a.name }
func (a AddOn) Price() kernel.Money { return a.price }

// Garment is what is being stitched: category and design display names plus the ordered add-ons.
type Garment struct {
	category string
	design   string
	addOns   []AddOn
	guard    guard.ConstructorGuard
}

func NewGarment(category, design string, addOns []AddOn) (Garment, error) {
	var problems []error
	category = strings.TrimSpace(category)
	design = strings.TrimSpace(design)
	if category == "" {
		problems = append(problems, ErrCategoryIsRequired)
	}
	if design == "" {
		problems = append(problems, ErrDesignIsRequired)
	}

	seen := make(map[string]struct{}, len(addOns))
	for _, a := range addOns {
		if a.id == "" {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"add_ons", errors.New("add-on must be created via NewAddOn")))
			continue
		}
		if _, dup := seen[a.id]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"add_ons", fmt.Errorf("%s is listed twice", a.id)))
		}
		seen[a.id] = struct{}{}
	}
	if err := errors.Join(problems...); err != nil {
		return Garment{}, err
	}

	return Garment{
		category: category,
		design:   design,
		addOns:   slices.Clone(addOns),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (g Garment) Validate() error {
	return g.guard.Validate(ErrGarmentIsNotConstructed)
}

func (g Garment) Category() string { return g.category }
func (g Garment) Design() string   { return g.design }

// AddOns returns a copy in placement order.
func (g Garment) AddOns() []AddOn {
	return slices.Clone(g.addOns)
}

type addOnJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price *int64 `json:"price"`
}

// EncodeAddOns renders the ordered [{id,name,price}] list stored in the add_ons column.
func EncodeAddOns(addOns []AddOn) ([]byte, error) {
	out := make([]addOnJSON, 0, len(addOns))
	for _, a := range addOns {
		price := a.price.Int64()
		out = append(out, addOnJSON{ID: a.id, Name: a.name, Price: &price})
	}
	return json.Marshal(out)
}

// DecodeAddOns is the strict counterpart of EncodeAddOns.
func DecodeAddOns(data []byte) ([]AddOn, error) {
	var raw []addOnJSON
	if err := decodeStrict(data, &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("add_ons", err)
	}

	addOns := make([]AddOn, 0, len(raw))
	for i, r := range raw {
		if r.Price == nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("add_ons", fmt.Errorf("item %d has no price", i))
		}
		price, err := kernel.NewMoney(*r.Price)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("add_ons", err)
		}
		a, err := NewAddOn(r.ID, r.Name, price)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("add_ons", err)
		}
		addOns = append(addOns, a)
	}
	return addOns, nil
}
