package queries

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/catalog"
	"tailoring/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New("GetCatalogQuery must be created via NewGetCatalogQuery constructor")

type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// CatalogView is what the order form needs: the catalog, today's date and the standard delivery
// date every faster request is charged against.
type CatalogView struct {
	Categories            []catalog.Category
	AddOns                []catalog.AddOn
	Today                 time.Time
	StandardDeliveryDate  time.Time
	FastDeliveryDailyRate int64
}
