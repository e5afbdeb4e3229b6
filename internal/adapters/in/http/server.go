package http

import (
	"net/http"
	"strings"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/actor"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the /api/v1 endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	assignTailorHandler   commands.AssignTailorCommandHandler
	changeStatusHandler   commands.ChangeStatusCommandHandler
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler
	registerTailorHandler commands.RegisterTailorCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	getTailorsHandler queries.GetTailorsQueryHandler
	quotePriceHandler queries.QuotePriceQueryHandler
	getCatalogHandler queries.GetCatalogQueryHandler
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	PlaceOrder     commands.PlaceOrderCommandHandler
	AssignTailor   commands.AssignTailorCommandHandler
	ChangeStatus   commands.ChangeStatusCommandHandler
	UpdateDelivery commands.UpdateDeliveryCommandHandler
	RegisterTailor commands.RegisterTailorCommandHandler

	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
	GetTailors queries.GetTailorsQueryHandler
	QuotePrice queries.QuotePriceQueryHandler
	GetCatalog queries.GetCatalogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		placeOrderHandler:     h.PlaceOrder,
		assignTailorHandler:   h.AssignTailor,
		changeStatusHandler:   h.ChangeStatus,
		updateDeliveryHandler: h.UpdateDelivery,
		registerTailorHandler: h.RegisterTailor,
		listOrdersHandler:     h.ListOrders,
		getOrderHandler:       h.GetOrder,
		getTailorsHandler:     h.GetTailors,
		quotePriceHandler:     h.QuotePrice,
		getCatalogHandler:     h.GetCatalog,
	}
}

// Register mounts every endpoint on the group. The group must run Identity first.
func (s *Server) Register(g *echo.Group) {
	g.GET("/catalog", s.GetCatalog)
	g.POST("/quotes", s.QuotePrice)

	g.POST("/orders", s.PlaceOrder)
	g.GET("/orders/mine", s.GetMyOrders)
	g.GET("/orders/inbox", s.listHandler(queries.NewAdminInboxQuery))
	g.GET("/orders/active", s.listHandler(queries.NewActiveBoardQuery))
	g.GET("/orders/review", s.listHandler(queries.NewReviewQueueQuery))
	g.GET("/orders/completed", s.listHandler(queries.NewCompletedOrdersQuery))
	g.GET("/orders/:orderId", s.GetOrder)
	g.POST("/orders/:orderId/assignment", s.AssignTailor)
	g.POST("/orders/:orderId/status", s.ChangeStatus)
	g.POST("/orders/:orderId/delivery", s.UpdateDelivery)

	g.GET("/tailors", s.GetTailors)
	g.POST("/tailors", s.RegisterTailor)
	g.GET("/tailors/:tailorId/orders", s.GetTailorWorklist)
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	view, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCatalog(view))
}

// QuotePrice handles POST /api/v1/quotes. Nothing is stored.
func (s *Server) QuotePrice(ctx echo.Context) error {
	var body Selection
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	quote, err := s.quotePriceHandler.Handle(ctx.Request().Context(), queries.NewQuotePriceQuery(body.toSelection()))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toQuote(quote))
}

// PlaceOrder handles POST /api/v1/orders and answers with the stored order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	by := actorFrom(ctx)
	measurement, err := body.Measurement.toDomain()
	if err != nil {
		return err
	}
	addresses, err := body.addresses()
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(by, orderID, body.CustomerContact, body.toSelection(), measurement, addresses)
	if err != nil {
		return err
	}
	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, by)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID, actorFrom(ctx))
}

// GetMyOrders handles GET /api/v1/orders/mine for customers.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	by := actorFrom(ctx)
	if !by.Is(actor.Customer) {
		return errs.NewActionIsForbiddenError("view customer orders")
	}
	query, err := queries.NewCustomerOrdersQuery(by.ID())
	if err != nil {
		return err
	}
	return s.list(ctx, query)
}

// GetTailorWorklist handles GET /api/v1/tailors/{tailorId}/orders?status=...
func (s *Server) GetTailorWorklist(ctx echo.Context) error {
	tailorID, err := bindUUID(ctx, "tailorId")
	if err != nil {
		return err
	}

	var rawStatus string
	if err = runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &rawStatus); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("status", err)
	}
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	query, err := queries.NewTailorWorklistQuery(tailorID, status)
	if err != nil {
		return err
	}
	return s.list(ctx, query)
}

// AssignTailor handles POST /api/v1/orders/{orderId}/assignment.
func (s *Server) AssignTailor(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	var body Assignment
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	// Non-positive amounts reach the order as zero and are rejected there as incomplete.
	var amount *kernel.Money
	if body.AssignmentAmount != nil {
		m := kernel.Zero()
		if *body.AssignmentAmount > 0 {
			m = kernel.MustMoney(*body.AssignmentAmount)
		}
		amount = &m
	}

	by := actorFrom(ctx)
	cmd, err := commands.NewAssignTailorCommand(by, orderID, kernelUUID(body.TailorID), amount)
	if err != nil {
		return err
	}
	if err = s.assignTailorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, by)
}

// ChangeStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}
	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return err
	}

	by := actorFrom(ctx)
	cmd, err := commands.NewChangeStatusCommand(by, orderID, target)
	if err != nil {
		return err
	}
	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, by)
}

// UpdateDelivery handles POST /api/v1/orders/{orderId}/delivery.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	orderID, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	var body DeliveryChange
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}
	target, err := order.ParseDeliveryStatus(body.DeliveryStatus)
	if err != nil {
		return err
	}

	by := actorFrom(ctx)
	cmd, err := commands.NewUpdateDeliveryCommand(by, orderID, target, body.Notes)
	if err != nil {
		return err
	}
	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, by)
}

// GetTailors handles GET /api/v1/tailors for admins.
func (s *Server) GetTailors(ctx echo.Context) error {
	if !actorFrom(ctx).Is(actor.Admin) {
		return errs.NewActionIsForbiddenError("view tailors")
	}

	tailors, err := s.getTailorsHandler.Handle(ctx.Request().Context(), queries.NewGetTailorsQuery())
	if err != nil {
		return err
	}

	response := make([]Tailor, len(tailors))
	for i, t := range tailors {
		response[i] = toTailor(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterTailor handles POST /api/v1/tailors.
func (s *Server) RegisterTailor(ctx echo.Context) error {
	var body NewTailor
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	tailorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterTailorCommand(actorFrom(ctx), tailorID, body.Name, body.Phone)
	if err != nil {
		return err
	}
	if err = s.registerTailorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, Tailor{
		ID:    tailorID.Bytes(),
		Name:  strings.TrimSpace(cmd.Name()),
		Phone: strings.TrimSpace(cmd.Phone()),
	})
}

func (s *Server) listHandler(newQuery func() queries.ListOrdersQuery) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return s.list(ctx, newQuery())
	}
}

func (s *Server) list(ctx echo.Context, query queries.ListOrdersQuery) error {
	if err := query.AuthorizeFor(actorFrom(ctx)); err != nil {
		return err
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID, by actor.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, by)
	if err != nil {
		return err
	}
	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(view))
}

func bindUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func invalidBody(err error) error {
	return errs.NewValueIsInvalidErrorWithCause("body", err)
}
