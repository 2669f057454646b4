// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries, and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	cancelOrdersHandler      commands.CancelOrdersCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getKitchenQueueHandler    queries.GetKitchenQueueQueryHandler
	getUnassignedHandler      queries.GetUnassignedOrdersQueryHandler
	getCourierOrdersHandler   queries.GetCourierOrdersQueryHandler
	getOrdersByIDsHandler     queries.GetOrdersByIDsQueryHandler
	countOrdersHandler        queries.CountOrdersQueryHandler
	sumClientSpendHandler     queries.SumClientSpendQueryHandler
	countOrdersInMonthHandler queries.CountOrdersInMonthQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelOrdersHandler commands.CancelOrdersCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	getUnassignedHandler queries.GetUnassignedOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getOrdersByIDsHandler queries.GetOrdersByIDsQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
	sumClientSpendHandler queries.SumClientSpendQueryHandler,
	countOrdersInMonthHandler queries.CountOrdersInMonthQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		assignCourierHandler:      assignCourierHandler,
		payOrderHandler:           payOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		cancelOrdersHandler:       cancelOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getKitchenQueueHandler:    getKitchenQueueHandler,
		getUnassignedHandler:      getUnassignedHandler,
		getCourierOrdersHandler:   getCourierOrdersHandler,
		getOrdersByIDsHandler:     getOrdersByIDsHandler,
		countOrdersHandler:        countOrdersHandler,
		sumClientSpendHandler:     sumClientSpendHandler,
		countOrdersInMonthHandler: countOrdersInMonthHandler,
	}
}

// RegisterRoutes wires the order and analytics endpoints onto the router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByIDs)
	api.GET("/orders/kitchen", s.GetKitchenQueue)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.GET("/orders/courier/:id", s.GetCourierOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/cancellation", s.CancelOrders)
	api.POST("/orders/:id/payment", s.PayOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/courier", s.AssignCourier)
	api.POST("/orders/:id/cancellation", s.CancelOrder)

	analytic := e.Group("/analytic")
	analytic.GET("/client/:id", s.CountClientOrders)
	analytic.GET("/courier/:id", s.CountCourierOrders)
	analytic.GET("/employee/:id", s.CountEmployeeOrders)
	analytic.GET("/sum/price/client/:id", s.SumClientSpend)
	analytic.GET("/orders/per/month", s.CountOrdersPerMonth)
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineJSON is one dish position in a response body.
type OrderLineJSON struct {
	ID             string `json:"id"`
	DishID         string `json:"dishId"`
	DishName       string `json:"dishName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// OrderJSON is the order projection in a response body.
type OrderJSON struct {
	ID                string           `json:"id"`
	ClientID          string           `json:"clientId"`
	CourierID         *string          `json:"courierId,omitempty"`
	BranchID          *string          `json:"branchId,omitempty"`
	BranchAddress     *string          `json:"branchAddress,omitempty"`
	EmployeeID        *string          `json:"employeeId,omitempty"`
	DeliveryAddress   string           `json:"deliveryAddress"`
	TotalPriceCents   int64            `json:"totalPriceCents"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"createdAt"`
	StartCookingAt    *time.Time       `json:"startCookingAt,omitempty"`
	EndCookingAt      *time.Time       `json:"endCookingAt,omitempty"`
	DeliveryAt        *time.Time       `json:"deliveryAt,omitempty"`
	RefusalReason     *string          `json:"refusalReason,omitempty"`
	Lines             []OrderLineJSON  `json:"lines"`
	Coordinates       *CoordinatesJSON `json:"coordinates,omitempty"`
	BranchCoordinates *CoordinatesJSON `json:"branchCoordinates,omitempty"`
}

// CoordinatesJSON is one geocoded address in a response body.
type CoordinatesJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewOrderLineRequest is one dish position in an order creation body.
type NewOrderLineRequest struct {
	DishID         string `json:"dishId"`
	DishName       string `json:"dishName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// NewOrderRequest is the order creation body.
type NewOrderRequest struct {
	ClientID        string                `json:"clientId"`
	DeliveryAddress string                `json:"deliveryAddress"`
	Lines           []NewOrderLineRequest `json:"lines"`
}

// UpdateStatusRequest is the status update body. Branch fields are required
// when the target status is COOKING.
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	BranchID      string `json:"branchId,omitempty"`
	BranchAddress string `json:"branchAddress,omitempty"`
	EmployeeID    string `json:"employeeId,omitempty"`
}

// AssignCourierRequest is the courier assignment body.
type AssignCourierRequest struct {
	CourierID string `json:"courierId"`
}

// CancelRequest is the single-order cancellation body.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CancelBatchRequest is the batch cancellation body.
type CancelBatchRequest struct {
	OrderIDs []string `json:"orderIds"`
	Reason   string   `json:"reason"`
}

// CancelBatchResponse reports per-order outcomes of a batch cancellation.
type CancelBatchResponse struct {
	Cancelled []string `json:"cancelled"`
	NotFound  []string `json:"notFound"`
	Rejected  []string `json:"rejected"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	lines := make([]commands.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		dishID, dishErr := kernel.UUIDFromString(line.DishID)
		if dishErr != nil {
			return badRequest(ctx, "Invalid dish id: "+dishErr.Error())
		}
		lines = append(lines, commands.OrderLineInput{
			DishID:         dishID,
			DishName:       line.DishName,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, req.DeliveryAddress, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	withCoordinates, _ := strconv.ParseBool(ctx.QueryParam("coordinates"))

	query, err := queries.NewGetOrderQuery(orderID, withCoordinates)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	body := toOrderJSON(resp.Order)
	body.Coordinates = coordinatesJSON(resp.Coordinates)
	body.BranchCoordinates = coordinatesJSON(resp.BranchCoordinates)

	return ctx.JSON(http.StatusOK, body)
}

// GetOrdersByIDs handles GET /api/v1/orders?ids=a,b,c.
func (s *Server) GetOrdersByIDs(ctx echo.Context) error {
	raw := ctx.QueryParam("ids")
	if strings.TrimSpace(raw) == "" {
		return badRequest(ctx, "Query parameter ids is required")
	}

	var orderIDs []kernel.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := kernel.UUIDFromString(strings.TrimSpace(part))
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderIDs = append(orderIDs, id)
	}

	query, err := queries.NewGetOrdersByIDsQuery(orderIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByIDsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListJSON(orders))
}

// GetKitchenQueue handles GET /api/v1/orders/kitchen.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	orders, err := s.getKitchenQueueHandler.Handle(
		ctx.Request().Context(), queries.NewGetKitchenQueueQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListJSON(orders))
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	orders, err := s.getUnassignedHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnassignedOrdersQuery(page, pageSize),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListJSON(orders))
}

// GetCourierOrders handles GET /api/v1/orders/courier/:id.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	activeOnly, _ := strconv.ParseBool(ctx.QueryParam("active"))
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query, err := queries.NewGetCourierOrdersQuery(courierID, activeOnly, page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListJSON(orders))
}

// PayOrder handles POST /api/v1/orders/:id/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	var kitchen order.KitchenContext
	if target == order.Cooking {
		kitchen, err = parseKitchen(req)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, kitchen)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:id/courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req CancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrders handles POST /api/v1/orders/cancellation.
func (s *Server) CancelOrders(ctx echo.Context) error {
	var req CancelBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewCancelOrdersCommand(orderIDs, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.cancelOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelBatchResponse{
		Cancelled: idStrings(result.Cancelled),
		NotFound:  idStrings(result.NotFound),
		Rejected:  idStrings(result.Rejected),
	})
}

// CountClientOrders handles GET /analytic/client/:id.
func (s *Server) CountClientOrders(ctx echo.Context) error {
	return s.countOrders(ctx, queries.ActorClient)
}

// CountCourierOrders handles GET /analytic/courier/:id.
func (s *Server) CountCourierOrders(ctx echo.Context) error {
	return s.countOrders(ctx, queries.ActorCourier)
}

// CountEmployeeOrders handles GET /analytic/employee/:id.
func (s *Server) CountEmployeeOrders(ctx echo.Context) error {
	return s.countOrders(ctx, queries.ActorEmployee)
}

func (s *Server) countOrders(ctx echo.Context, kind queries.ActorKind) error {
	actorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewCountOrdersQuery(kind, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	count, err := s.countOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"count": count})
}

// SumClientSpend handles GET /analytic/sum/price/client/:id.
func (s *Server) SumClientSpend(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	query, err := queries.NewSumClientSpendQuery(clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	totalCents, err := s.sumClientSpendHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int64{"totalPriceCents": totalCents})
}

// CountOrdersPerMonth handles GET /analytic/orders/per/month?year=&month=.
func (s *Server) CountOrdersPerMonth(ctx echo.Context) error {
	year, _ := strconv.Atoi(ctx.QueryParam("year"))
	month, _ := strconv.Atoi(ctx.QueryParam("month"))

	query, err := queries.NewCountOrdersInMonthQuery(year, month)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	count, err := s.countOrdersInMonthHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"year":  query.Year(),
		"month": int(query.Month()),
		"count": count,
	})
}

func parseKitchen(req UpdateStatusRequest) (order.KitchenContext, error) {
	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return order.KitchenContext{}, errors.New("invalid branch id: " + err.Error())
	}
	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return order.KitchenContext{}, errors.New("invalid employee id: " + err.Error())
	}

	return order.KitchenContext{
		BranchID:      branchID,
		BranchAddress: req.BranchAddress,
		EmployeeID:    employeeID,
	}, nil
}

func toOrderJSON(o queries.OrderResponse) OrderJSON {
	lines := make([]OrderLineJSON, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineJSON{
			ID:             line.ID.String(),
			DishID:         line.DishID.String(),
			DishName:       line.DishName,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	return OrderJSON{
		ID:              o.ID.String(),
		ClientID:        o.ClientID.String(),
		CourierID:       idString(o.CourierID),
		BranchID:        idString(o.BranchID),
		BranchAddress:   o.BranchAddress,
		EmployeeID:      idString(o.EmployeeID),
		DeliveryAddress: o.DeliveryAddress,
		TotalPriceCents: o.TotalPriceCents,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		StartCookingAt:  o.StartCookingAt,
		EndCookingAt:    o.EndCookingAt,
		DeliveryAt:      o.DeliveryAt,
		RefusalReason:   o.RefusalReason,
		Lines:           lines,
	}
}

func toOrderListJSON(orders []queries.OrderResponse) []OrderJSON {
	out := make([]OrderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	return out
}

func coordinatesJSON(c *queries.CoordinatesResponse) *CoordinatesJSON {
	if c == nil {
		return nil
	}
	return &CoordinatesJSON{Latitude: c.Latitude, Longitude: c.Longitude}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors onto HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
