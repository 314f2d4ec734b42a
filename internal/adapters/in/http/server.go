// Package http is the inbound HTTP adapter. It binds request DTOs, builds
// commands and queries, and maps application errors onto HTTP statuses.
// All business rules live behind the handlers it calls.
package http

import (
	"net/http"
	"strconv"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	disputeOrderHandler         commands.DisputeOrderCommandHandler
	advanceOrderStatusHandler   commands.AdvanceOrderStatusCommandHandler
	settleOrderHandler          commands.SettleOrderCommandHandler
	settleAllOrdersHandler      commands.SettleAllOrdersCommandHandler
	createScheduledOrderHandler commands.CreateScheduledOrderCommandHandler
	bulkCancelScheduledHandler  commands.BulkCancelScheduledOrdersCommandHandler
	addHolidayHandler           commands.AddHolidayCommandHandler
	generateWeekendsHandler     commands.GenerateWeekendsCommandHandler

	// Query handlers
	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getScheduledOrdersHandler  queries.GetScheduledOrdersQueryHandler
	getBillSummaryHandler      queries.GetBillSummaryQueryHandler
	getAllUsersBillsHandler    queries.GetAllUsersBillsQueryHandler
	getHolidaysHandler         queries.GetHolidaysQueryHandler
	getSchedulingBoundsHandler queries.GetSchedulingConstraintsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	disputeOrderHandler commands.DisputeOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	settleOrderHandler commands.SettleOrderCommandHandler,
	settleAllOrdersHandler commands.SettleAllOrdersCommandHandler,
	createScheduledOrderHandler commands.CreateScheduledOrderCommandHandler,
	bulkCancelScheduledHandler commands.BulkCancelScheduledOrdersCommandHandler,
	addHolidayHandler commands.AddHolidayCommandHandler,
	generateWeekendsHandler commands.GenerateWeekendsCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getScheduledOrdersHandler queries.GetScheduledOrdersQueryHandler,
	getBillSummaryHandler queries.GetBillSummaryQueryHandler,
	getAllUsersBillsHandler queries.GetAllUsersBillsQueryHandler,
	getHolidaysHandler queries.GetHolidaysQueryHandler,
	getSchedulingBoundsHandler queries.GetSchedulingConstraintsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		disputeOrderHandler:         disputeOrderHandler,
		advanceOrderStatusHandler:   advanceOrderStatusHandler,
		settleOrderHandler:          settleOrderHandler,
		settleAllOrdersHandler:      settleAllOrdersHandler,
		createScheduledOrderHandler: createScheduledOrderHandler,
		bulkCancelScheduledHandler:  bulkCancelScheduledHandler,
		addHolidayHandler:           addHolidayHandler,
		generateWeekendsHandler:     generateWeekendsHandler,
		getUserOrdersHandler:        getUserOrdersHandler,
		getScheduledOrdersHandler:   getScheduledOrdersHandler,
		getBillSummaryHandler:       getBillSummaryHandler,
		getAllUsersBillsHandler:     getAllUsersBillsHandler,
		getHolidaysHandler:          getHolidaysHandler,
		getSchedulingBoundsHandler:  getSchedulingBoundsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/dispute", s.DisputeOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/settle", s.SettleOrder)

	api.POST("/scheduled-orders", s.CreateScheduledOrders)
	api.POST("/scheduled-orders/bulk-cancel", s.BulkCancelScheduledOrders)

	api.GET("/users/:id/orders", s.GetUserOrders)
	api.GET("/users/:id/scheduled-orders", s.GetScheduledOrders)
	api.GET("/users/:id/bill", s.GetBillSummary)
	api.POST("/users/:id/settle-all", s.SettleAllOrders)
	api.GET("/bills", s.GetAllUsersBills)

	api.GET("/holidays", s.GetHolidays)
	api.POST("/holidays", s.AddHoliday)
	api.POST("/holidays/weekends", s.GenerateWeekends)
	api.GET("/scheduling-constraints", s.GetSchedulingConstraints)
}

// CreateOrder handles POST /api/v1/orders - places an ad-hoc order for today.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	items, err := toItemSelections(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.UserID, request.CreatedByAdmin, items, request.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order within
// the owner's cancellation window.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request OrderOwnerRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisputeOrder handles POST /api/v1/orders/:id/dispute - raises the one-way
// dispute flag on an order.
func (s *Server) DisputeOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request OrderOwnerRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	cmd, err := commands.NewDisputeOrderCommand(orderID, request.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.disputeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order
// forward along the delivery path.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request AdvanceOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettleOrder handles POST /api/v1/orders/:id/settle - settles one delivered order.
func (s *Server) SettleOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettleAllOrders handles POST /api/v1/users/:id/settle-all - settles every
// delivered order of one user in a single transaction.
func (s *Server) SettleAllOrders(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleAllOrdersCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	settled, err := s.settleAllOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SettleAllResponse{SettledCount: settled})
}

// CreateScheduledOrders handles POST /api/v1/scheduled-orders - materializes
// one order per working day in the requested range.
func (s *Server) CreateScheduledOrders(ctx echo.Context) error {
	var request CreateScheduledOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	start, err := kernel.ParseDate(request.StartDate)
	if err != nil {
		return respondError(ctx, err)
	}
	end, err := kernel.ParseDate(request.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := toItemSelections(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}
	categories, err := toCategorySelections(request.Categories)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateScheduledOrderCommand(
		request.UserID, start, end, items, categories, request.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	orderIDs, err := s.createScheduledOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedBatchResponse{OrderIDs: orderIDs})
}

// BulkCancelScheduledOrders handles POST /api/v1/scheduled-orders/bulk-cancel -
// withdraws a batch of scheduled orders and reports per-order outcomes.
func (s *Server) BulkCancelScheduledOrders(ctx echo.Context) error {
	var request BulkCancelRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	cmd, err := commands.NewBulkCancelScheduledOrdersCommand(request.UserID, request.OrderIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.bulkCancelScheduledHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBulkCancelResponse(report))
}

// GetUserOrders handles GET /api/v1/users/:id/orders - one user's order
// history, newest first.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetScheduledOrders handles GET /api/v1/users/:id/scheduled-orders - a user's
// upcoming scheduled orders.
func (s *Server) GetScheduledOrders(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetScheduledOrdersQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getScheduledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetBillSummary handles GET /api/v1/users/:id/bill - one user's settlement
// bill, optionally narrowed to a creation-date range.
func (s *Server) GetBillSummary(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	start, end, err := dateRangeParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBillSummaryQuery(userID, start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	bill, err := s.getBillSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBillSummaryResponse(bill, start, end))
}

// GetAllUsersBills handles GET /api/v1/bills - the settlement overview across
// every user with billable orders, optionally narrowed by period and user.
func (s *Server) GetAllUsersBills(ctx echo.Context) error {
	start, end, err := dateRangeParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var userID int64
	if raw := ctx.QueryParam("user_id"); raw != "" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("user_id", err))
		}
	}

	query, err := queries.NewGetAllUsersBillsQuery(start, end, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	overview, err := s.getAllUsersBillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAllUsersBillsResponse(overview))
}

// GetHolidays handles GET /api/v1/holidays?year=YYYY - one year's calendar.
func (s *Server) GetHolidays(ctx echo.Context) error {
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("year", err))
	}

	query, err := queries.NewGetHolidaysQuery(year)
	if err != nil {
		return respondError(ctx, err)
	}

	holidays, err := s.getHolidaysHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toHolidayResponses(holidays))
}

// AddHoliday handles POST /api/v1/holidays - declares one holiday.
func (s *Server) AddHoliday(ctx echo.Context) error {
	var request AddHolidayRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	date, err := kernel.ParseDate(request.Date)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddHolidayCommand(date, request.Name, request.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	holidayID, err := s.addHolidayHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: holidayID})
}

// GenerateWeekends handles POST /api/v1/holidays/weekends - populates one
// year's weekend calendar rows.
func (s *Server) GenerateWeekends(ctx echo.Context) error {
	var request GenerateWeekendsRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadBody(ctx)
	}

	cmd, err := commands.NewGenerateWeekendsCommand(request.Year)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.generateWeekendsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WeekendGenerationResponse{
		Inserted: report.Inserted,
		Skipped:  report.Skipped,
	})
}

// GetSchedulingConstraints handles GET /api/v1/scheduling-constraints - the
// date bounds a new schedule must fit in.
func (s *Server) GetSchedulingConstraints(ctx echo.Context) error {
	query := queries.NewGetSchedulingConstraintsQuery()

	constraints, err := s.getSchedulingBoundsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SchedulingConstraintsResponse{
		Today:          constraints.Today,
		EarliestStart:  constraints.EarliestStart,
		LatestEnd:      constraints.LatestEnd,
		NonWorkingDays: constraints.NonWorkingDays,
	})
}

// dateRangeParams reads the optional start_date and end_date query parameters
// in the YYYY-MM-DD wire format. A missing parameter leaves that bound open.
func dateRangeParams(ctx echo.Context) (start, end kernel.Date, err error) {
	if raw := ctx.QueryParam("start_date"); raw != "" {
		if start, err = kernel.ParseDate(raw); err != nil {
			return kernel.Date{}, kernel.Date{}, err
		}
	}
	if raw := ctx.QueryParam("end_date"); raw != "" {
		if end, err = kernel.ParseDate(raw); err != nil {
			return kernel.Date{}, kernel.Date{}, err
		}
	}
	return start, end, nil
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func respondBadBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
