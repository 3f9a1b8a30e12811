package http

import (
	"net/http"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/application/usecases/queries"
	"vendorflow/internal/core/domain/model/kernel"
	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(c echo.Context) error {
	var req createPurchaseOrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	vendorID, err := parseID("vendor", req.VendorID)
	if err != nil {
		return s.writeError(c, err)
	}
	items, err := toItems(req.Items)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actorFrom(c), vendorID, items)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.CreatePurchaseOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, newTransitionResponse(result))
}

// ReplacePurchaseOrderItems handles PUT /api/v1/purchase-orders/:id/items.
func (s *Server) ReplacePurchaseOrderItems(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var req replaceItemsRequest
	if err = s.bind(c, &req); err != nil {
		return s.writeError(c, err)
	}
	items, err := toItems(req.Items)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewReplacePurchaseOrderItemsCommand(actorFrom(c), orderID, items)
	if err != nil {
		return s.writeError(c, err)
	}
	return respondWith(s, c, s.handlers.ReplacePurchaseOrderItems, cmd)
}

// CancelPurchaseOrder handles DELETE /api/v1/purchase-orders/:id. The order is
// kept with status Cancelled.
func (s *Server) CancelPurchaseOrder(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelPurchaseOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}
	return respondWith(s, c, s.handlers.CancelPurchaseOrder, cmd)
}

// AcknowledgePurchaseOrder handles POST /api/v1/purchase-orders/:id/acknowledge.
func (s *Server) AcknowledgePurchaseOrder(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var req acknowledgeRequest
	if err = s.bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAcknowledgePurchaseOrderCommand(actorFrom(c), orderID, *req.ExpectedDeliveryDate)
	if err != nil {
		return s.writeError(c, err)
	}
	return respondWith(s, c, s.handlers.AcknowledgePurchaseOrder, cmd)
}

// DeliverPurchaseOrder handles POST /api/v1/purchase-orders/:id/deliver.
func (s *Server) DeliverPurchaseOrder(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeliverPurchaseOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}
	return respondWith(s, c, s.handlers.DeliverPurchaseOrder, cmd)
}

// RatePurchaseOrder handles POST /api/v1/purchase-orders/:id/rate.
func (s *Server) RatePurchaseOrder(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var req rateRequest
	if err = s.bind(c, &req); err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRatePurchaseOrderCommand(actorFrom(c), orderID, *req.QualityRating)
	if err != nil {
		return s.writeError(c, err)
	}
	return respondWith(s, c, s.handlers.RatePurchaseOrder, cmd)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:id.
func (s *Server) GetPurchaseOrder(c echo.Context) error {
	orderID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetPurchaseOrderQuery(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetPurchaseOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newPurchaseOrderResponse(view))
}

// ListPurchaseOrders handles GET /api/v1/purchase-orders?status=Pending.
func (s *Server) ListPurchaseOrders(c echo.Context) error {
	status := purchaseorder.Unknown
	if name := c.QueryParam("status"); name != "" {
		var err error
		if status, err = purchaseorder.StatusFromString(name); err != nil {
			return s.writeError(c, err)
		}
	}

	query, err := queries.NewListPurchaseOrdersQuery(actorFrom(c), status)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListPurchaseOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	resp := make([]purchaseOrderResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, newPurchaseOrderResponse(view))
	}
	return c.JSON(http.StatusOK, resp)
}

// respondWith runs a lifecycle command and renders the committed order.
func respondWith[C any](s *Server, c echo.Context, handler CommandHandler[C], cmd C) error {
	result, err := handler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newTransitionResponse(result))
}

// bind decodes the JSON body into req and validates it.
func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func parseID(param, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}
