package http

import (
	"context"

	"vendorflow/internal/core/application/usecases/commands"
	"vendorflow/internal/core/application/usecases/queries"

	"github.com/rs/zerolog"
)

// CommandHandler runs one lifecycle command.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) (commands.TransitionResult, error)
}

// QueryHandler answers one read-side query.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreatePurchaseOrder       CommandHandler[commands.CreatePurchaseOrderCommand]
	ReplacePurchaseOrderItems CommandHandler[commands.ReplacePurchaseOrderItemsCommand]
	CancelPurchaseOrder       CommandHandler[commands.CancelPurchaseOrderCommand]
	AcknowledgePurchaseOrder  CommandHandler[commands.AcknowledgePurchaseOrderCommand]
	DeliverPurchaseOrder      CommandHandler[commands.DeliverPurchaseOrderCommand]
	RatePurchaseOrder         CommandHandler[commands.RatePurchaseOrderCommand]

	GetPurchaseOrder            QueryHandler[queries.GetPurchaseOrderQuery, queries.PurchaseOrderView]
	ListPurchaseOrders          QueryHandler[queries.ListPurchaseOrdersQuery, []queries.PurchaseOrderView]
	GetVendorPerformance        QueryHandler[queries.GetVendorPerformanceQuery, queries.GetVendorPerformanceQueryResponse]
	GetVendorPerformanceHistory QueryHandler[queries.GetVendorPerformanceHistoryQuery, []queries.GetVendorPerformanceHistoryQueryResponse]
}

// Server translates HTTP requests into commands and queries. The acting identity
// is resolved by ActorFromHeaders before any handler runs.
type Server struct {
	handlers Handlers
	logger   zerolog.Logger
}

func NewServer(handlers Handlers, logger zerolog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With().Str("component", "http").Logger(),
	}
}
