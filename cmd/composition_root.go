package cmd

import (
	"log/slog"

	httpin "orderservice/internal/adapters/in/http"
	"orderservice/internal/adapters/out/kafka"
	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/adapters/out/userclient"
	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependency
// decisions of the application live here; nothing below this layer knows
// which concrete adapters were chosen.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	userClient ports.UserClient
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration and shared
// infrastructure handles.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	client, err := userclient.NewClient(userclient.Config{
		BaseURL:    configs.UserServiceBaseURL,
		PathPrefix: configs.UserServicePathPrefix,
		Timeout:    configs.UserServiceTimeout,
		Breaker: userclient.BreakerConfig{
			FailureRateThreshold: configs.BreakerFailureRateThreshold,
			MinimumRequests:      configs.BreakerMinimumRequests,
			OpenTimeout:          configs.BreakerOpenTimeout,
			HalfOpenMaxRequests:  configs.BreakerHalfOpenMaxRequests,
		},
	}, metrics.NewBreakerMetrics())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		userClient: client,
		publisher:  kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.userClient, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.userClient, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository(), c.userClient)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.uowFactory.Create().OrderRepository(), c.userClient, c.logger)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
