package cmd

import (
	"log/slog"

	"orderchat/internal/adapters/out/llm"
	"orderchat/internal/adapters/out/postgres"
	"orderchat/internal/core/application/conversation"
	"orderchat/internal/core/application/extraction"
	"orderchat/internal/core/application/interpreter"
	"orderchat/internal/core/application/usecases/commands"
	"orderchat/internal/core/application/usecases/queries"
	"orderchat/internal/core/domain/services"
	"orderchat/internal/core/ports"
	"orderchat/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters and use cases together. One instance per
// process; everything it creates shares the same database handle and chat
// backend.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	chatClient ports.ChatClient
	logger     *slog.Logger
}

// NewCompositionRoot builds the root. The chat client is only wired when the
// config names a backend; a nil client downgrades extraction and the free-text
// fallback to their deterministic behavior.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if config.LLMBaseURL != "" {
		client, err := llm.NewClient(llm.Config{
			BaseURL: config.LLMBaseURL,
			APIKey:  config.LLMAPIKey,
			Model:   config.LLMModel,
		})
		if err != nil {
			return CompositionRoot{}, err
		}
		root.chatClient = client
	}

	return root, nil
}

// NewInterpreter assembles the command interpreter with all of its handlers.
func (c *CompositionRoot) NewInterpreter(config Config) (*interpreter.Interpreter, error) {
	conversations, err := conversation.NewStore(config.ConversationCapacity)
	if err != nil {
		return nil, err
	}

	createHandler := c.NewCreateOrderCommandHandler()
	updateAddressHandler := c.NewUpdateAddressCommandHandler()
	updateHandler := c.NewUpdateOrderCommandHandler()
	cancelHandler := c.NewCancelOrderCommandHandler()
	deleteHandler := c.NewDeleteOrderCommandHandler()
	trackHandler := c.NewTrackOrderQueryHandler()
	nextPickupHandler := c.NewNextPickupQueryHandler()
	listHandler := c.NewListOrdersQueryHandler()

	return interpreter.New(interpreter.Config{
		Classifier:    services.NewIntentClassifier(),
		Extractor:     extraction.NewExtractor(c.chatClient, c.logger),
		CreateOrder:   &createHandler,
		UpdateAddress: &updateAddressHandler,
		UpdateOrder:   &updateHandler,
		CancelOrder:   &cancelHandler,
		DeleteOrder:   &deleteHandler,
		TrackOrder:    &trackHandler,
		NextPickup:    &nextPickupHandler,
		ListOrders:    &listHandler,
		Conversations: conversations,
		Chat:          c.chatClient,
		Logger:        c.logger,
	}), nil
}

// NewJobManager assembles the background job manager.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	handler := c.NewNextPickupQueryHandler()
	return jobs.NewJobManager(&handler, c.logger)
}

func (c *CompositionRoot) NewCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) NewUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) NewUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) NewCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) NewDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) NewTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) NewNextPickupQueryHandler() queries.NextPickupQueryHandler {
	return queries.NewNextPickupQueryHandler(c.gormDB)
}

func (c *CompositionRoot) NewListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
