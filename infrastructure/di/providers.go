package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"colorboard/application/commands"
	commandbus "colorboard/application/commands/bus"
	commandhandlers "colorboard/application/commands/handlers"
	"colorboard/application/ports"
	"colorboard/application/queries"
	querybus "colorboard/application/queries/bus"
	queryhandlers "colorboard/application/queries/handlers"
	"colorboard/application/services"
	domainconfig "colorboard/domain/config"
	"colorboard/infrastructure/ai"
	"colorboard/infrastructure/assets"
	"colorboard/infrastructure/config"
	"colorboard/infrastructure/messaging/eventbridge"
	dynamostore "colorboard/infrastructure/persistence/dynamodb"
	memorystore "colorboard/infrastructure/persistence/memory"
	sqlitestore "colorboard/infrastructure/persistence/sqlite"
	"colorboard/infrastructure/render"
	"colorboard/pkg/ratelimit"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig supplies the board geometry rules
func ProvideDomainConfig() *domainconfig.DomainConfig {
	return domainconfig.DefaultDomainConfig()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideLocalBoardStore creates the store for the traditional server:
// SQLite by default, in-memory when configured.
func ProvideLocalBoardStore(cfg *config.Config) (ports.BoardStore, error) {
	switch cfg.StorageDriver {
	case "memory":
		return memorystore.NewBoardStore(), nil
	case "sqlite":
		return sqlitestore.NewBoardStore(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not available in the local server", cfg.StorageDriver)
	}
}

// ProvideDynamoBoardStore creates the store for the edge function
func ProvideDynamoBoardStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.BoardStore {
	return dynamostore.NewBoardStore(client, cfg.DynamoDBTable, logger)
}

// ProvideLocalLimiter creates the in-process sliding window limiter
func ProvideLocalLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewSlidingWindowLimiter(cfg.RateLimitPerHour, time.Hour)
}

// ProvideDistributedLimiter creates the DynamoDB-backed limiter
func ProvideDistributedLimiter(client *awsdynamodb.Client, cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewDistributedLimiter(client, cfg.DynamoDBTable, cfg.RateLimitPerHour, time.Hour, "ai")
}

// ProvideNoopPublisher supplies the event publisher for the local server,
// where no event bus exists
func ProvideNoopPublisher(logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(nil, "", logger)
}

// ProvideEventPublisher creates the EventBridge publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideCompleter creates the completion API client
func ProvideCompleter(cfg *config.Config, logger *zap.Logger) ports.Completer {
	return ai.NewClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout, logger)
}

// ProvideImageSearcher creates the stock image searcher
func ProvideImageSearcher() ports.ImageSearcher {
	return assets.NewPlaceholderSearcher()
}

// ProvideRenderer creates the PNG board renderer
func ProvideRenderer(domainCfg *domainconfig.DomainConfig, logger *zap.Logger) ports.BoardRenderer {
	return render.NewRenderer(domainCfg, logger)
}

// ProvideSessionService creates the per-client board session service
func ProvideSessionService(
	store ports.BoardStore,
	publisher ports.EventPublisher,
	domainCfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) *services.SessionService {
	return services.NewSessionService(store, publisher, domainCfg, logger)
}

// ProvidePaletteService creates the palette proxy service
func ProvidePaletteService(completer ports.Completer, logger *zap.Logger) *services.PaletteService {
	return services.NewPaletteService(completer, logger)
}

// ProvideSeasonService creates the season analysis proxy service
func ProvideSeasonService(completer ports.Completer, logger *zap.Logger) *services.SeasonService {
	return services.NewSeasonService(completer, logger)
}

// ProvideCommandBus creates the command bus with every board command
// handler registered
func ProvideCommandBus(sessions *services.SessionService, logger *zap.Logger) (*commandbus.CommandBus, error) {
	b := commandbus.NewCommandBus()

	registrations := []struct {
		cmd     commandbus.Command
		handler commandbus.CommandHandler
	}{
		{commands.CreateItemCommand{}, commandhandlers.NewCreateItemHandler(sessions, logger)},
		{commands.UpdateItemCommand{}, commandhandlers.NewUpdateItemHandler(sessions)},
		{commands.MoveItemCommand{}, commandhandlers.NewMoveItemHandler(sessions)},
		{commands.ResizeItemCommand{}, commandhandlers.NewResizeItemHandler(sessions)},
		{commands.RotateItemCommand{}, commandhandlers.NewRotateItemHandler(sessions)},
		{commands.BringToFrontCommand{}, commandhandlers.NewBringToFrontHandler(sessions)},
		{commands.DeleteItemCommand{}, commandhandlers.NewDeleteItemHandler(sessions)},
		{commands.AlignItemsCommand{}, commandhandlers.NewAlignItemsHandler(sessions)},
		{commands.GroupItemsCommand{}, commandhandlers.NewGroupItemsHandler(sessions)},
		{commands.UngroupItemsCommand{}, commandhandlers.NewUngroupItemsHandler(sessions)},
		{commands.MoveGroupCommand{}, commandhandlers.NewMoveGroupHandler(sessions)},
		{commands.RenameBoardCommand{}, commandhandlers.NewRenameBoardHandler(sessions)},
		{commands.UndoCommand{}, commandhandlers.NewUndoHandler(sessions)},
		{commands.RedoCommand{}, commandhandlers.NewRedoHandler(sessions)},
		{commands.ResetBoardCommand{}, commandhandlers.NewResetBoardHandler(sessions)},
	}

	logging := commandbus.LoggingMiddleware(logger)
	for _, r := range registrations {
		if err := b.Register(r.cmd, commandbus.Wrap(r.handler, logging)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ProvideQueryBus creates the query bus with every board query handler
// registered
func ProvideQueryBus(sessions *services.SessionService, renderer ports.BoardRenderer) (*querybus.QueryBus, error) {
	b := querybus.NewQueryBus()

	if err := b.Register(queries.GetBoardQuery{}, queryhandlers.NewGetBoardHandler(sessions)); err != nil {
		return nil, err
	}
	if err := b.Register(queries.ExportBoardQuery{}, queryhandlers.NewExportBoardHandler(sessions, renderer)); err != nil {
		return nil, err
	}
	return b, nil
}
