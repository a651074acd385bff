//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"colorboard/infrastructure/config"
)

// CommonSet wires everything both entrypoints share
var CommonSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideCompleter,
	ProvideImageSearcher,
	ProvideRenderer,
	ProvideSessionService,
	ProvidePaletteService,
	ProvideSeasonService,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// APISet wires the traditional server: local store, in-process limiter,
// no event bus
var APISet = wire.NewSet(
	CommonSet,
	ProvideLocalBoardStore,
	ProvideLocalLimiter,
	ProvideNoopPublisher,
)

// LambdaSet wires the edge function: DynamoDB store, distributed limiter,
// EventBridge publisher
var LambdaSet = wire.NewSet(
	CommonSet,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideDynamoBoardStore,
	ProvideDistributedLimiter,
	ProvideEventPublisher,
)

// InitializeAPIContainer builds the container for cmd/api
func InitializeAPIContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(APISet)
	return nil, nil // Wire will replace this
}

// InitializeLambdaContainer builds the container for cmd/lambda
func InitializeLambdaContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(LambdaSet)
	return nil, nil // Wire will replace this
}
