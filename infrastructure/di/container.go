package di

import (
	"go.uber.org/zap"

	commandbus "colorboard/application/commands/bus"
	"colorboard/application/ports"
	querybus "colorboard/application/queries/bus"
	"colorboard/application/services"
	domainconfig "colorboard/domain/config"
	"colorboard/infrastructure/config"
	"colorboard/pkg/ratelimit"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	DomainConfig *domainconfig.DomainConfig
	Logger       *zap.Logger
	Store        ports.BoardStore
	Publisher    ports.EventPublisher
	Completer    ports.Completer
	Searcher     ports.ImageSearcher
	Renderer     ports.BoardRenderer
	Limiter      ratelimit.Limiter
	Sessions     *services.SessionService
	Palette      *services.PaletteService
	Season       *services.SeasonService
	CommandBus   *commandbus.CommandBus
	QueryBus     *querybus.QueryBus
}
