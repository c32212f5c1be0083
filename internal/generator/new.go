package generator

import (
	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
)

type implGenerator struct {
	cfg     *config.Config
	factory ProviderFactory
	logger  logger.Logger
}

// New creates a Generator. The provider is chosen from cfg on every call.
func New(cfg *config.Config, log logger.Logger) Generator {
	return NewWithFactory(cfg, SelectProvider, log)
}

func NewWithFactory(cfg *config.Config, factory ProviderFactory, log logger.Logger) Generator {
	return &implGenerator{
		cfg:     cfg,
		factory: factory,
		logger:  log,
	}
}
