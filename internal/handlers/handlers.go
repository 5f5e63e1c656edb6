package handlers

import (
	v1 "github.com/tupyy/async-engine/api/v1"
	"github.com/tupyy/async-engine/internal/services"
	"github.com/tupyy/async-engine/pkg/scheduler"
)

// StatsProvider reports the live state of the engine.
type StatsProvider interface {
	Stats() scheduler.Stats
}

type Handler struct {
	stats       StatsProvider
	parallelism *services.Parallelism
	jobsSrv     *services.Jobs
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(stats StatsProvider, parallelism *services.Parallelism, jobsSrv *services.Jobs) *Handler {
	return &Handler{
		stats:       stats,
		parallelism: parallelism,
		jobsSrv:     jobsSrv,
	}
}
