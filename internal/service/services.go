// Package service wires the application services over the shared
// storage and Redis collaborators.
package service

import (
	"log/slog"
	"time"

	postgresrepo "github.com/andresmdz/rifa-go/internal/repository/postgres"
	redisrepo "github.com/andresmdz/rifa-go/internal/repository/redis"
	"github.com/andresmdz/rifa-go/internal/service/draw"
	"github.com/andresmdz/rifa-go/internal/service/query"
	"github.com/andresmdz/rifa-go/internal/service/raffles"
	"github.com/andresmdz/rifa-go/internal/service/sales"
)

type Services struct {
	Raffles *raffles.Service
	Sales   *sales.Service
	Query   *query.Service
	Draw    *draw.Service
}

type Deps struct {
	Log      *slog.Logger
	Store    *postgresrepo.Store
	Cache    *redisrepo.Cache
	PubSub   *redisrepo.EventsPubSub
	Pending  *redisrepo.PendingSaleStore
	Idem     *redisrepo.IdempotencyStore
	Limiter  *redisrepo.SlidingWindowLimiter
	CacheTTL time.Duration
}

func NewServices(d Deps) *Services {
	return &Services{
		Raffles: raffles.New(d.Store, d.Cache, d.PubSub),
		Sales:   sales.New(d.Log, d.Store, d.Cache, d.PubSub, d.Pending, d.Idem, d.Limiter),
		Query:   query.New(d.Store, d.Cache, d.CacheTTL),
		Draw:    draw.New(d.Store),
	}
}
