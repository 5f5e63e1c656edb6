// Package server provides the admin HTTP server of asyncd.
//
// The server uses the Gin web framework. It mounts the API handlers under
// /api/v1 and the Prometheus scrape endpoint on /metrics.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request/response logging)               │  │
//	│  │  ginzap.RecoveryWithZap (panic recovery)                │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics   → promhttp handler for the given Gatherer         │
//	│  /api/v1/*  → handlers registered via callback                │
//	│  anything else → 404 JSON error                               │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
//   - dev: Gin runs in debug mode
//   - prod: Gin runs in release mode
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, registry, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
//	// Blocks until Stop or a listen error
//	go srv.Start(ctx)
//
//	<-ctx.Done()
//	srv.Stop(context.Background())
//
// Stop performs a graceful shutdown bounded to ten seconds, waiting for
// in-flight requests to complete.
package server
