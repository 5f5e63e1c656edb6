// Package handlers implements the admin HTTP API of asyncd.
//
// Handlers delegate to the services layer and focus on request validation,
// response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation (gin binding tags)                        │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│           Services Layer: Parallelism │ Jobs                    │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬────────────┬──────────────────────────────────────────────┐
//	│ Method │ Endpoint   │ Description                                  │
//	├────────┼────────────┼──────────────────────────────────────────────┤
//	│ GET    │ /scheduler │ Pool size, desired size and queue statistics │
//	│ PUT    │ /scheduler │ Change the desired pool size                 │
//	│ GET    │ /jobs      │ List jobs, oldest first                      │
//	│ POST   │ /jobs      │ Submit a synthetic job                       │
//	│ GET    │ /jobs/{id} │ Get a job                                    │
//	│ DELETE │ /jobs/{id} │ Cancel a job                                 │
//	└────────┴────────────┴──────────────────────────────────────────────┘
//
// PUT /scheduler:
//
//	{ "workers": 4 }   // negative means one worker per CPU
//
// POST /jobs:
//
//	{
//	    "steps": 10,            // required, step calls before completion
//	    "stepDurationMs": 5,    // work done by a single step call
//	    "priority": 0,          // lower runs first
//	    "independent": false    // run on a dedicated thread instead of the pool
//	}
//
// Response: 202 Accepted with the job.
//
// # Error Handling
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ Validation error            │ 400    │ Invalid request body         │
//	│ ResourceNotFoundError       │ 404    │ Unknown job id               │
//	│ Internal error              │ 500    │ Unexpected service errors    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// Errors use the format:
//
//	{ "error": "error message" }
package handlers
