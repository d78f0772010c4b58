// Package service contains the application-specific use cases and
// business logic. It orchestrates interactions between domain objects
// and the stores defined in internal/store to fulfill application
// features, translating store errors into service-level errors the API
// layer can map to HTTP status codes.
//
// Services receive their dependencies through constructor injection and
// never depend on concrete infrastructure implementations.
package service
