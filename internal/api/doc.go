// Package api implements the HTTP handlers for the service: task CRUD,
// user registration, token-based login, and the informational endpoints.
// Handlers translate HTTP requests into store and auth service calls and
// map the resulting errors to status codes; they hold no state of their
// own beyond injected dependencies.
package api
