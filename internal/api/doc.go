// Package api contains the HTTP handlers, request/response models and
// error mapping for the REST surface. Handlers decode and validate input,
// delegate to the service layer and translate service errors into sanitized
// HTTP responses.
package api
