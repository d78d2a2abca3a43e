// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines user-facing error messages. These are carefully
// worded to be informative without revealing implementation details.
package constants

// User-Facing Error Messages define standardized messages that can be safely
// presented to API clients.
const (
	// MsgResourceNotFound indicates that a requested resource could not be found.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgInternalServerError indicates an unexpected internal error.
	MsgInternalServerError = "An internal server error occurred"

	// MsgMethodNotAllowed indicates the HTTP method is not supported for the route.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgMissingFields indicates that required fields were absent or empty.
	MsgMissingFields = "Missing required fields"

	// MsgEmptyRequestBody indicates that the request body was empty.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body was not valid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgRequestBodyTooLarge indicates that the request body exceeded the size limit.
	MsgRequestBodyTooLarge = "Request body must not exceed 1MB"

	// MsgNoTextProvided indicates a keyword check request without text.
	MsgNoTextProvided = "No text provided"

	// MsgDatabaseNotConfigured indicates the service has no database configured.
	MsgDatabaseNotConfigured = "Database not configured"

	// MsgDatabaseUnavailable indicates the database is configured but unreachable.
	MsgDatabaseUnavailable = "Database is temporarily unavailable"
)
