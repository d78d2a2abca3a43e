// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines constants for HTTP status codes, machine-readable
// error codes, headers, and content types used in API responses.
package constants

// HTTP Status Codes used by the API.
const (
	// StatusOK indicates a successful request.
	StatusOK = 200

	// StatusCreated indicates a resource was created successfully.
	StatusCreated = 201

	// StatusNoContent indicates success with no response body.
	StatusNoContent = 204

	// StatusBadRequest indicates a malformed or invalid request.
	StatusBadRequest = 400

	// StatusNotFound indicates the requested resource does not exist.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates the HTTP method is not supported.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates the request conflicts with existing state.
	StatusConflict = 409

	// StatusInternalServerError indicates an unexpected server error.
	StatusInternalServerError = 500

	// StatusServiceUnavailable indicates the backing store is unreachable.
	StatusServiceUnavailable = 503
)

// Response Flags indicate the outcome of a request in the response envelope.
const (
	// ResponseSuccess marks a successful response.
	ResponseSuccess = true

	// ResponseFailure marks a failed response.
	ResponseFailure = false
)

// Machine-readable error codes returned in error responses.
const (
	// CodeBadRequest identifies malformed request errors.
	CodeBadRequest = "bad_request"

	// CodeNotFound identifies missing resource errors.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed identifies unsupported HTTP method errors.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict identifies duplicate resource errors.
	CodeConflict = "conflict"

	// CodeInternalError identifies unexpected server errors.
	CodeInternalError = "internal_error"

	// CodeValidationError identifies input validation failures.
	CodeValidationError = "validation_error"

	// CodeServiceUnavailable identifies store connectivity failures.
	CodeServiceUnavailable = "service_unavailable"
)

// HTTP Headers used by the API.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"

	// HeaderXRequestID is the request correlation header name.
	HeaderXRequestID = "X-Request-ID"
)

// Content Types used by the API.
const (
	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON = "application/json"
)
