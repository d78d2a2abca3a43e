// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines route paths and URL parameter names.
package constants

// Base paths.
const (
	// APIBasePath is the prefix for all API routes.
	APIBasePath = "/api"

	// HealthPath is the health check endpoint path.
	HealthPath = "/health"
)

// URL path parameter names used with chi.URLParam.
const (
	// ParamID is the numeric key of a blacklist record.
	ParamID = "id"

	// ParamKeyword is the keyword text of a flagged keyword record.
	ParamKeyword = "keyword"

	// ParamTier selects a keyword tier in keyword management routes.
	ParamTier = "tier"

	// ParamUsername is the username fragment of a cross-entity search.
	ParamUsername = "username"
)
