// Package types provides type definitions for structured data used throughout the careeriq analysis pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// MatchRequest is the inbound analysis request: both texts are required,
// everything else is derived.
type MatchRequest struct {
	ResumeText     string `json:"resume_text"     validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// Validate reports whether the request carries both required texts.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}
