// Package util turns the typed pipeline errors into stable HTTP responses.
package util

import (
	"errors"
	"net/http"

	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/quadrant"
)

// ErrorBody is the JSON error shape every handler returns.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorStatus maps a pipeline error onto its HTTP status and response
// body. Acquisition failures of the upstream source are 502, caller
// mistakes are 400, content the pipeline rejects is 422, everything
// unrecognized is 500.
func ErrorStatus(err error) (int, ErrorResponse) {
	var acqErr *loader.AcquisitionError
	if errors.As(err, &acqErr) {
		status := http.StatusBadRequest
		switch acqErr.Reason {
		case loader.ReasonUnreachable, loader.ReasonBadStatus:
			status = http.StatusBadGateway
		case loader.ReasonEmpty:
			status = http.StatusUnprocessableEntity
		}
		return status, ErrorResponse{Error: ErrorBody{
			Kind:    "acquisition",
			Reason:  acqErr.Reason,
			Field:   string(acqErr.Source.Type),
			Message: acqErr.Error(),
		}}
	}

	var extErr *insight.ExtractionError
	if errors.As(err, &extErr) {
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorBody{
			Kind:    "extraction",
			Reason:  string(extErr.Reason),
			Message: extErr.Error(),
		}}
	}

	var clsErr *quadrant.ClassificationError
	if errors.As(err, &clsErr) {
		return http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind:    "classification",
			Reason:  clsErr.Reason,
			Field:   clsErr.Field,
			Message: clsErr.Error(),
		}}
	}

	var rndErr *quadrant.RenderError
	if errors.As(err, &rndErr) {
		return http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind:    "render",
			Reason:  rndErr.Reason,
			Field:   rndErr.Field,
			Message: rndErr.Error(),
		}}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
		Kind:    "internal",
		Message: "internal server error",
	}}
}

// ValidationResponse is the body for request bind/validate failures.
func ValidationResponse() ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Kind:    "request",
		Reason:  "invalid_body",
		Message: "Invalid request body",
	}}
}
