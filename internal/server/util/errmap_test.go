package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/quadrant"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantReason string
	}{
		{
			name: "unreachable source",
			err: &loader.AcquisitionError{
				Source: loader.Source{Type: loader.SourceTypeURL, Value: "https://example.com"},
				Reason: loader.ReasonUnreachable,
			},
			wantStatus: http.StatusBadGateway,
			wantKind:   "acquisition",
			wantReason: "unreachable",
		},
		{
			name: "bad upstream status",
			err: &loader.AcquisitionError{
				Source: loader.Source{Type: loader.SourceTypeURL, Value: "https://example.com"},
				Reason: loader.ReasonBadStatus,
				Detail: "503 Service Unavailable",
			},
			wantStatus: http.StatusBadGateway,
			wantKind:   "acquisition",
			wantReason: "bad_status",
		},
		{
			name: "unsupported source",
			err: &loader.AcquisitionError{
				Source: loader.Source{Type: loader.SourceTypeFile, Value: "x.tar"},
				Reason: loader.ReasonUnsupported,
			},
			wantStatus: http.StatusBadRequest,
			wantKind:   "acquisition",
			wantReason: "unsupported",
		},
		{
			name: "oversized source",
			err: &loader.AcquisitionError{
				Source: loader.Source{Type: loader.SourceTypeFile, Value: "big.txt"},
				Reason: loader.ReasonTooLarge,
			},
			wantStatus: http.StatusBadRequest,
			wantKind:   "acquisition",
			wantReason: "too_large",
		},
		{
			name: "empty source",
			err: &loader.AcquisitionError{
				Source: loader.Source{Type: loader.SourceTypeURL, Value: "https://example.com"},
				Reason: loader.ReasonEmpty,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "acquisition",
			wantReason: "empty",
		},
		{
			name:       "content too short",
			err:        &insight.ExtractionError{Reason: insight.ReasonTooShort, Length: 50, Required: 100},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "extraction",
			wantReason: "too_short",
		},
		{
			name:       "coordinate out of range",
			err:        &quadrant.ClassificationError{Reason: quadrant.ReasonOutOfRange, Field: "x", Value: 1.5},
			wantStatus: http.StatusBadRequest,
			wantKind:   "classification",
			wantReason: "out_of_range",
		},
		{
			name:       "invalid render option",
			err:        &quadrant.RenderError{Reason: quadrant.ReasonInvalidOption, Field: "width", Value: "-10"},
			wantStatus: http.StatusBadRequest,
			wantKind:   "render",
			wantReason: "invalid_option",
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
			wantReason: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ErrorStatus(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Error.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", body.Error.Kind, tt.wantKind)
			}
			if body.Error.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", body.Error.Reason, tt.wantReason)
			}
			if body.Error.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestErrorStatusUnwrapsWrappedErrors(t *testing.T) {
	inner := &insight.ExtractionError{Reason: insight.ReasonEmptyContent}
	wrapped := fmt.Errorf("running pipeline: %w", inner)

	status, body := ErrorStatus(wrapped)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", status, http.StatusUnprocessableEntity)
	}
	if body.Error.Kind != "extraction" {
		t.Errorf("kind = %q, want extraction", body.Error.Kind)
	}
}

func TestErrorStatusInternalHidesDetails(t *testing.T) {
	_, body := ErrorStatus(errors.New("pgx: connection refused on 10.0.0.3"))
	if body.Error.Message != "internal server error" {
		t.Errorf("internal error leaked detail: %q", body.Error.Message)
	}
}
