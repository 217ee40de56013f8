package loader

import (
	"context"
	"errors"
	"strings"

	"github.com/insightgrid/insightgrid/internal/util"
)

// Resolver dispatches a source to the loader that owns its kind and
// normalizes the result into cleaned text. A nil loader marks its source
// kind as unsupported in this deployment, e.g. no S3 bucket configured.
type Resolver struct {
	Web   TextLoader
	File  TextLoader
	S3    TextLoader
	Image TextLoader

	// MaxTokens caps the resolved text; 0 disables the cap.
	MaxTokens int
	// Retries bounds transient reloads of non-text sources; values
	// below 1 mean a single attempt.
	Retries int
}

// Resolve turns a source into cleaned text. Text sources pass through
// untouched except for normalization; every other kind is loaded, made
// valid UTF-8, trimmed and capped to the token budget. All failures are
// reported as *AcquisitionError.
func (r *Resolver) Resolve(ctx context.Context, src Source) (string, error) {
	if !src.Type.Valid() {
		return "", &AcquisitionError{Source: src, Reason: ReasonUnsupported, Detail: "unknown source type"}
	}

	var raw string
	if src.Type == SourceTypeText {
		raw = src.Value
	} else {
		ldr := r.loaderFor(src.Type)
		if ldr == nil {
			return "", &AcquisitionError{Source: src, Reason: ReasonUnsupported, Detail: "no loader configured"}
		}
		content, err := util.RetryWithContext(ctx, r.Retries, func(ctx context.Context) ([]byte, error) {
			return ldr.LoadText(ctx, src)
		})
		if err != nil {
			var acqErr *AcquisitionError
			if errors.As(err, &acqErr) {
				return "", err
			}
			return "", &AcquisitionError{Source: src, Reason: ReasonUnreachable, Err: err}
		}
		raw = string(content)
	}

	text := strings.TrimSpace(util.SanitizeUTF8(raw))
	if text == "" {
		return "", &AcquisitionError{Source: src, Reason: ReasonEmpty}
	}

	capped, err := CapTokens(text, r.MaxTokens)
	if err != nil {
		return "", &AcquisitionError{Source: src, Reason: ReasonTooLarge, Detail: "token cap failed", Err: err}
	}
	return capped, nil
}

func (r *Resolver) loaderFor(t SourceType) TextLoader {
	switch t {
	case SourceTypeURL:
		return r.Web
	case SourceTypeFile:
		return r.File
	case SourceTypeS3:
		return r.S3
	case SourceTypeImage:
		return r.Image
	}
	return nil
}
