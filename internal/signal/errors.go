package signal

import "errors"

// ErrInvalidInput marks a malformed analysis request: missing artifact kind,
// empty signal name, confidence out of range. Recoverable by the caller.
var ErrInvalidInput = errors.New("invalid input")

// ExtractionError reports that the external feature extractor failed for an
// artifact. The core propagates it unchanged and never retries; retry policy,
// if any, belongs to the caller.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Reason
}

// IsExtractionFailed reports whether err is (or wraps) an ExtractionError.
func IsExtractionFailed(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}
