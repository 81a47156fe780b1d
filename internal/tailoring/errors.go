package tailoring

import "fmt"

// ProviderError reports a failed completion call. The provider's error is
// surfaced verbatim and the run aborts; there is no retry.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// SchemaMismatchError reports that the provider's output did not parse back
// into the baseline schema's shape. RawResponse carries the provider output
// for inspection.
type SchemaMismatchError struct {
	Message     string
	RawResponse string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch: %s (inspect the provider's raw response to see what it returned)", e.Message)
}
