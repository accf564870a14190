package llm

import "fmt"

// UpstreamError describes a failed call to the generation provider.
//
// Transient marks failures expected to succeed on immediate retry (timeouts,
// 5xx, connection errors). ProviderRateLimit marks the provider's own quota
// response; it is deliberately distinct from this service's quota so callers
// can message the two differently.
type UpstreamError struct {
	Transient         bool
	ProviderRateLimit bool
	Err               error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.ProviderRateLimit:
		return fmt.Sprintf("provider rate limit: %v", e.Err)
	case e.Transient:
		return fmt.Sprintf("transient upstream failure: %v", e.Err)
	default:
		return fmt.Sprintf("upstream failure: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
