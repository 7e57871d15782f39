package providers

import "fmt"

// ProviderError carries a machine-readable code alongside the upstream
// detail for every external-source failure.
type ProviderError struct {
	Code    string
	Message string
	Details string
	Status  int
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProviderErrorCode extracts the code from an error if it is a ProviderError.
func ProviderErrorCode(err error) string {
	if perr, ok := err.(*ProviderError); ok {
		return perr.Code
	}
	return ""
}
