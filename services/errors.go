package services

import "fmt"

// UpstreamError carries the status and body of a failed model-provider call
// so handlers can relay both to the client per the API contract.
type UpstreamError struct {
	Status  int
	Message string
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
}
