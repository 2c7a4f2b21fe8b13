package domain

import "fmt"

// APIError is the catalog backend's problem shape mapped into the
// domain. It implements error so adapters can return it directly.
type APIError struct {
	Status    int
	Title     string
	ErrorCode string
	Detail    string
	Source    *APIErrorSource
}

type APIErrorSource struct {
	Field      string
	SourceType string
}

func (e APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("catalog api: %d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("catalog api: %d %s", e.Status, e.Title)
}
