package fetcher

import "fmt"

// TransportError reports a failed retrieval of a target URL. All transport
// failure modes (connection, DNS, timeout, non-success status) collapse into
// this one type; callers expose Detail but never branch on the failure mode.
type TransportError struct {
	URL    string
	Detail string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Detail)
}
