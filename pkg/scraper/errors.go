package scraper

import "fmt"

// NetworkError means the page could not be fetched: transport failure,
// timeout or a non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to scrape %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to scrape %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ContentError means the page was fetched but did not yield enough text.
type ContentError struct {
	URL    string
	Length int
	Err    error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to scrape %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to scrape %s: insufficient content extracted from page (%d chars)", e.URL, e.Length)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
