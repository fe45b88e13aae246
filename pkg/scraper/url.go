package scraper

import (
	"net/url"
	"strings"
)

// ValidURL accepts absolute http and https URLs only.
func ValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
