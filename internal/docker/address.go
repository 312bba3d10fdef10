package docker

import (
	"fmt"
	"regexp"
)

var ipv4Pattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// ExtractAddress returns the first IPv4 address in a nodetool status
// report. A missing address means the report format is not what nodetool
// produces, so the failure is hard and never retried.
func ExtractAddress(statusReport string) (string, error) {
	match := ipv4Pattern.FindString(statusReport)
	if match == "" {
		return "", fmt.Errorf("%w: no IPv4 address in status report", ErrPatternNotFound)
	}
	return match, nil
}
