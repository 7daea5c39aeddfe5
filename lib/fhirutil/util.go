package fhirutil

import (
	"fmt"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// ResourceInfo contains common FHIR resource fields extracted from JSON
type ResourceInfo struct {
	ID           string
	ResourceType string
	LastUpdated  *time.Time
}

// ExtractResourceInfo extracts common FHIR resource fields from JSON bytes.
// It does not require knowledge of the specific resource type, so it also works for resources
// the r4 package can't parse.
func ExtractResourceInfo(resourceJSON []byte) (*ResourceInfo, error) {
	var resource struct {
		ResourceType string `json:"resourceType"`
		ID           string `json:"id"`
		Meta         *struct {
			LastUpdated string `json:"lastUpdated"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(resourceJSON, &resource); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resource: %w", err)
	}

	info := &ResourceInfo{
		ID:           resource.ID,
		ResourceType: resource.ResourceType,
	}
	if resource.Meta != nil {
		if t, err := time.Parse(time.RFC3339, resource.Meta.LastUpdated); err == nil {
			info.LastUpdated = &t
		}
	}
	return info, nil
}

// BuildSourceURL constructs a consistent FHIR source URL from a base URL and resource reference.
// Examples:
//   - BuildSourceURL("https://example.com/fhir", "Organization/123") -> "https://example.com/fhir/Organization/123"
//   - BuildSourceURL("https://example.com/fhir/", "Endpoint", "456") -> "https://example.com/fhir/Endpoint/456"
func BuildSourceURL(baseURL string, parts ...string) (string, error) {
	return url.JoinPath(baseURL, parts...)
}
