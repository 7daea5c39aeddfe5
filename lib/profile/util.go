package profile

import (
	"slices"

	"github.com/fouadsfarijlani/libfhir/r4"
)

// Set adds the profile to meta.profile, unless it's already there. The given meta is not modified.
func Set(meta *r4.Meta, profileURL string) *r4.Meta {
	result := r4.Meta{}
	if meta != nil {
		result = *meta
	}
	if !slices.Contains(result.Profile, profileURL) {
		result.Profile = append(slices.Clone(result.Profile), profileURL)
	}
	return &result
}
