package fhirutil

import (
	"fmt"

	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/goccy/go-json"
)

// ToModel converts a resource into its golang-fhir-models counterpart, e.g. r4.Organization into fhir.Organization.
// The conversion goes through the FHIR JSON representation, so any T that decodes that JSON works.
func ToModel[T any](resource r4.Resource) (T, error) {
	var result T
	data, err := resource.ToJSON()
	if err != nil {
		return result, fmt.Errorf("marshal %s: %w", resource.ResourceType(), err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("unmarshal %s into %T: %w", resource.ResourceType(), result, err)
	}
	return result, nil
}

// FromModel converts a golang-fhir-models resource (e.g. fhir.Endpoint) into the matching r4 resource.
// The model must marshal its resourceType, which the generated models do.
func FromModel(model any) (r4.Resource, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", model, err)
	}
	return r4.ParseResource(data)
}
