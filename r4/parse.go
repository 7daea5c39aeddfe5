package r4

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ParseResource decodes FHIR JSON into the resource named by its resourceType.
// It returns a ParseError if resourceType is missing or names a resource this package doesn't support.
func ParseResource(data []byte) (Resource, error) {
	var header struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, parseError("", err)
	}
	switch header.ResourceType {
	case CanonicalName[OrganizationKind]():
		return parseAs(OrganizationFromJSON, data)
	case CanonicalName[EndpointKind]():
		return parseAs(EndpointFromJSON, data)
	case CanonicalName[LocationKind]():
		return parseAs(LocationFromJSON, data)
	case CanonicalName[PractitionerKind]():
		return parseAs(PractitionerFromJSON, data)
	case CanonicalName[HealthcareServiceKind]():
		return parseAs(HealthcareServiceFromJSON, data)
	case CanonicalName[PractitionerRoleKind]():
		return parseAs(PractitionerRoleFromJSON, data)
	case CanonicalName[OrganizationAffiliationKind]():
		return parseAs(OrganizationAffiliationFromJSON, data)
	case "":
		return nil, &ParseError{Field: "resourceType", Err: errors.New("missing resourceType")}
	default:
		return nil, &ParseError{
			ResourceType: header.ResourceType,
			Field:        "resourceType",
			Err:          fmt.Errorf("%w: %q", ErrUnsupportedResourceType, header.ResourceType),
		}
	}
}

func parseAs[T Resource](fromJSON func([]byte) (T, error), data []byte) (Resource, error) {
	resource, err := fromJSON(data)
	if err != nil {
		return nil, err
	}
	return resource, nil
}
