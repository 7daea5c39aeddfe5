package r4

import (
	"slices"

	"github.com/goccy/go-json"
)

// Endpoint is the technical details of an endpoint that can be used for electronic services,
// e.g. a FHIR server base URL.
type Endpoint struct {
	DomainResource
	Identifier           []Identifier                 `json:"identifier,omitempty"`
	Status               EndpointStatus               `json:"status"`
	ConnectionType       Coding                       `json:"connectionType"`
	Name                 *string                      `json:"name,omitempty"`
	ManagingOrganization *Reference[OrganizationKind] `json:"managingOrganization,omitempty"`
	Contact              []ContactPoint               `json:"contact,omitempty"`
	Period               *Period                      `json:"period,omitempty"`
	// PayloadType is required but may be empty. It is always written, as [] when empty.
	PayloadType     []CodeableConcept `json:"payloadType"`
	PayloadMimeType []string          `json:"payloadMimeType,omitempty"`
	Address         string            `json:"address"`
	Header          []string          `json:"header,omitempty"`
}

var _ Resource = Endpoint{}

// EndpointFromJSON decodes an Endpoint from FHIR JSON.
// status, connectionType, payloadType and address must be present.
func EndpointFromJSON(data []byte) (Endpoint, error) {
	var result Endpoint
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return Endpoint{}, err
	}
	return result, nil
}

func (e Endpoint) ResourceType() string {
	return CanonicalName[EndpointKind]()
}

// GetReferences returns managingOrganization.
func (e Endpoint) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, 1)
	refs = appendReference(refs, e.ManagingOrganization)
	return refs
}

// AsReference returns a reference to this endpoint, displaying its name.
func (e Endpoint) AsReference() (Reference[EndpointKind], error) {
	return referenceTo[EndpointKind](e.ID, e.Name)
}

func (e Endpoint) ToJSON() ([]byte, error) {
	return toJSON(e)
}

func (e Endpoint) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(e)
}

func (e Endpoint) MarshalJSON() ([]byte, error) {
	type plain Endpoint
	if e.PayloadType == nil {
		e.PayloadType = []CodeableConcept{}
	}
	return marshalResource(e.ResourceType(), plain(e))
}

type endpointPresence struct {
	Status         *json.RawMessage `json:"status" validate:"required"`
	ConnectionType *json.RawMessage `json:"connectionType" validate:"required"`
	PayloadType    *json.RawMessage `json:"payloadType" validate:"required"`
	Address        *json.RawMessage `json:"address" validate:"required"`
}

func (e *Endpoint) UnmarshalJSON(data []byte) error {
	type plain Endpoint
	var result plain
	if err := unmarshalResource(e.ResourceType(), data, &result); err != nil {
		return err
	}
	if err := checkRequired(data, &endpointPresence{}); err != nil {
		return err
	}
	*e = Endpoint(result)
	return nil
}

func (e Endpoint) clone() Endpoint {
	e.Identifier = slices.Clone(e.Identifier)
	e.Contact = slices.Clone(e.Contact)
	e.PayloadType = slices.Clone(e.PayloadType)
	e.PayloadMimeType = slices.Clone(e.PayloadMimeType)
	e.Header = slices.Clone(e.Header)
	return e
}
