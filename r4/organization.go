package r4

import "slices"

// Organization is a formally or informally recognized grouping of people or organizations, e.g. a care provider.
type Organization struct {
	DomainResource
	Identifier []Identifier                 `json:"identifier,omitempty"`
	Active     *bool                        `json:"active,omitempty"`
	Type       []CodeableConcept            `json:"type,omitempty"`
	Name       *string                      `json:"name,omitempty"`
	Alias      []string                     `json:"alias,omitempty"`
	Telecom    []ContactPoint               `json:"telecom,omitempty"`
	Address    []Address                    `json:"address,omitempty"`
	PartOf     *Reference[OrganizationKind] `json:"partOf,omitempty"`
	Contact    []OrganizationContact        `json:"contact,omitempty"`
	Endpoint   []Reference[EndpointKind]    `json:"endpoint,omitempty"`
}

// OrganizationContact is a contact person of an Organization, e.g. for billing or administration.
type OrganizationContact struct {
	BackboneElement
	Purpose *CodeableConcept `json:"purpose,omitempty"`
	Name    *HumanName       `json:"name,omitempty"`
	Telecom []ContactPoint   `json:"telecom,omitempty"`
	Address *Address         `json:"address,omitempty"`
}

var _ Resource = Organization{}

// OrganizationFromJSON decodes an Organization from FHIR JSON.
func OrganizationFromJSON(data []byte) (Organization, error) {
	var result Organization
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return Organization{}, err
	}
	return result, nil
}

func (o Organization) ResourceType() string {
	return CanonicalName[OrganizationKind]()
}

// GetReferences returns endpoint[] followed by partOf.
func (o Organization) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, len(o.Endpoint)+1)
	refs = appendReferences(refs, o.Endpoint)
	refs = appendReference(refs, o.PartOf)
	return refs
}

// AsReference returns a reference to this organization, displaying its name.
func (o Organization) AsReference() (Reference[OrganizationKind], error) {
	return referenceTo[OrganizationKind](o.ID, o.Name)
}

func (o Organization) ToJSON() ([]byte, error) {
	return toJSON(o)
}

func (o Organization) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(o)
}

func (o Organization) MarshalJSON() ([]byte, error) {
	type plain Organization
	return marshalResource(o.ResourceType(), plain(o))
}

func (o *Organization) UnmarshalJSON(data []byte) error {
	type plain Organization
	var result plain
	if err := unmarshalResource(o.ResourceType(), data, &result); err != nil {
		return err
	}
	*o = Organization(result)
	return nil
}

func (o Organization) clone() Organization {
	o.Identifier = slices.Clone(o.Identifier)
	o.Type = slices.Clone(o.Type)
	o.Alias = slices.Clone(o.Alias)
	o.Telecom = slices.Clone(o.Telecom)
	o.Address = slices.Clone(o.Address)
	o.Contact = slices.Clone(o.Contact)
	o.Endpoint = slices.Clone(o.Endpoint)
	return o
}
