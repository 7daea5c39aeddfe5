package r4

import "slices"

// PractitionerRole is a set of roles, specialties and services a Practitioner performs at an Organization.
type PractitionerRole struct {
	DomainResource
	Identifier             []Identifier                       `json:"identifier,omitempty"`
	Active                 *bool                              `json:"active,omitempty"`
	Period                 *Period                            `json:"period,omitempty"`
	Practitioner           *Reference[PractitionerKind]       `json:"practitioner,omitempty"`
	Organization           *Reference[OrganizationKind]       `json:"organization,omitempty"`
	Code                   []CodeableConcept                  `json:"code,omitempty"`
	Specialty              []CodeableConcept                  `json:"specialty,omitempty"`
	Location               []Reference[LocationKind]          `json:"location,omitempty"`
	HealthcareService      []Reference[HealthcareServiceKind] `json:"healthcareService,omitempty"`
	Telecom                []ContactPoint                     `json:"telecom,omitempty"`
	AvailableTime          []AvailableTime                    `json:"availableTime,omitempty"`
	NotAvailable           []NotAvailable                     `json:"notAvailable,omitempty"`
	AvailabilityExceptions *string                            `json:"availabilityExceptions,omitempty"`
	Endpoint               []Reference[EndpointKind]          `json:"endpoint,omitempty"`
}

var _ Resource = PractitionerRole{}

// PractitionerRoleFromJSON decodes a PractitionerRole from FHIR JSON.
func PractitionerRoleFromJSON(data []byte) (PractitionerRole, error) {
	var result PractitionerRole
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return PractitionerRole{}, err
	}
	return result, nil
}

func (r PractitionerRole) ResourceType() string {
	return CanonicalName[PractitionerRoleKind]()
}

// GetReferences returns practitioner, organization, location[], healthcareService[], then endpoint[].
func (r PractitionerRole) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, 2+len(r.Location)+len(r.HealthcareService)+len(r.Endpoint))
	refs = appendReference(refs, r.Practitioner)
	refs = appendReference(refs, r.Organization)
	refs = appendReferences(refs, r.Location)
	refs = appendReferences(refs, r.HealthcareService)
	refs = appendReferences(refs, r.Endpoint)
	return refs
}

// AsReference returns a reference to this role. Roles have no name, so the reference has no display.
func (r PractitionerRole) AsReference() (Reference[PractitionerRoleKind], error) {
	return referenceTo[PractitionerRoleKind](r.ID, nil)
}

func (r PractitionerRole) ToJSON() ([]byte, error) {
	return toJSON(r)
}

func (r PractitionerRole) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(r)
}

func (r PractitionerRole) MarshalJSON() ([]byte, error) {
	type plain PractitionerRole
	return marshalResource(r.ResourceType(), plain(r))
}

func (r *PractitionerRole) UnmarshalJSON(data []byte) error {
	type plain PractitionerRole
	var result plain
	if err := unmarshalResource(r.ResourceType(), data, &result); err != nil {
		return err
	}
	*r = PractitionerRole(result)
	return nil
}

func (r PractitionerRole) clone() PractitionerRole {
	r.Identifier = slices.Clone(r.Identifier)
	r.Code = slices.Clone(r.Code)
	r.Specialty = slices.Clone(r.Specialty)
	r.Location = slices.Clone(r.Location)
	r.HealthcareService = slices.Clone(r.HealthcareService)
	r.Telecom = slices.Clone(r.Telecom)
	r.AvailableTime = slices.Clone(r.AvailableTime)
	r.NotAvailable = slices.Clone(r.NotAvailable)
	r.Endpoint = slices.Clone(r.Endpoint)
	return r
}
