package r4

import "slices"

// OrganizationAffiliation is a relationship between two organizations, e.g. membership of a care network.
type OrganizationAffiliation struct {
	DomainResource
	Identifier                []Identifier                       `json:"identifier,omitempty"`
	Active                    *bool                              `json:"active,omitempty"`
	Period                    *Period                            `json:"period,omitempty"`
	Organization              *Reference[OrganizationKind]       `json:"organization,omitempty"`
	ParticipatingOrganization *Reference[OrganizationKind]       `json:"participatingOrganization,omitempty"`
	Network                   []Reference[OrganizationKind]      `json:"network,omitempty"`
	Code                      []CodeableConcept                  `json:"code,omitempty"`
	Specialty                 []CodeableConcept                  `json:"specialty,omitempty"`
	Location                  []Reference[LocationKind]          `json:"location,omitempty"`
	HealthcareService         []Reference[HealthcareServiceKind] `json:"healthcareService,omitempty"`
	Telecom                   []ContactPoint                     `json:"telecom,omitempty"`
	Endpoint                  []Reference[EndpointKind]          `json:"endpoint,omitempty"`
}

var _ Resource = OrganizationAffiliation{}

// OrganizationAffiliationFromJSON decodes an OrganizationAffiliation from FHIR JSON.
func OrganizationAffiliationFromJSON(data []byte) (OrganizationAffiliation, error) {
	var result OrganizationAffiliation
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return OrganizationAffiliation{}, err
	}
	return result, nil
}

func (a OrganizationAffiliation) ResourceType() string {
	return CanonicalName[OrganizationAffiliationKind]()
}

// GetReferences returns organization, participatingOrganization, network[], location[],
// healthcareService[], then endpoint[].
func (a OrganizationAffiliation) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, 2+len(a.Network)+len(a.Location)+len(a.HealthcareService)+len(a.Endpoint))
	refs = appendReference(refs, a.Organization)
	refs = appendReference(refs, a.ParticipatingOrganization)
	refs = appendReferences(refs, a.Network)
	refs = appendReferences(refs, a.Location)
	refs = appendReferences(refs, a.HealthcareService)
	refs = appendReferences(refs, a.Endpoint)
	return refs
}

// AsReference returns a reference to this affiliation, without display.
func (a OrganizationAffiliation) AsReference() (Reference[OrganizationAffiliationKind], error) {
	return referenceTo[OrganizationAffiliationKind](a.ID, nil)
}

func (a OrganizationAffiliation) ToJSON() ([]byte, error) {
	return toJSON(a)
}

func (a OrganizationAffiliation) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(a)
}

func (a OrganizationAffiliation) MarshalJSON() ([]byte, error) {
	type plain OrganizationAffiliation
	return marshalResource(a.ResourceType(), plain(a))
}

func (a *OrganizationAffiliation) UnmarshalJSON(data []byte) error {
	type plain OrganizationAffiliation
	var result plain
	if err := unmarshalResource(a.ResourceType(), data, &result); err != nil {
		return err
	}
	*a = OrganizationAffiliation(result)
	return nil
}

func (a OrganizationAffiliation) clone() OrganizationAffiliation {
	a.Identifier = slices.Clone(a.Identifier)
	a.Network = slices.Clone(a.Network)
	a.Code = slices.Clone(a.Code)
	a.Specialty = slices.Clone(a.Specialty)
	a.Location = slices.Clone(a.Location)
	a.HealthcareService = slices.Clone(a.HealthcareService)
	a.Telecom = slices.Clone(a.Telecom)
	a.Endpoint = slices.Clone(a.Endpoint)
	return a
}
