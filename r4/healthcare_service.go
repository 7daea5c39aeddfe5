package r4

import "slices"

// HealthcareService is a service provided by an Organization at one or more Locations.
type HealthcareService struct {
	DomainResource
	Identifier             []Identifier                 `json:"identifier,omitempty"`
	Active                 *bool                        `json:"active,omitempty"`
	ProvidedBy             *Reference[OrganizationKind] `json:"providedBy,omitempty"`
	Category               []CodeableConcept            `json:"category,omitempty"`
	Type                   []CodeableConcept            `json:"type,omitempty"`
	Specialty              []CodeableConcept            `json:"specialty,omitempty"`
	Location               []Reference[LocationKind]    `json:"location,omitempty"`
	Name                   *string                      `json:"name,omitempty"`
	Comment                *string                      `json:"comment,omitempty"`
	ExtraDetails           *string                      `json:"extraDetails,omitempty"`
	Photo                  *Attachment                  `json:"photo,omitempty"`
	Telecom                []ContactPoint               `json:"telecom,omitempty"`
	CoverageArea           []Reference[LocationKind]    `json:"coverageArea,omitempty"`
	ServiceProvisionCode   []CodeableConcept            `json:"serviceProvisionCode,omitempty"`
	Eligibility            []Eligibility                `json:"eligibility,omitempty"`
	Program                []CodeableConcept            `json:"program,omitempty"`
	Characteristic         []CodeableConcept            `json:"characteristic,omitempty"`
	Communication          []CodeableConcept            `json:"communication,omitempty"`
	ReferralMethod         []CodeableConcept            `json:"referralMethod,omitempty"`
	AppointmentRequired    *bool                        `json:"appointmentRequired,omitempty"`
	AvailableTime          []AvailableTime              `json:"availableTime,omitempty"`
	NotAvailable           []NotAvailable               `json:"notAvailable,omitempty"`
	AvailabilityExceptions *string                      `json:"availabilityExceptions,omitempty"`
	Endpoint               []Reference[EndpointKind]    `json:"endpoint,omitempty"`
}

// Eligibility is a condition under which a HealthcareService can be used.
type Eligibility struct {
	BackboneElement
	Code    *CodeableConcept `json:"code,omitempty"`
	Comment *string          `json:"comment,omitempty"`
}

var _ Resource = HealthcareService{}

// HealthcareServiceFromJSON decodes a HealthcareService from FHIR JSON.
func HealthcareServiceFromJSON(data []byte) (HealthcareService, error) {
	var result HealthcareService
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return HealthcareService{}, err
	}
	return result, nil
}

func (s HealthcareService) ResourceType() string {
	return CanonicalName[HealthcareServiceKind]()
}

// GetReferences returns providedBy, location[], coverageArea[], then endpoint[].
func (s HealthcareService) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, 1+len(s.Location)+len(s.CoverageArea)+len(s.Endpoint))
	refs = appendReference(refs, s.ProvidedBy)
	refs = appendReferences(refs, s.Location)
	refs = appendReferences(refs, s.CoverageArea)
	refs = appendReferences(refs, s.Endpoint)
	return refs
}

// AsReference returns a reference to this service, displaying its name.
func (s HealthcareService) AsReference() (Reference[HealthcareServiceKind], error) {
	return referenceTo[HealthcareServiceKind](s.ID, s.Name)
}

func (s HealthcareService) ToJSON() ([]byte, error) {
	return toJSON(s)
}

func (s HealthcareService) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(s)
}

func (s HealthcareService) MarshalJSON() ([]byte, error) {
	type plain HealthcareService
	return marshalResource(s.ResourceType(), plain(s))
}

func (s *HealthcareService) UnmarshalJSON(data []byte) error {
	type plain HealthcareService
	var result plain
	if err := unmarshalResource(s.ResourceType(), data, &result); err != nil {
		return err
	}
	*s = HealthcareService(result)
	return nil
}

func (s HealthcareService) clone() HealthcareService {
	s.Identifier = slices.Clone(s.Identifier)
	s.Category = slices.Clone(s.Category)
	s.Type = slices.Clone(s.Type)
	s.Specialty = slices.Clone(s.Specialty)
	s.Location = slices.Clone(s.Location)
	s.Telecom = slices.Clone(s.Telecom)
	s.CoverageArea = slices.Clone(s.CoverageArea)
	s.ServiceProvisionCode = slices.Clone(s.ServiceProvisionCode)
	s.Eligibility = slices.Clone(s.Eligibility)
	s.Program = slices.Clone(s.Program)
	s.Characteristic = slices.Clone(s.Characteristic)
	s.Communication = slices.Clone(s.Communication)
	s.ReferralMethod = slices.Clone(s.ReferralMethod)
	s.AvailableTime = slices.Clone(s.AvailableTime)
	s.NotAvailable = slices.Clone(s.NotAvailable)
	s.Endpoint = slices.Clone(s.Endpoint)
	return s
}
