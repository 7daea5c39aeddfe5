package r4

import (
	"slices"

	"github.com/goccy/go-json"
)

// Practitioner is a person who is directly or indirectly involved in the provisioning of healthcare.
type Practitioner struct {
	DomainResource
	Identifier    []Identifier                `json:"identifier,omitempty"`
	Active        *bool                       `json:"active,omitempty"`
	Name          []HumanName                 `json:"name,omitempty"`
	Telecom       []ContactPoint              `json:"telecom,omitempty"`
	Address       []Address                   `json:"address,omitempty"`
	Gender        *AdministrativeGender       `json:"gender,omitempty"`
	BirthDate     *string                     `json:"birthDate,omitempty"`
	Photo         []Attachment                `json:"photo,omitempty"`
	Qualification []PractitionerQualification `json:"qualification,omitempty"`
	Communication []CodeableConcept           `json:"communication,omitempty"`
}

// PractitionerQualification is a certification, license or training of a Practitioner.
type PractitionerQualification struct {
	BackboneElement
	Identifier []Identifier                 `json:"identifier,omitempty"`
	Code       CodeableConcept              `json:"code"`
	Period     *Period                      `json:"period,omitempty"`
	Issuer     *Reference[OrganizationKind] `json:"issuer,omitempty"`
}

type practitionerQualificationPresence struct {
	Code *json.RawMessage `json:"code" validate:"required"`
}

func (q *PractitionerQualification) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, &practitionerQualificationPresence{}); err != nil {
		return err
	}
	type plain PractitionerQualification
	return json.Unmarshal(data, (*plain)(q))
}

var _ Resource = Practitioner{}

// PractitionerFromJSON decodes a Practitioner from FHIR JSON.
func PractitionerFromJSON(data []byte) (Practitioner, error) {
	var result Practitioner
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return Practitioner{}, err
	}
	return result, nil
}

func (p Practitioner) ResourceType() string {
	return CanonicalName[PractitionerKind]()
}

// GetReferences returns the issuer of every qualification, in qualification order.
func (p Practitioner) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, len(p.Qualification))
	for _, qualification := range p.Qualification {
		refs = appendReference(refs, qualification.Issuer)
	}
	return refs
}

// AsReference returns a reference to this practitioner, displaying the first name.
func (p Practitioner) AsReference() (Reference[PractitionerKind], error) {
	var display *string
	if len(p.Name) > 0 {
		if name := p.Name[0].String(); name != "" {
			display = &name
		}
	}
	return referenceTo[PractitionerKind](p.ID, display)
}

func (p Practitioner) ToJSON() ([]byte, error) {
	return toJSON(p)
}

func (p Practitioner) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(p)
}

func (p Practitioner) MarshalJSON() ([]byte, error) {
	type plain Practitioner
	return marshalResource(p.ResourceType(), plain(p))
}

func (p *Practitioner) UnmarshalJSON(data []byte) error {
	type plain Practitioner
	var result plain
	if err := unmarshalResource(p.ResourceType(), data, &result); err != nil {
		return err
	}
	*p = Practitioner(result)
	return nil
}

func (p Practitioner) clone() Practitioner {
	p.Identifier = slices.Clone(p.Identifier)
	p.Name = slices.Clone(p.Name)
	p.Telecom = slices.Clone(p.Telecom)
	p.Address = slices.Clone(p.Address)
	p.Photo = slices.Clone(p.Photo)
	p.Qualification = slices.Clone(p.Qualification)
	p.Communication = slices.Clone(p.Communication)
	return p
}
