package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

type PractitionerBuilder struct {
	resource Practitioner
}

func NewPractitionerBuilder(id string) *PractitionerBuilder {
	return &PractitionerBuilder{resource: Practitioner{DomainResource: newDomainResource(id)}}
}

func (b *PractitionerBuilder) WithMeta(meta Meta) *PractitionerBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *PractitionerBuilder) WithImplicitRules(implicitRules string) *PractitionerBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *PractitionerBuilder) WithLanguage(language string) *PractitionerBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *PractitionerBuilder) WithText(text Narrative) *PractitionerBuilder {
	b.resource.Text = &text
	return b
}

func (b *PractitionerBuilder) WithIdentifiers(identifiers ...Identifier) *PractitionerBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *PractitionerBuilder) AddIdentifier(identifier Identifier) *PractitionerBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *PractitionerBuilder) WithActive(active bool) *PractitionerBuilder {
	b.resource.Active = to.Ptr(active)
	return b
}

func (b *PractitionerBuilder) WithNames(names ...HumanName) *PractitionerBuilder {
	b.resource.Name = slices.Clone(names)
	return b
}

func (b *PractitionerBuilder) AddName(name HumanName) *PractitionerBuilder {
	b.resource.Name = append(b.resource.Name, name)
	return b
}

func (b *PractitionerBuilder) WithTelecom(telecom ...ContactPoint) *PractitionerBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *PractitionerBuilder) AddTelecom(telecom ContactPoint) *PractitionerBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *PractitionerBuilder) WithAddresses(addresses ...Address) *PractitionerBuilder {
	b.resource.Address = slices.Clone(addresses)
	return b
}

func (b *PractitionerBuilder) AddAddress(address Address) *PractitionerBuilder {
	b.resource.Address = append(b.resource.Address, address)
	return b
}

func (b *PractitionerBuilder) WithGender(gender AdministrativeGender) *PractitionerBuilder {
	b.resource.Gender = &gender
	return b
}

// WithBirthDate sets the birth date, a FHIR date such as "1970-01-31".
func (b *PractitionerBuilder) WithBirthDate(birthDate string) *PractitionerBuilder {
	b.resource.BirthDate = to.Ptr(birthDate)
	return b
}

func (b *PractitionerBuilder) WithPhotos(photos ...Attachment) *PractitionerBuilder {
	b.resource.Photo = slices.Clone(photos)
	return b
}

func (b *PractitionerBuilder) AddPhoto(photo Attachment) *PractitionerBuilder {
	b.resource.Photo = append(b.resource.Photo, photo)
	return b
}

func (b *PractitionerBuilder) WithQualifications(qualifications ...PractitionerQualification) *PractitionerBuilder {
	b.resource.Qualification = slices.Clone(qualifications)
	return b
}

func (b *PractitionerBuilder) AddQualification(qualification PractitionerQualification) *PractitionerBuilder {
	b.resource.Qualification = append(b.resource.Qualification, qualification)
	return b
}

func (b *PractitionerBuilder) WithCommunication(communication ...CodeableConcept) *PractitionerBuilder {
	b.resource.Communication = slices.Clone(communication)
	return b
}

func (b *PractitionerBuilder) AddCommunication(communication CodeableConcept) *PractitionerBuilder {
	b.resource.Communication = append(b.resource.Communication, communication)
	return b
}

func (b *PractitionerBuilder) Build() Practitioner {
	return b.resource.clone()
}
