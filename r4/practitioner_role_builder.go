package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

type PractitionerRoleBuilder struct {
	resource PractitionerRole
}

func NewPractitionerRoleBuilder(id string) *PractitionerRoleBuilder {
	return &PractitionerRoleBuilder{resource: PractitionerRole{DomainResource: newDomainResource(id)}}
}

func (b *PractitionerRoleBuilder) WithMeta(meta Meta) *PractitionerRoleBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *PractitionerRoleBuilder) WithImplicitRules(implicitRules string) *PractitionerRoleBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *PractitionerRoleBuilder) WithLanguage(language string) *PractitionerRoleBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *PractitionerRoleBuilder) WithText(text Narrative) *PractitionerRoleBuilder {
	b.resource.Text = &text
	return b
}

func (b *PractitionerRoleBuilder) WithIdentifiers(identifiers ...Identifier) *PractitionerRoleBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *PractitionerRoleBuilder) AddIdentifier(identifier Identifier) *PractitionerRoleBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *PractitionerRoleBuilder) WithActive(active bool) *PractitionerRoleBuilder {
	b.resource.Active = to.Ptr(active)
	return b
}

func (b *PractitionerRoleBuilder) WithPeriod(period Period) *PractitionerRoleBuilder {
	b.resource.Period = &period
	return b
}

func (b *PractitionerRoleBuilder) WithPractitioner(practitioner Reference[PractitionerKind]) *PractitionerRoleBuilder {
	b.resource.Practitioner = &practitioner
	return b
}

func (b *PractitionerRoleBuilder) WithOrganization(organization Reference[OrganizationKind]) *PractitionerRoleBuilder {
	b.resource.Organization = &organization
	return b
}

func (b *PractitionerRoleBuilder) WithCodes(codes ...CodeableConcept) *PractitionerRoleBuilder {
	b.resource.Code = slices.Clone(codes)
	return b
}

func (b *PractitionerRoleBuilder) AddCode(code CodeableConcept) *PractitionerRoleBuilder {
	b.resource.Code = append(b.resource.Code, code)
	return b
}

func (b *PractitionerRoleBuilder) WithSpecialties(specialties ...CodeableConcept) *PractitionerRoleBuilder {
	b.resource.Specialty = slices.Clone(specialties)
	return b
}

func (b *PractitionerRoleBuilder) AddSpecialty(specialty CodeableConcept) *PractitionerRoleBuilder {
	b.resource.Specialty = append(b.resource.Specialty, specialty)
	return b
}

func (b *PractitionerRoleBuilder) WithLocations(locations ...Reference[LocationKind]) *PractitionerRoleBuilder {
	b.resource.Location = slices.Clone(locations)
	return b
}

func (b *PractitionerRoleBuilder) AddLocation(location Reference[LocationKind]) *PractitionerRoleBuilder {
	b.resource.Location = append(b.resource.Location, location)
	return b
}

func (b *PractitionerRoleBuilder) WithHealthcareServices(services ...Reference[HealthcareServiceKind]) *PractitionerRoleBuilder {
	b.resource.HealthcareService = slices.Clone(services)
	return b
}

func (b *PractitionerRoleBuilder) AddHealthcareService(service Reference[HealthcareServiceKind]) *PractitionerRoleBuilder {
	b.resource.HealthcareService = append(b.resource.HealthcareService, service)
	return b
}

func (b *PractitionerRoleBuilder) WithTelecom(telecom ...ContactPoint) *PractitionerRoleBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *PractitionerRoleBuilder) AddTelecom(telecom ContactPoint) *PractitionerRoleBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *PractitionerRoleBuilder) WithAvailableTimes(times ...AvailableTime) *PractitionerRoleBuilder {
	b.resource.AvailableTime = slices.Clone(times)
	return b
}

func (b *PractitionerRoleBuilder) AddAvailableTime(availableTime AvailableTime) *PractitionerRoleBuilder {
	b.resource.AvailableTime = append(b.resource.AvailableTime, availableTime)
	return b
}

func (b *PractitionerRoleBuilder) WithNotAvailable(notAvailable ...NotAvailable) *PractitionerRoleBuilder {
	b.resource.NotAvailable = slices.Clone(notAvailable)
	return b
}

func (b *PractitionerRoleBuilder) AddNotAvailable(notAvailable NotAvailable) *PractitionerRoleBuilder {
	b.resource.NotAvailable = append(b.resource.NotAvailable, notAvailable)
	return b
}

func (b *PractitionerRoleBuilder) WithAvailabilityExceptions(text string) *PractitionerRoleBuilder {
	b.resource.AvailabilityExceptions = to.Ptr(text)
	return b
}

func (b *PractitionerRoleBuilder) WithEndpoints(endpoints ...Reference[EndpointKind]) *PractitionerRoleBuilder {
	b.resource.Endpoint = slices.Clone(endpoints)
	return b
}

func (b *PractitionerRoleBuilder) AddEndpoint(endpoint Reference[EndpointKind]) *PractitionerRoleBuilder {
	b.resource.Endpoint = append(b.resource.Endpoint, endpoint)
	return b
}

func (b *PractitionerRoleBuilder) Build() PractitionerRole {
	return b.resource.clone()
}
