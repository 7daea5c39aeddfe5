package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

type OrganizationAffiliationBuilder struct {
	resource OrganizationAffiliation
}

func NewOrganizationAffiliationBuilder(id string) *OrganizationAffiliationBuilder {
	return &OrganizationAffiliationBuilder{resource: OrganizationAffiliation{DomainResource: newDomainResource(id)}}
}

func (b *OrganizationAffiliationBuilder) WithMeta(meta Meta) *OrganizationAffiliationBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *OrganizationAffiliationBuilder) WithImplicitRules(implicitRules string) *OrganizationAffiliationBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *OrganizationAffiliationBuilder) WithLanguage(language string) *OrganizationAffiliationBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *OrganizationAffiliationBuilder) WithText(text Narrative) *OrganizationAffiliationBuilder {
	b.resource.Text = &text
	return b
}

func (b *OrganizationAffiliationBuilder) WithIdentifiers(identifiers ...Identifier) *OrganizationAffiliationBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *OrganizationAffiliationBuilder) AddIdentifier(identifier Identifier) *OrganizationAffiliationBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *OrganizationAffiliationBuilder) WithActive(active bool) *OrganizationAffiliationBuilder {
	b.resource.Active = to.Ptr(active)
	return b
}

func (b *OrganizationAffiliationBuilder) WithPeriod(period Period) *OrganizationAffiliationBuilder {
	b.resource.Period = &period
	return b
}

func (b *OrganizationAffiliationBuilder) WithOrganization(organization Reference[OrganizationKind]) *OrganizationAffiliationBuilder {
	b.resource.Organization = &organization
	return b
}

func (b *OrganizationAffiliationBuilder) WithParticipatingOrganization(organization Reference[OrganizationKind]) *OrganizationAffiliationBuilder {
	b.resource.ParticipatingOrganization = &organization
	return b
}

func (b *OrganizationAffiliationBuilder) WithNetworks(networks ...Reference[OrganizationKind]) *OrganizationAffiliationBuilder {
	b.resource.Network = slices.Clone(networks)
	return b
}

func (b *OrganizationAffiliationBuilder) AddNetwork(network Reference[OrganizationKind]) *OrganizationAffiliationBuilder {
	b.resource.Network = append(b.resource.Network, network)
	return b
}

func (b *OrganizationAffiliationBuilder) WithCodes(codes ...CodeableConcept) *OrganizationAffiliationBuilder {
	b.resource.Code = slices.Clone(codes)
	return b
}

func (b *OrganizationAffiliationBuilder) AddCode(code CodeableConcept) *OrganizationAffiliationBuilder {
	b.resource.Code = append(b.resource.Code, code)
	return b
}

func (b *OrganizationAffiliationBuilder) WithSpecialties(specialties ...CodeableConcept) *OrganizationAffiliationBuilder {
	b.resource.Specialty = slices.Clone(specialties)
	return b
}

func (b *OrganizationAffiliationBuilder) AddSpecialty(specialty CodeableConcept) *OrganizationAffiliationBuilder {
	b.resource.Specialty = append(b.resource.Specialty, specialty)
	return b
}

func (b *OrganizationAffiliationBuilder) WithLocations(locations ...Reference[LocationKind]) *OrganizationAffiliationBuilder {
	b.resource.Location = slices.Clone(locations)
	return b
}

func (b *OrganizationAffiliationBuilder) AddLocation(location Reference[LocationKind]) *OrganizationAffiliationBuilder {
	b.resource.Location = append(b.resource.Location, location)
	return b
}

func (b *OrganizationAffiliationBuilder) WithHealthcareServices(services ...Reference[HealthcareServiceKind]) *OrganizationAffiliationBuilder {
	b.resource.HealthcareService = slices.Clone(services)
	return b
}

func (b *OrganizationAffiliationBuilder) AddHealthcareService(service Reference[HealthcareServiceKind]) *OrganizationAffiliationBuilder {
	b.resource.HealthcareService = append(b.resource.HealthcareService, service)
	return b
}

func (b *OrganizationAffiliationBuilder) WithTelecom(telecom ...ContactPoint) *OrganizationAffiliationBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *OrganizationAffiliationBuilder) AddTelecom(telecom ContactPoint) *OrganizationAffiliationBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *OrganizationAffiliationBuilder) WithEndpoints(endpoints ...Reference[EndpointKind]) *OrganizationAffiliationBuilder {
	b.resource.Endpoint = slices.Clone(endpoints)
	return b
}

func (b *OrganizationAffiliationBuilder) AddEndpoint(endpoint Reference[EndpointKind]) *OrganizationAffiliationBuilder {
	b.resource.Endpoint = append(b.resource.Endpoint, endpoint)
	return b
}

func (b *OrganizationAffiliationBuilder) Build() OrganizationAffiliation {
	return b.resource.clone()
}
