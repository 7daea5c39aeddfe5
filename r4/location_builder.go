package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

type LocationBuilder struct {
	resource Location
}

func NewLocationBuilder(id string) *LocationBuilder {
	return &LocationBuilder{resource: Location{DomainResource: newDomainResource(id)}}
}

func (b *LocationBuilder) WithMeta(meta Meta) *LocationBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *LocationBuilder) WithImplicitRules(implicitRules string) *LocationBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *LocationBuilder) WithLanguage(language string) *LocationBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *LocationBuilder) WithText(text Narrative) *LocationBuilder {
	b.resource.Text = &text
	return b
}

func (b *LocationBuilder) WithIdentifiers(identifiers ...Identifier) *LocationBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *LocationBuilder) AddIdentifier(identifier Identifier) *LocationBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *LocationBuilder) WithStatus(status LocationStatus) *LocationBuilder {
	b.resource.Status = &status
	return b
}

func (b *LocationBuilder) WithOperationalStatus(operationalStatus Coding) *LocationBuilder {
	b.resource.OperationalStatus = &operationalStatus
	return b
}

func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.resource.Name = to.Ptr(name)
	return b
}

func (b *LocationBuilder) WithAliases(aliases ...string) *LocationBuilder {
	b.resource.Alias = slices.Clone(aliases)
	return b
}

func (b *LocationBuilder) AddAlias(alias string) *LocationBuilder {
	b.resource.Alias = append(b.resource.Alias, alias)
	return b
}

func (b *LocationBuilder) WithDescription(description string) *LocationBuilder {
	b.resource.Description = to.Ptr(description)
	return b
}

func (b *LocationBuilder) WithMode(mode LocationMode) *LocationBuilder {
	b.resource.Mode = &mode
	return b
}

func (b *LocationBuilder) WithTypes(types ...CodeableConcept) *LocationBuilder {
	b.resource.Type = slices.Clone(types)
	return b
}

func (b *LocationBuilder) AddType(t CodeableConcept) *LocationBuilder {
	b.resource.Type = append(b.resource.Type, t)
	return b
}

func (b *LocationBuilder) WithTelecom(telecom ...ContactPoint) *LocationBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *LocationBuilder) AddTelecom(telecom ContactPoint) *LocationBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *LocationBuilder) WithAddress(address Address) *LocationBuilder {
	b.resource.Address = &address
	return b
}

func (b *LocationBuilder) WithPhysicalType(physicalType CodeableConcept) *LocationBuilder {
	b.resource.PhysicalType = &physicalType
	return b
}

func (b *LocationBuilder) WithPosition(position LocationPosition) *LocationBuilder {
	b.resource.Position = &position
	return b
}

func (b *LocationBuilder) WithManagingOrganization(organization Reference[OrganizationKind]) *LocationBuilder {
	b.resource.ManagingOrganization = &organization
	return b
}

func (b *LocationBuilder) WithPartOf(partOf Reference[LocationKind]) *LocationBuilder {
	b.resource.PartOf = &partOf
	return b
}

func (b *LocationBuilder) WithHoursOfOperation(hours ...HoursOfOperation) *LocationBuilder {
	b.resource.HoursOfOperation = slices.Clone(hours)
	return b
}

func (b *LocationBuilder) AddHoursOfOperation(hours HoursOfOperation) *LocationBuilder {
	b.resource.HoursOfOperation = append(b.resource.HoursOfOperation, hours)
	return b
}

func (b *LocationBuilder) WithAvailabilityExceptions(text string) *LocationBuilder {
	b.resource.AvailabilityExceptions = to.Ptr(text)
	return b
}

func (b *LocationBuilder) WithEndpoints(endpoints ...Reference[EndpointKind]) *LocationBuilder {
	b.resource.Endpoint = slices.Clone(endpoints)
	return b
}

func (b *LocationBuilder) AddEndpoint(endpoint Reference[EndpointKind]) *LocationBuilder {
	b.resource.Endpoint = append(b.resource.Endpoint, endpoint)
	return b
}

func (b *LocationBuilder) Build() Location {
	return b.resource.clone()
}
