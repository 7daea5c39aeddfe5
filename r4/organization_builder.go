package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// OrganizationBuilder builds an Organization. The zero value is not usable, use NewOrganizationBuilder.
type OrganizationBuilder struct {
	resource Organization
}

// NewOrganizationBuilder starts an Organization with the given logical id. An empty id leaves the id unset.
func NewOrganizationBuilder(id string) *OrganizationBuilder {
	return &OrganizationBuilder{resource: Organization{DomainResource: newDomainResource(id)}}
}

func (b *OrganizationBuilder) WithMeta(meta Meta) *OrganizationBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *OrganizationBuilder) WithImplicitRules(implicitRules string) *OrganizationBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *OrganizationBuilder) WithText(text Narrative) *OrganizationBuilder {
	b.resource.Text = &text
	return b
}

func (b *OrganizationBuilder) WithLanguage(language string) *OrganizationBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *OrganizationBuilder) WithIdentifiers(identifiers ...Identifier) *OrganizationBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *OrganizationBuilder) AddIdentifier(identifier Identifier) *OrganizationBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *OrganizationBuilder) WithActive(active bool) *OrganizationBuilder {
	b.resource.Active = to.Ptr(active)
	return b
}

func (b *OrganizationBuilder) WithTypes(types ...CodeableConcept) *OrganizationBuilder {
	b.resource.Type = slices.Clone(types)
	return b
}

func (b *OrganizationBuilder) AddType(t CodeableConcept) *OrganizationBuilder {
	b.resource.Type = append(b.resource.Type, t)
	return b
}

func (b *OrganizationBuilder) WithName(name string) *OrganizationBuilder {
	b.resource.Name = to.Ptr(name)
	return b
}

func (b *OrganizationBuilder) WithAliases(aliases ...string) *OrganizationBuilder {
	b.resource.Alias = slices.Clone(aliases)
	return b
}

func (b *OrganizationBuilder) AddAlias(alias string) *OrganizationBuilder {
	b.resource.Alias = append(b.resource.Alias, alias)
	return b
}

func (b *OrganizationBuilder) WithTelecom(telecom ...ContactPoint) *OrganizationBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *OrganizationBuilder) AddTelecom(telecom ContactPoint) *OrganizationBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *OrganizationBuilder) WithAddresses(addresses ...Address) *OrganizationBuilder {
	b.resource.Address = slices.Clone(addresses)
	return b
}

func (b *OrganizationBuilder) AddAddress(address Address) *OrganizationBuilder {
	b.resource.Address = append(b.resource.Address, address)
	return b
}

func (b *OrganizationBuilder) WithPartOf(partOf Reference[OrganizationKind]) *OrganizationBuilder {
	b.resource.PartOf = &partOf
	return b
}

func (b *OrganizationBuilder) WithContacts(contacts ...OrganizationContact) *OrganizationBuilder {
	b.resource.Contact = slices.Clone(contacts)
	return b
}

func (b *OrganizationBuilder) AddContact(contact OrganizationContact) *OrganizationBuilder {
	b.resource.Contact = append(b.resource.Contact, contact)
	return b
}

func (b *OrganizationBuilder) WithEndpoints(endpoints ...Reference[EndpointKind]) *OrganizationBuilder {
	b.resource.Endpoint = slices.Clone(endpoints)
	return b
}

func (b *OrganizationBuilder) AddEndpoint(endpoint Reference[EndpointKind]) *OrganizationBuilder {
	b.resource.Endpoint = append(b.resource.Endpoint, endpoint)
	return b
}

// Build returns the Organization. Later calls on the builder don't affect the returned value.
func (b *OrganizationBuilder) Build() Organization {
	return b.resource.clone()
}
