package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// EndpointBuilder builds an Endpoint.
// A new builder has status "test" and an empty payloadType list, so it always encodes to valid FHIR JSON.
type EndpointBuilder struct {
	resource Endpoint
}

func NewEndpointBuilder(id string) *EndpointBuilder {
	return &EndpointBuilder{resource: Endpoint{
		DomainResource: newDomainResource(id),
		Status:         EndpointStatusTest,
		PayloadType:    []CodeableConcept{},
	}}
}

func (b *EndpointBuilder) WithMeta(meta Meta) *EndpointBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *EndpointBuilder) WithImplicitRules(implicitRules string) *EndpointBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *EndpointBuilder) WithLanguage(language string) *EndpointBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *EndpointBuilder) WithText(text Narrative) *EndpointBuilder {
	b.resource.Text = &text
	return b
}

func (b *EndpointBuilder) WithIdentifiers(identifiers ...Identifier) *EndpointBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *EndpointBuilder) AddIdentifier(identifier Identifier) *EndpointBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *EndpointBuilder) WithStatus(status EndpointStatus) *EndpointBuilder {
	b.resource.Status = status
	return b
}

func (b *EndpointBuilder) WithConnectionType(connectionType Coding) *EndpointBuilder {
	b.resource.ConnectionType = connectionType
	return b
}

func (b *EndpointBuilder) WithName(name string) *EndpointBuilder {
	b.resource.Name = to.Ptr(name)
	return b
}

func (b *EndpointBuilder) WithManagingOrganization(organization Reference[OrganizationKind]) *EndpointBuilder {
	b.resource.ManagingOrganization = &organization
	return b
}

func (b *EndpointBuilder) WithContacts(contacts ...ContactPoint) *EndpointBuilder {
	b.resource.Contact = slices.Clone(contacts)
	return b
}

func (b *EndpointBuilder) AddContact(contact ContactPoint) *EndpointBuilder {
	b.resource.Contact = append(b.resource.Contact, contact)
	return b
}

func (b *EndpointBuilder) WithPeriod(period Period) *EndpointBuilder {
	b.resource.Period = &period
	return b
}

func (b *EndpointBuilder) WithPayloadTypes(payloadTypes ...CodeableConcept) *EndpointBuilder {
	b.resource.PayloadType = append([]CodeableConcept{}, payloadTypes...)
	return b
}

func (b *EndpointBuilder) AddPayloadType(payloadType CodeableConcept) *EndpointBuilder {
	b.resource.PayloadType = append(b.resource.PayloadType, payloadType)
	return b
}

func (b *EndpointBuilder) WithPayloadMimeTypes(mimeTypes ...string) *EndpointBuilder {
	b.resource.PayloadMimeType = slices.Clone(mimeTypes)
	return b
}

func (b *EndpointBuilder) AddPayloadMimeType(mimeType string) *EndpointBuilder {
	b.resource.PayloadMimeType = append(b.resource.PayloadMimeType, mimeType)
	return b
}

func (b *EndpointBuilder) WithAddress(address string) *EndpointBuilder {
	b.resource.Address = address
	return b
}

func (b *EndpointBuilder) WithHeaders(headers ...string) *EndpointBuilder {
	b.resource.Header = slices.Clone(headers)
	return b
}

func (b *EndpointBuilder) AddHeader(header string) *EndpointBuilder {
	b.resource.Header = append(b.resource.Header, header)
	return b
}

// Build returns the Endpoint. Later calls on the builder don't affect the returned value.
func (b *EndpointBuilder) Build() Endpoint {
	return b.resource.clone()
}
