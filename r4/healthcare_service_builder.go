package r4

import (
	"slices"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

type HealthcareServiceBuilder struct {
	resource HealthcareService
}

func NewHealthcareServiceBuilder(id string) *HealthcareServiceBuilder {
	return &HealthcareServiceBuilder{resource: HealthcareService{DomainResource: newDomainResource(id)}}
}

func (b *HealthcareServiceBuilder) WithMeta(meta Meta) *HealthcareServiceBuilder {
	b.resource.Meta = &meta
	return b
}

func (b *HealthcareServiceBuilder) WithImplicitRules(implicitRules string) *HealthcareServiceBuilder {
	b.resource.ImplicitRules = to.Ptr(implicitRules)
	return b
}

func (b *HealthcareServiceBuilder) WithLanguage(language string) *HealthcareServiceBuilder {
	b.resource.Language = to.Ptr(language)
	return b
}

func (b *HealthcareServiceBuilder) WithText(text Narrative) *HealthcareServiceBuilder {
	b.resource.Text = &text
	return b
}

func (b *HealthcareServiceBuilder) WithIdentifiers(identifiers ...Identifier) *HealthcareServiceBuilder {
	b.resource.Identifier = slices.Clone(identifiers)
	return b
}

func (b *HealthcareServiceBuilder) AddIdentifier(identifier Identifier) *HealthcareServiceBuilder {
	b.resource.Identifier = append(b.resource.Identifier, identifier)
	return b
}

func (b *HealthcareServiceBuilder) WithActive(active bool) *HealthcareServiceBuilder {
	b.resource.Active = to.Ptr(active)
	return b
}

func (b *HealthcareServiceBuilder) WithProvidedBy(organization Reference[OrganizationKind]) *HealthcareServiceBuilder {
	b.resource.ProvidedBy = &organization
	return b
}

func (b *HealthcareServiceBuilder) WithCategories(categories ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Category = slices.Clone(categories)
	return b
}

func (b *HealthcareServiceBuilder) AddCategory(category CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Category = append(b.resource.Category, category)
	return b
}

func (b *HealthcareServiceBuilder) WithTypes(types ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Type = slices.Clone(types)
	return b
}

func (b *HealthcareServiceBuilder) AddType(t CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Type = append(b.resource.Type, t)
	return b
}

func (b *HealthcareServiceBuilder) WithSpecialties(specialties ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Specialty = slices.Clone(specialties)
	return b
}

func (b *HealthcareServiceBuilder) AddSpecialty(specialty CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Specialty = append(b.resource.Specialty, specialty)
	return b
}

func (b *HealthcareServiceBuilder) WithLocations(locations ...Reference[LocationKind]) *HealthcareServiceBuilder {
	b.resource.Location = slices.Clone(locations)
	return b
}

func (b *HealthcareServiceBuilder) AddLocation(location Reference[LocationKind]) *HealthcareServiceBuilder {
	b.resource.Location = append(b.resource.Location, location)
	return b
}

func (b *HealthcareServiceBuilder) WithName(name string) *HealthcareServiceBuilder {
	b.resource.Name = to.Ptr(name)
	return b
}

func (b *HealthcareServiceBuilder) WithComment(comment string) *HealthcareServiceBuilder {
	b.resource.Comment = to.Ptr(comment)
	return b
}

func (b *HealthcareServiceBuilder) WithExtraDetails(extraDetails string) *HealthcareServiceBuilder {
	b.resource.ExtraDetails = to.Ptr(extraDetails)
	return b
}

func (b *HealthcareServiceBuilder) WithPhoto(photo Attachment) *HealthcareServiceBuilder {
	b.resource.Photo = &photo
	return b
}

func (b *HealthcareServiceBuilder) WithTelecom(telecom ...ContactPoint) *HealthcareServiceBuilder {
	b.resource.Telecom = slices.Clone(telecom)
	return b
}

func (b *HealthcareServiceBuilder) AddTelecom(telecom ContactPoint) *HealthcareServiceBuilder {
	b.resource.Telecom = append(b.resource.Telecom, telecom)
	return b
}

func (b *HealthcareServiceBuilder) WithCoverageAreas(areas ...Reference[LocationKind]) *HealthcareServiceBuilder {
	b.resource.CoverageArea = slices.Clone(areas)
	return b
}

func (b *HealthcareServiceBuilder) AddCoverageArea(area Reference[LocationKind]) *HealthcareServiceBuilder {
	b.resource.CoverageArea = append(b.resource.CoverageArea, area)
	return b
}

func (b *HealthcareServiceBuilder) WithServiceProvisionCodes(codes ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.ServiceProvisionCode = slices.Clone(codes)
	return b
}

func (b *HealthcareServiceBuilder) AddServiceProvisionCode(code CodeableConcept) *HealthcareServiceBuilder {
	b.resource.ServiceProvisionCode = append(b.resource.ServiceProvisionCode, code)
	return b
}

func (b *HealthcareServiceBuilder) WithEligibility(eligibility ...Eligibility) *HealthcareServiceBuilder {
	b.resource.Eligibility = slices.Clone(eligibility)
	return b
}

func (b *HealthcareServiceBuilder) AddEligibility(eligibility Eligibility) *HealthcareServiceBuilder {
	b.resource.Eligibility = append(b.resource.Eligibility, eligibility)
	return b
}

func (b *HealthcareServiceBuilder) WithPrograms(programs ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Program = slices.Clone(programs)
	return b
}

func (b *HealthcareServiceBuilder) AddProgram(program CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Program = append(b.resource.Program, program)
	return b
}

func (b *HealthcareServiceBuilder) WithCharacteristics(characteristics ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Characteristic = slices.Clone(characteristics)
	return b
}

func (b *HealthcareServiceBuilder) AddCharacteristic(characteristic CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Characteristic = append(b.resource.Characteristic, characteristic)
	return b
}

func (b *HealthcareServiceBuilder) WithCommunication(communication ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Communication = slices.Clone(communication)
	return b
}

func (b *HealthcareServiceBuilder) AddCommunication(communication CodeableConcept) *HealthcareServiceBuilder {
	b.resource.Communication = append(b.resource.Communication, communication)
	return b
}

func (b *HealthcareServiceBuilder) WithReferralMethods(methods ...CodeableConcept) *HealthcareServiceBuilder {
	b.resource.ReferralMethod = slices.Clone(methods)
	return b
}

func (b *HealthcareServiceBuilder) AddReferralMethod(method CodeableConcept) *HealthcareServiceBuilder {
	b.resource.ReferralMethod = append(b.resource.ReferralMethod, method)
	return b
}

func (b *HealthcareServiceBuilder) WithAppointmentRequired(required bool) *HealthcareServiceBuilder {
	b.resource.AppointmentRequired = to.Ptr(required)
	return b
}

func (b *HealthcareServiceBuilder) WithAvailableTimes(times ...AvailableTime) *HealthcareServiceBuilder {
	b.resource.AvailableTime = slices.Clone(times)
	return b
}

func (b *HealthcareServiceBuilder) AddAvailableTime(availableTime AvailableTime) *HealthcareServiceBuilder {
	b.resource.AvailableTime = append(b.resource.AvailableTime, availableTime)
	return b
}

func (b *HealthcareServiceBuilder) WithNotAvailable(notAvailable ...NotAvailable) *HealthcareServiceBuilder {
	b.resource.NotAvailable = slices.Clone(notAvailable)
	return b
}

func (b *HealthcareServiceBuilder) AddNotAvailable(notAvailable NotAvailable) *HealthcareServiceBuilder {
	b.resource.NotAvailable = append(b.resource.NotAvailable, notAvailable)
	return b
}

func (b *HealthcareServiceBuilder) WithAvailabilityExceptions(text string) *HealthcareServiceBuilder {
	b.resource.AvailabilityExceptions = to.Ptr(text)
	return b
}

func (b *HealthcareServiceBuilder) WithEndpoints(endpoints ...Reference[EndpointKind]) *HealthcareServiceBuilder {
	b.resource.Endpoint = slices.Clone(endpoints)
	return b
}

func (b *HealthcareServiceBuilder) AddEndpoint(endpoint Reference[EndpointKind]) *HealthcareServiceBuilder {
	b.resource.Endpoint = append(b.resource.Endpoint, endpoint)
	return b
}

func (b *HealthcareServiceBuilder) Build() HealthcareService {
	return b.resource.clone()
}
