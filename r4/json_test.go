package r4

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

func TestResource_ToJSON(t *testing.T) {
	meta := Meta{Source: to.Ptr("https://example.com/fhir"), Profile: []string{"http://example.com/profile"}}
	tests := []struct {
		name     string
		resource Resource
		expected string
	}{
		{
			name: "Organization",
			resource: NewOrganizationBuilder("org-1").
				WithMeta(meta).
				AddIdentifier(Identifier{System: to.Ptr("http://fhir.nl/fhir/NamingSystem/ura"), Value: to.Ptr("00000020")}).
				WithActive(true).
				WithName("Sunflower").
				WithPartOf(ToID[OrganizationKind]("parent-1")).
				AddEndpoint(ToID[EndpointKind]("ep-1")).
				Build(),
			expected: `{
				"resourceType": "Organization",
				"id": "org-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"identifier": [{"system": "http://fhir.nl/fhir/NamingSystem/ura", "value": "00000020"}],
				"active": true,
				"name": "Sunflower",
				"partOf": {"reference": "Organization/parent-1"},
				"endpoint": [{"reference": "Endpoint/ep-1"}]
			}`,
		},
		{
			name: "Endpoint",
			resource: NewEndpointBuilder("ep-1").
				WithMeta(meta).
				WithStatus(EndpointStatusActive).
				WithConnectionType(Coding{System: to.Ptr("http://terminology.hl7.org/CodeSystem/endpoint-connection-type"), Code: to.Ptr("hl7-fhir-rest")}).
				WithName("FHIR API").
				WithManagingOrganization(ToID[OrganizationKind]("org-1")).
				AddPayloadType(CodeableConcept{Text: to.Ptr("any")}).
				AddPayloadMimeType("application/fhir+json").
				WithAddress("https://example.com/fhir").
				AddHeader("X-Tenant: 1").
				Build(),
			expected: `{
				"resourceType": "Endpoint",
				"id": "ep-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"status": "active",
				"connectionType": {"system": "http://terminology.hl7.org/CodeSystem/endpoint-connection-type", "code": "hl7-fhir-rest"},
				"name": "FHIR API",
				"managingOrganization": {"reference": "Organization/org-1"},
				"payloadType": [{"text": "any"}],
				"payloadMimeType": ["application/fhir+json"],
				"address": "https://example.com/fhir",
				"header": ["X-Tenant: 1"]
			}`,
		},
		{
			name: "Location",
			resource: NewLocationBuilder("loc-1").
				WithMeta(meta).
				WithStatus(LocationStatusActive).
				WithName("Ward A").
				WithMode(LocationModeInstance).
				WithPosition(LocationPosition{Longitude: 4.5, Latitude: 52.25}).
				WithManagingOrganization(ToID[OrganizationKind]("org-1")).
				WithPartOf(ToID[LocationKind]("building-1")).
				AddHoursOfOperation(HoursOfOperation{DaysOfWeek: []DaysOfWeek{Monday}, AllDay: to.Ptr(true)}).
				AddEndpoint(ToID[EndpointKind]("ep-1")).
				Build(),
			expected: `{
				"resourceType": "Location",
				"id": "loc-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"status": "active",
				"name": "Ward A",
				"mode": "instance",
				"position": {"longitude": 4.5, "latitude": 52.25},
				"managingOrganization": {"reference": "Organization/org-1"},
				"partOf": {"reference": "Location/building-1"},
				"hoursOfOperation": [{"daysOfWeek": ["mon"], "allDay": true}],
				"endpoint": [{"reference": "Endpoint/ep-1"}]
			}`,
		},
		{
			name: "Practitioner",
			resource: NewPractitionerBuilder("p-1").
				WithMeta(meta).
				WithActive(true).
				AddName(HumanName{Family: to.Ptr("de Vries"), Given: []string{"Pieter"}}).
				WithGender(AdministrativeGenderMale).
				WithBirthDate("1980-01-01").
				AddQualification(PractitionerQualification{Code: CodeableConcept{Text: to.Ptr("Physician")}}).
				Build(),
			expected: `{
				"resourceType": "Practitioner",
				"id": "p-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"active": true,
				"name": [{"family": "de Vries", "given": ["Pieter"]}],
				"gender": "male",
				"birthDate": "1980-01-01",
				"qualification": [{"code": {"text": "Physician"}}]
			}`,
		},
		{
			name: "HealthcareService",
			resource: NewHealthcareServiceBuilder("hs-1").
				WithMeta(meta).
				WithActive(true).
				WithProvidedBy(ToID[OrganizationKind]("org-1")).
				AddLocation(ToID[LocationKind]("loc-1")).
				WithName("Day care").
				AddCoverageArea(ToID[LocationKind]("region-1")).
				WithAppointmentRequired(true).
				AddAvailableTime(AvailableTime{DaysOfWeek: []DaysOfWeek{Tuesday}}).
				AddNotAvailable(NotAvailable{Description: "Christmas"}).
				AddEndpoint(ToID[EndpointKind]("ep-1")).
				Build(),
			expected: `{
				"resourceType": "HealthcareService",
				"id": "hs-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"active": true,
				"providedBy": {"reference": "Organization/org-1"},
				"location": [{"reference": "Location/loc-1"}],
				"name": "Day care",
				"coverageArea": [{"reference": "Location/region-1"}],
				"appointmentRequired": true,
				"availableTime": [{"daysOfWeek": ["tue"]}],
				"notAvailable": [{"description": "Christmas"}],
				"endpoint": [{"reference": "Endpoint/ep-1"}]
			}`,
		},
		{
			name: "PractitionerRole",
			resource: NewPractitionerRoleBuilder("role-1").
				WithMeta(meta).
				WithActive(true).
				WithPractitioner(ToID[PractitionerKind]("p-1")).
				WithOrganization(ToID[OrganizationKind]("org-1")).
				AddLocation(ToID[LocationKind]("loc-1")).
				AddHealthcareService(ToID[HealthcareServiceKind]("hs-1")).
				WithAvailabilityExceptions("Holidays").
				AddEndpoint(ToID[EndpointKind]("ep-1")).
				Build(),
			expected: `{
				"resourceType": "PractitionerRole",
				"id": "role-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"active": true,
				"practitioner": {"reference": "Practitioner/p-1"},
				"organization": {"reference": "Organization/org-1"},
				"location": [{"reference": "Location/loc-1"}],
				"healthcareService": [{"reference": "HealthcareService/hs-1"}],
				"availabilityExceptions": "Holidays",
				"endpoint": [{"reference": "Endpoint/ep-1"}]
			}`,
		},
		{
			name: "OrganizationAffiliation",
			resource: NewOrganizationAffiliationBuilder("aff-1").
				WithMeta(meta).
				WithActive(true).
				WithPeriod(Period{Start: to.Ptr("2024-01-01")}).
				WithOrganization(ToID[OrganizationKind]("network-owner")).
				WithParticipatingOrganization(ToID[OrganizationKind]("member-1")).
				AddNetwork(ToID[OrganizationKind]("regional-network")).
				AddEndpoint(ToID[EndpointKind]("ep-1")).
				Build(),
			expected: `{
				"resourceType": "OrganizationAffiliation",
				"id": "aff-1",
				"meta": {"source": "https://example.com/fhir", "profile": ["http://example.com/profile"]},
				"active": true,
				"period": {"start": "2024-01-01"},
				"organization": {"reference": "Organization/network-owner"},
				"participatingOrganization": {"reference": "Organization/member-1"},
				"network": [{"reference": "Organization/regional-network"}],
				"endpoint": [{"reference": "Endpoint/ep-1"}]
			}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.resource.ToJSON()

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), `{"resourceType":"`+tt.name+`"`), string(data))
			assert.JSONEq(t, tt.expected, string(data))

			decoded, err := ParseResource(data)
			require.NoError(t, err)
			assert.Equal(t, tt.resource, decoded)
			assert.Equal(t, stringsOf(tt.resource.GetReferences()), stringsOf(decoded.GetReferences()))
		})
	}
}

func TestMarshalResource(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		data, err := marshalResource("Organization", struct{}{})

		require.NoError(t, err)
		assert.Equal(t, `{"resourceType":"Organization"}`, string(data))
	})
	t.Run("resourceType comes first", func(t *testing.T) {
		data, err := marshalResource("Organization", struct {
			Name string `json:"name"`
		}{Name: "Org"})

		require.NoError(t, err)
		assert.Equal(t, `{"resourceType":"Organization","name":"Org"}`, string(data))
	})
}

func TestUnmarshalResource(t *testing.T) {
	type fields struct {
		Name string `json:"name"`
	}
	t.Run("resourceType is optional", func(t *testing.T) {
		var result fields
		require.NoError(t, unmarshalResource("Organization", []byte(`{"name":"Org"}`), &result))
		assert.Equal(t, "Org", result.Name)
	})
	t.Run("resourceType mismatch", func(t *testing.T) {
		var result fields
		err := unmarshalResource("Organization", []byte(`{"resourceType":"Endpoint","name":"Org"}`), &result)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "resourceType", parseErr.Field)
	})
}
