package r4

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

func TestOrganizationFromJSON(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		data, err := os.ReadFile("testdata/organization.json")
		require.NoError(t, err)

		org, err := OrganizationFromJSON(data)

		require.NoError(t, err)
		assert.Equal(t, "e5909595-767e-41c1-9b00-a23ddf33e5d1", org.GetID())
		assert.Equal(t, "Sunflower Care Home", *org.Name)
		assert.True(t, *org.Active)
		require.Len(t, org.Identifier, 1)
		assert.Equal(t, "00000020", *org.Identifier[0].Value)
		require.Len(t, org.Contact, 1)
		assert.Equal(t, "Jansen", *org.Contact[0].Name.Family)
		assert.Equal(t, []string{"Endpoint/ep-1", "Endpoint/ep-2", "Organization/parent-1"}, stringsOf(org.GetReferences()))
	})
	t.Run("resourceType may be absent", func(t *testing.T) {
		org, err := OrganizationFromJSON([]byte(`{"id":"1","name":"Org"}`))
		require.NoError(t, err)
		assert.Equal(t, "Org", *org.Name)
	})
	t.Run("resourceType mismatch", func(t *testing.T) {
		_, err := OrganizationFromJSON([]byte(`{"resourceType":"Endpoint","id":"1"}`))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "Organization", parseErr.ResourceType)
		assert.Equal(t, "resourceType", parseErr.Field)
		assert.EqualError(t, err, `parse Organization (field=resourceType): expected "Organization", got "Endpoint"`)
	})
	t.Run("partOf pointing to another kind", func(t *testing.T) {
		_, err := OrganizationFromJSON([]byte(`{"resourceType":"Organization","partOf":{"reference":"Location/1"}}`))

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "Organization", parseErr.ResourceType)
		var mismatch *ReferenceKindMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "Organization", mismatch.Expected)
		assert.Equal(t, "Location/1", mismatch.Actual)
	})
	t.Run("endpoint pointing to another kind", func(t *testing.T) {
		_, err := OrganizationFromJSON([]byte(`{"endpoint":[{"reference":"Endpoint/1"},{"reference":"Organization/2"}]}`))

		var mismatch *ReferenceKindMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "Endpoint", mismatch.Expected)
	})
	t.Run("wrong JSON type", func(t *testing.T) {
		_, err := OrganizationFromJSON([]byte(`{"name":5}`))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "Organization", parseErr.ResourceType)
	})
	t.Run("malformed JSON", func(t *testing.T) {
		_, err := OrganizationFromJSON([]byte(`{"name":`))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
	})
}

func TestOrganization_ToJSON(t *testing.T) {
	org := NewOrganizationBuilder("org-1").
		WithName("Regional Hospital").
		WithPartOf(ToID[OrganizationKind]("parent-1").WithDisplay("Parent Health Group")).
		Build()

	data, err := org.ToJSON()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"resourceType":"Organization"`), string(data))
	assert.JSONEq(t, `{
		"resourceType": "Organization",
		"id": "org-1",
		"name": "Regional Hospital",
		"partOf": {"reference": "Organization/parent-1", "display": "Parent Health Group"}
	}`, string(data))
}

func TestOrganization_ToJSONPretty(t *testing.T) {
	org := NewOrganizationBuilder("org-1").WithActive(true).Build()

	data, err := org.ToJSONPretty()

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"resourceType\": \"Organization\",\n  \"id\": \"org-1\",\n  \"active\": true\n}", string(data))
}

func TestOrganization_AsReference(t *testing.T) {
	t.Run("with name", func(t *testing.T) {
		org := NewOrganizationBuilder("parent-1").WithName("Parent Health Group").Build()

		ref, err := org.AsReference()

		require.NoError(t, err)
		assert.Equal(t, ToID[OrganizationKind]("parent-1").WithDisplay("Parent Health Group"), ref)
	})
	t.Run("without name", func(t *testing.T) {
		ref, err := NewOrganizationBuilder("parent-1").Build().AsReference()

		require.NoError(t, err)
		assert.Equal(t, ToID[OrganizationKind]("parent-1"), ref)
	})
	t.Run("without id", func(t *testing.T) {
		_, err := NewOrganizationBuilder("").WithName("Unsaved").Build().AsReference()

		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestOrganizationBuilder(t *testing.T) {
	t.Run("replace and append", func(t *testing.T) {
		org := NewOrganizationBuilder("org-1").
			WithAliases("a", "b").
			AddAlias("c").
			WithEndpoints(ToID[EndpointKind]("ep-1")).
			WithEndpoints(ToID[EndpointKind]("ep-2")).
			Build()

		assert.Equal(t, []string{"a", "b", "c"}, org.Alias)
		assert.Equal(t, []Reference[EndpointKind]{ToID[EndpointKind]("ep-2")}, org.Endpoint)
	})
	t.Run("built value is independent of later builder calls", func(t *testing.T) {
		builder := NewOrganizationBuilder("org-1").AddAlias("a")
		first := builder.Build()

		builder.AddAlias("b").WithName("Changed")
		second := builder.Build()

		assert.Equal(t, []string{"a"}, first.Alias)
		assert.Nil(t, first.Name)
		assert.Equal(t, []string{"a", "b"}, second.Alias)
		assert.Equal(t, "Changed", *second.Name)
	})
	t.Run("list setters do not share the caller's slice", func(t *testing.T) {
		aliases := make([]string, 1, 4)
		aliases[0] = "a"
		endpoints := make([]Reference[EndpointKind], 1, 4)
		endpoints[0] = ToID[EndpointKind]("ep-1")

		org := NewOrganizationBuilder("org-1").
			WithAliases(aliases...).
			AddAlias("b").
			WithEndpoints(endpoints...).
			AddEndpoint(ToID[EndpointKind]("ep-2")).
			Build()
		aliases = append(aliases, "caller")
		endpoints = append(endpoints, ToID[EndpointKind]("caller"))

		assert.Equal(t, []string{"a", "b"}, org.Alias)
		assert.Equal(t, []Reference[EndpointKind]{ToID[EndpointKind]("ep-1"), ToID[EndpointKind]("ep-2")}, org.Endpoint)
		assert.Equal(t, []string{"a", "caller"}, aliases)
		assert.Equal(t, ToID[EndpointKind]("caller"), endpoints[1])
	})
	t.Run("empty id leaves id unset", func(t *testing.T) {
		org := NewOrganizationBuilder("").Build()
		assert.Nil(t, org.ID)
		assert.Empty(t, org.GetID())
	})
	t.Run("round trip", func(t *testing.T) {
		org := NewOrganizationBuilder("org-1").
			WithMeta(Meta{Profile: []string{"http://example.org/profile"}}).
			WithLanguage("nl").
			WithImplicitRules("http://example.org/rules").
			WithText(Narrative{Status: NarrativeStatusGenerated, Div: `<div xmlns="http://www.w3.org/1999/xhtml">Org</div>`}).
			AddIdentifier(Identifier{System: to.Ptr("http://fhir.nl/fhir/NamingSystem/ura"), Value: to.Ptr("00000020")}).
			WithActive(true).
			AddType(CodeableConcept{Coding: []Coding{{System: to.Ptr("http://terminology.hl7.org/CodeSystem/organization-type"), Code: to.Ptr("prov")}}}).
			WithName("Regional Hospital").
			AddAlias("RH").
			AddTelecom(ContactPoint{System: to.Ptr("phone"), Value: to.Ptr("+31 20 000 0000"), Rank: to.Ptr(1)}).
			AddAddress(Address{Line: []string{"Main street 1"}, City: to.Ptr("Utrecht")}).
			WithPartOf(ToID[OrganizationKind]("parent-1").WithDisplay("Parent Health Group")).
			AddContact(OrganizationContact{Name: &HumanName{Text: to.Ptr("Front desk")}}).
			AddEndpoint(ToID[EndpointKind]("ep-1")).
			AddEndpoint(ByIdentifier[EndpointKind]("urn:sys", "ep-2")).
			Build()

		data, err := org.ToJSON()
		require.NoError(t, err)
		decoded, err := OrganizationFromJSON(data)

		require.NoError(t, err)
		assert.Equal(t, org, decoded)
	})
}
