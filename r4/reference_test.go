package r4

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

func TestToID(t *testing.T) {
	ref := ToID[OrganizationKind]("123")

	assert.Equal(t, "Organization/123", *ref.Reference)
	assert.Nil(t, ref.Type)
	assert.Nil(t, ref.Identifier)
	assert.Nil(t, ref.Display)
	localID, ok := ref.LocalID()
	assert.True(t, ok)
	assert.Equal(t, "123", localID)
	assert.Equal(t, "Organization", ref.Kind())
}

func TestToID_EmptyLocalID(t *testing.T) {
	ref := ToID[OrganizationKind]("")

	assert.Equal(t, "Organization/", *ref.Reference)
	_, ok := ref.LocalID()
	assert.False(t, ok)

	data, err := NewOrganizationBuilder("org-1").WithPartOf(ref).Build().ToJSON()
	require.NoError(t, err)
	_, err = OrganizationFromJSON(data)
	var mismatch *ReferenceKindMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestByIdentifier(t *testing.T) {
	ref := ByIdentifier[OrganizationKind]("http://fhir.nl/fhir/NamingSystem/ura", "12345")

	assert.Nil(t, ref.Reference)
	require.NotNil(t, ref.Identifier)
	assert.Equal(t, "http://fhir.nl/fhir/NamingSystem/ura", *ref.Identifier.System)
	assert.Equal(t, "12345", *ref.Identifier.Value)
	_, ok := ref.LocalID()
	assert.False(t, ok)
	assert.Equal(t, "Organization?identifier=http://fhir.nl/fhir/NamingSystem/ura|12345", ref.String())
}

func TestReference_WithDisplay(t *testing.T) {
	ref := ToID[OrganizationKind]("parent-1")
	withDisplay := ref.WithDisplay("Parent Health Group")

	assert.Nil(t, ref.Display, "receiver must not be modified")
	assert.Equal(t, "Parent Health Group", *withDisplay.Display)
	assert.Equal(t, "Organization/parent-1", *withDisplay.Reference)
}

func TestReference_IsEmpty(t *testing.T) {
	assert.True(t, Reference[EndpointKind]{}.IsEmpty())
	assert.False(t, ToID[EndpointKind]("1").IsEmpty())
	assert.False(t, Reference[EndpointKind]{}.WithType("Endpoint").IsEmpty())
}

func TestReference_Equal(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		a := ToID[LocationKind]("1").WithDisplay("Ward")
		b := ToID[LocationKind]("1").WithDisplay("Ward")
		assert.True(t, a.Equal(b))
	})
	t.Run("different display", func(t *testing.T) {
		a := ToID[LocationKind]("1").WithDisplay("Ward")
		b := ToID[LocationKind]("1")
		assert.False(t, a.Equal(b))
	})
	t.Run("identifier compared by value", func(t *testing.T) {
		a := ByIdentifier[LocationKind]("urn:sys", "1")
		b := ByIdentifier[LocationKind]("urn:sys", "1")
		c := ByIdentifier[LocationKind]("urn:sys", "2")
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestReference_String(t *testing.T) {
	assert.Equal(t, "Endpoint/ep-1", ToID[EndpointKind]("ep-1").String())
	assert.Equal(t, "Endpoint/<empty>", Reference[EndpointKind]{}.String())
}

func TestReference_MarshalJSON(t *testing.T) {
	t.Run("only set fields are written", func(t *testing.T) {
		data, err := json.Marshal(ToID[OrganizationKind]("parent-1").WithDisplay("Parent Health Group"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"reference":"Organization/parent-1","display":"Parent Health Group"}`, string(data))
	})
	t.Run("empty reference", func(t *testing.T) {
		data, err := json.Marshal(Reference[OrganizationKind]{})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})
	t.Run("reference and identifier", func(t *testing.T) {
		ref := ToID[OrganizationKind]("1")
		ref.Identifier = &Identifier{System: to.Ptr("urn:sys"), Value: to.Ptr("1")}
		data, err := json.Marshal(ref)
		require.NoError(t, err)
		assert.JSONEq(t, `{"reference":"Organization/1","identifier":{"system":"urn:sys","value":"1"}}`, string(data))
	})
}

func TestReference_UnmarshalJSON(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		var ref Reference[OrganizationKind]
		err := json.Unmarshal([]byte(`{"reference":"Organization/1","type":"Organization","identifier":{"system":"urn:sys","value":"1"},"display":"Org"}`), &ref)
		require.NoError(t, err)
		assert.Equal(t, "Organization/1", *ref.Reference)
		assert.Equal(t, "Organization", *ref.Type)
		assert.Equal(t, "urn:sys", *ref.Identifier.System)
		assert.Equal(t, "Org", *ref.Display)
	})
	t.Run("empty object", func(t *testing.T) {
		var ref Reference[OrganizationKind]
		err := json.Unmarshal([]byte(`{}`), &ref)
		require.NoError(t, err)
		assert.True(t, ref.IsEmpty())
	})
	t.Run("identifier only", func(t *testing.T) {
		var ref Reference[EndpointKind]
		err := json.Unmarshal([]byte(`{"identifier":{"system":"urn:sys","value":"1"}}`), &ref)
		require.NoError(t, err)
		assert.Equal(t, ByIdentifier[EndpointKind]("urn:sys", "1"), ref)
	})
	t.Run("type hint is not validated", func(t *testing.T) {
		var ref Reference[EndpointKind]
		err := json.Unmarshal([]byte(`{"reference":"Endpoint/1","type":"Organization"}`), &ref)
		require.NoError(t, err)
	})
	t.Run("empty local id", func(t *testing.T) {
		var ref Reference[EndpointKind]
		err := json.Unmarshal([]byte(`{"reference":"Endpoint/"}`), &ref)
		var mismatch *ReferenceKindMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "Endpoint", mismatch.Expected)
		assert.Equal(t, "Endpoint/", mismatch.Actual)
	})
	t.Run("absolute URL", func(t *testing.T) {
		var ref Reference[EndpointKind]
		err := json.Unmarshal([]byte(`{"reference":"https://example.com/fhir/Endpoint/1"}`), &ref)
		var mismatch *ReferenceKindMismatchError
		require.True(t, errors.As(err, &mismatch))
	})
	t.Run("kind name is case sensitive", func(t *testing.T) {
		var ref Reference[EndpointKind]
		err := json.Unmarshal([]byte(`{"reference":"endpoint/1"}`), &ref)
		require.EqualError(t, err, `reference "endpoint/1" must target Endpoint (expected Endpoint/<id>)`)
	})
}

func TestReference_PrefixAcrossKinds(t *testing.T) {
	decoders := map[string]func(data []byte) error{
		"Organization":            decodeReferenceAs[OrganizationKind],
		"Endpoint":                decodeReferenceAs[EndpointKind],
		"Location":                decodeReferenceAs[LocationKind],
		"Practitioner":            decodeReferenceAs[PractitionerKind],
		"HealthcareService":       decodeReferenceAs[HealthcareServiceKind],
		"PractitionerRole":        decodeReferenceAs[PractitionerRoleKind],
		"OrganizationAffiliation": decodeReferenceAs[OrganizationAffiliationKind],
	}
	require.Len(t, decoders, len(Kinds()))
	for _, kind := range Kinds() {
		decode := decoders[kind]
		require.NotNil(t, decode, kind)
		for _, target := range Kinds() {
			t.Run(kind+" <- "+target, func(t *testing.T) {
				err := decode([]byte(`{"reference":"` + target + `/x"}`))
				if target == kind {
					require.NoError(t, err)
					return
				}
				var mismatch *ReferenceKindMismatchError
				require.True(t, errors.As(err, &mismatch))
				assert.Equal(t, kind, mismatch.Expected)
				assert.Equal(t, target+"/x", mismatch.Actual)
			})
		}
	}
}

func decodeReferenceAs[K Kind](data []byte) error {
	var ref Reference[K]
	return json.Unmarshal(data, &ref)
}
