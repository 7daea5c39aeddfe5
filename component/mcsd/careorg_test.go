package mcsd

import (
	"github.com/fouadsfarijlani/libfhir/lib/coding"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

func careHomeSunflower() fhir.Organization {
	return fhir.Organization{
		Id:   to.Ptr("e5909595-767e-41c1-9b00-a23ddf33e5d1"),
		Name: to.Ptr("Sunflower Care Home"),
		Identifier: []fhir.Identifier{
			{
				System: to.Ptr(coding.URANamingSystem),
				Value:  to.Ptr("00000020"),
			},
		},
		Endpoint: []fhir.Reference{
			{Reference: to.Ptr("Endpoint/cadbb0ba-0cf0-4f4e-8ee2-5a48a9fae724")},
		},
	}
}

func careHomeSunflowerRootEndpoints() []fhir.Endpoint {
	return []fhir.Endpoint{
		{
			Id:      to.Ptr("cadbb0ba-0cf0-4f4e-8ee2-5a48a9fae724"),
			Address: "https://example.com/sunflower/mcsd",
			Meta: &fhir.Meta{
				Profile: []string{"https://profiles.ihe.net/ITI/mCSD/StructureDefinition/IHE.mCSD.Endpoint"},
			},
			Status: fhir.EndpointStatusActive,
			ManagingOrganization: &fhir.Reference{
				Reference: to.Ptr("Organization/e5909595-767e-41c1-9b00-a23ddf33e5d1"),
				Type:      to.Ptr("Organization"),
			},
			ConnectionType: fhir.Coding{
				System: to.Ptr(coding.MCSDConnectionTypeSystem),
				Code:   to.Ptr(coding.MCSDConnectionTypeDirectoryCode),
			},
			PayloadType: []fhir.CodeableConcept{
				{
					Coding: []fhir.Coding{
						{
							System: to.Ptr(coding.MCSDPayloadTypeSystem),
							Code:   to.Ptr(coding.MCSDPayloadTypeDirectoryCode),
						},
					},
				},
			},
			Period: &fhir.Period{
				Start: to.Ptr("2025-05-01T00:00:00Z"),
			},
		},
	}
}

func care2CureHospital() fhir.Organization {
	return fhir.Organization{
		Id:   to.Ptr("ef860868-b886-4459-aa87-216955c05289"),
		Name: to.Ptr("Care2Cure Hospital"),
		Identifier: []fhir.Identifier{
			{
				System: to.Ptr(coding.URANamingSystem),
				Value:  to.Ptr("00000030"),
			},
		},
	}
}
