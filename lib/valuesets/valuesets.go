package valuesets

import (
	"embed"
	"fmt"
	"strconv"
	"sync"

	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	EndpointConnectionType = "endpoint-connection-type"
	EndpointPayloadType    = "endpoint-payload-type"
	LocationPhysicalType   = "location-physical-type"
	LocationType           = "location-type"
	OrganizationType       = "organization-type"
	ServiceType            = "service-type"
)

var codingSystemIndex = map[string]string{
	// Values taken from: https://hl7.org/fhir/R4/valueset-endpoint-connection-type.html
	EndpointConnectionType: "http://terminology.hl7.org/CodeSystem/endpoint-connection-type",
	// Values taken from: https://hl7.org/fhir/R4/valueset-endpoint-payload-type.html
	EndpointPayloadType: "http://terminology.hl7.org/CodeSystem/endpoint-payload-type",
	// Values taken from: https://hl7.org/fhir/R4/valueset-location-physical-type.html
	LocationPhysicalType: "http://terminology.hl7.org/CodeSystem/location-physical-type",
	// Values taken from: https://terminology.hl7.org/6.3.0/ValueSet-v3-ServiceDeliveryLocationRoleType.html
	LocationType: "http://terminology.hl7.org/CodeSystem/v3-RoleCode",
	// Values taken from: https://hl7.org/fhir/R4/valueset-organization-type.html
	OrganizationType: "http://terminology.hl7.org/CodeSystem/organization-type",
	// Values taken from: https://hl7.org/fhir/R4/valueset-service-type.html
	ServiceType: "http://terminology.hl7.org/CodeSystem/service-type",
}

var (
	codingIndex = make(map[string]map[string]r4.Coding)
	indexMux    sync.Mutex
)

//go:embed *.json
var setsFS embed.FS

// SystemOf returns the code system of the codings in the value set.
func SystemOf(setId string) (string, bool) {
	system, ok := codingSystemIndex[setId]
	return system, ok
}

// SetForSystem returns the id of the value set holding codes of the given code system.
func SetForSystem(system string) (string, bool) {
	for setId, candidate := range codingSystemIndex {
		if candidate == system {
			return setId, true
		}
	}
	return "", false
}

// CodingsFrom returns all codings in the value set, with their system set.
func CodingsFrom(setId string) ([]r4.Coding, error) {
	system, ok := codingSystemIndex[setId]
	if !ok {
		return nil, fmt.Errorf("unknown value set: %s", setId)
	}
	bytes, err := setsFS.ReadFile(setId + ".json")
	if err != nil {
		log.Warn().Err(err).Str("valueSet", setId).Msg("Could not load file with values in set")
		return nil, err
	}

	var codings []r4.Coding
	if err = json.Unmarshal(bytes, &codings); err != nil {
		log.Warn().Err(err).Str("valueSet", setId).Msg("Invalid values in file")
		return nil, err
	}

	result := make([]r4.Coding, 0, len(codings))
	for _, coding := range codings {
		if coding.Code == nil {
			log.Warn().Str("valueSet", setId).Msg("Value in set is missing code")
			continue
		}
		coding.System = &system
		result = append(result, coding)
	}
	return result, nil
}

func indexOf(setId string) map[string]r4.Coding {
	indexMux.Lock()
	defer indexMux.Unlock()
	if index, ok := codingIndex[setId]; ok {
		return index
	}
	codings, err := CodingsFrom(setId)
	if err != nil {
		return nil
	}
	index := make(map[string]r4.Coding, len(codings))
	for _, coding := range codings {
		index[*coding.Code] = coding
	}
	codingIndex[setId] = index
	return index
}

func CodingFrom(setId string, codeId string) (r4.Coding, bool) {
	coding, ok := indexOf(setId)[codeId]
	return coding, ok
}

func CodableFrom(setId string, codeId string) (out r4.CodeableConcept, ok bool) {
	coding, ok := CodingFrom(setId, codeId)
	if !ok {
		return out, false
	}
	out.Coding = []r4.Coding{coding}
	out.Text = coding.Display
	return out, true
}

// Includes reports whether the coding's system and code are part of the value set.
func Includes(setId string, coding r4.Coding) bool {
	if coding.System == nil || coding.Code == nil || *coding.System != codingSystemIndex[setId] {
		return false
	}
	_, ok := CodingFrom(setId, *coding.Code)
	return ok
}

func EndpointStatusFrom(code string) (r4.EndpointStatus, bool) {
	var status r4.EndpointStatus
	if err := json.Unmarshal([]byte(strconv.Quote(code)), &status); err != nil {
		return r4.EndpointStatusActive, false
	}
	return status, true
}

func LocationStatusFrom(code string) (r4.LocationStatus, bool) {
	var status r4.LocationStatus
	if err := json.Unmarshal([]byte(strconv.Quote(code)), &status); err != nil {
		return r4.LocationStatusActive, false
	}
	return status, true
}
