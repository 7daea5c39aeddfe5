package r4

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// EndpointStatus is the status of an Endpoint.
type EndpointStatus string

const (
	EndpointStatusActive         EndpointStatus = "active"
	EndpointStatusSuspended      EndpointStatus = "suspended"
	EndpointStatusError          EndpointStatus = "error"
	EndpointStatusOff            EndpointStatus = "off"
	EndpointStatusEnteredInError EndpointStatus = "entered-in-error"
	EndpointStatusTest           EndpointStatus = "test"
)

var endpointStatusCodes = newCodeSet("EndpointStatus",
	EndpointStatusActive, EndpointStatusSuspended, EndpointStatusError,
	EndpointStatusOff, EndpointStatusEnteredInError, EndpointStatusTest)

func (s *EndpointStatus) UnmarshalJSON(data []byte) error {
	return endpointStatusCodes.unmarshal(data, s)
}

// LocationStatus is the status of a Location.
type LocationStatus string

const (
	LocationStatusActive    LocationStatus = "active"
	LocationStatusSuspended LocationStatus = "suspended"
	LocationStatusInactive  LocationStatus = "inactive"
)

var locationStatusCodes = newCodeSet("LocationStatus",
	LocationStatusActive, LocationStatusSuspended, LocationStatusInactive)

func (s *LocationStatus) UnmarshalJSON(data []byte) error {
	return locationStatusCodes.unmarshal(data, s)
}

// LocationMode tells whether a Location is a specific instance or a class of locations.
type LocationMode string

const (
	LocationModeInstance LocationMode = "instance"
	LocationModeKind     LocationMode = "kind"
)

var locationModeCodes = newCodeSet("LocationMode", LocationModeInstance, LocationModeKind)

func (m *LocationMode) UnmarshalJSON(data []byte) error {
	return locationModeCodes.unmarshal(data, m)
}

type AdministrativeGender string

const (
	AdministrativeGenderMale    AdministrativeGender = "male"
	AdministrativeGenderFemale  AdministrativeGender = "female"
	AdministrativeGenderOther   AdministrativeGender = "other"
	AdministrativeGenderUnknown AdministrativeGender = "unknown"
)

var administrativeGenderCodes = newCodeSet("AdministrativeGender",
	AdministrativeGenderMale, AdministrativeGenderFemale, AdministrativeGenderOther, AdministrativeGenderUnknown)

func (g *AdministrativeGender) UnmarshalJSON(data []byte) error {
	return administrativeGenderCodes.unmarshal(data, g)
}

type DaysOfWeek string

const (
	Monday    DaysOfWeek = "mon"
	Tuesday   DaysOfWeek = "tue"
	Wednesday DaysOfWeek = "wed"
	Thursday  DaysOfWeek = "thu"
	Friday    DaysOfWeek = "fri"
	Saturday  DaysOfWeek = "sat"
	Sunday    DaysOfWeek = "sun"
)

var daysOfWeekCodes = newCodeSet("DaysOfWeek",
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday)

func (d *DaysOfWeek) UnmarshalJSON(data []byte) error {
	return daysOfWeekCodes.unmarshal(data, d)
}

type NarrativeStatus string

const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

var narrativeStatusCodes = newCodeSet("NarrativeStatus",
	NarrativeStatusGenerated, NarrativeStatusExtensions, NarrativeStatusAdditional, NarrativeStatusEmpty)

func (s *NarrativeStatus) UnmarshalJSON(data []byte) error {
	return narrativeStatusCodes.unmarshal(data, s)
}

// codeSet maps every accepted input spelling of a code to its FHIR code.
type codeSet[T ~string] struct {
	name     string
	spelling map[string]T
}

func newCodeSet[T ~string](name string, codes ...T) codeSet[T] {
	result := codeSet[T]{name: name, spelling: make(map[string]T, len(codes)*2)}
	for _, code := range codes {
		result.spelling[string(code)] = code
		result.spelling[kebabToCamel(string(code))] = code
	}
	return result
}

func (c codeSet[T]) unmarshal(data []byte, target *T) error {
	var input string
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}
	code, err := c.parse(input)
	if err != nil {
		return err
	}
	*target = code
	return nil
}

func (c codeSet[T]) parse(input string) (T, error) {
	code, ok := c.spelling[input]
	if !ok {
		return "", fmt.Errorf("unknown %s code %q", c.name, input)
	}
	return code, nil
}

func kebabToCamel(code string) string {
	parts := strings.Split(code, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
