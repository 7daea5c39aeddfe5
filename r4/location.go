package r4

import (
	"slices"

	"github.com/goccy/go-json"
)

// Location is a physical place where services are provided, e.g. a building, ward or room.
type Location struct {
	DomainResource
	Identifier             []Identifier                 `json:"identifier,omitempty"`
	Status                 *LocationStatus              `json:"status,omitempty"`
	OperationalStatus      *Coding                      `json:"operationalStatus,omitempty"`
	Name                   *string                      `json:"name,omitempty"`
	Alias                  []string                     `json:"alias,omitempty"`
	Description            *string                      `json:"description,omitempty"`
	Mode                   *LocationMode                `json:"mode,omitempty"`
	Type                   []CodeableConcept            `json:"type,omitempty"`
	Telecom                []ContactPoint               `json:"telecom,omitempty"`
	Address                *Address                     `json:"address,omitempty"`
	PhysicalType           *CodeableConcept             `json:"physicalType,omitempty"`
	Position               *LocationPosition            `json:"position,omitempty"`
	ManagingOrganization   *Reference[OrganizationKind] `json:"managingOrganization,omitempty"`
	PartOf                 *Reference[LocationKind]     `json:"partOf,omitempty"`
	HoursOfOperation       []HoursOfOperation           `json:"hoursOfOperation,omitempty"`
	AvailabilityExceptions *string                      `json:"availabilityExceptions,omitempty"`
	Endpoint               []Reference[EndpointKind]    `json:"endpoint,omitempty"`
}

// LocationPosition is the WGS84 position of a Location.
type LocationPosition struct {
	BackboneElement
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

type locationPositionPresence struct {
	Longitude *json.RawMessage `json:"longitude" validate:"required"`
	Latitude  *json.RawMessage `json:"latitude" validate:"required"`
}

func (p *LocationPosition) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, &locationPositionPresence{}); err != nil {
		return err
	}
	type plain LocationPosition
	return json.Unmarshal(data, (*plain)(p))
}

// HoursOfOperation is a recurring time slot in which a Location is open.
type HoursOfOperation struct {
	BackboneElement
	DaysOfWeek  []DaysOfWeek `json:"daysOfWeek,omitempty"`
	AllDay      *bool        `json:"allDay,omitempty"`
	OpeningTime *string      `json:"openingTime,omitempty"`
	ClosingTime *string      `json:"closingTime,omitempty"`
}

var _ Resource = Location{}

// LocationFromJSON decodes a Location from FHIR JSON.
func LocationFromJSON(data []byte) (Location, error) {
	var result Location
	if err := decodeResource(result.ResourceType(), data, &result); err != nil {
		return Location{}, err
	}
	return result, nil
}

func (l Location) ResourceType() string {
	return CanonicalName[LocationKind]()
}

// GetReferences returns managingOrganization, partOf, then endpoint[].
func (l Location) GetReferences() []ReferenceTag {
	refs := make([]ReferenceTag, 0, 2+len(l.Endpoint))
	refs = appendReference(refs, l.ManagingOrganization)
	refs = appendReference(refs, l.PartOf)
	refs = appendReferences(refs, l.Endpoint)
	return refs
}

// AsReference returns a reference to this location, displaying its name.
func (l Location) AsReference() (Reference[LocationKind], error) {
	return referenceTo[LocationKind](l.ID, l.Name)
}

func (l Location) ToJSON() ([]byte, error) {
	return toJSON(l)
}

func (l Location) ToJSONPretty() ([]byte, error) {
	return toJSONPretty(l)
}

func (l Location) MarshalJSON() ([]byte, error) {
	type plain Location
	return marshalResource(l.ResourceType(), plain(l))
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var result plain
	if err := unmarshalResource(l.ResourceType(), data, &result); err != nil {
		return err
	}
	*l = Location(result)
	return nil
}

func (l Location) clone() Location {
	l.Identifier = slices.Clone(l.Identifier)
	l.Alias = slices.Clone(l.Alias)
	l.Type = slices.Clone(l.Type)
	l.Telecom = slices.Clone(l.Telecom)
	l.HoursOfOperation = slices.Clone(l.HoursOfOperation)
	l.Endpoint = slices.Clone(l.Endpoint)
	return l
}
