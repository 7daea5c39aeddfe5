package r4

import "github.com/goccy/go-json"

// AvailableTime is a recurring time slot in which a service or role is available.
type AvailableTime struct {
	BackboneElement
	DaysOfWeek []DaysOfWeek `json:"daysOfWeek,omitempty"`
	AllDay     *bool        `json:"allDay,omitempty"`
	// AvailableStartTime and AvailableEndTime are FHIR times, e.g. "08:30:00".
	AvailableStartTime *string `json:"availableStartTime,omitempty"`
	AvailableEndTime   *string `json:"availableEndTime,omitempty"`
}

// NotAvailable describes a period in which a service or role is not available.
type NotAvailable struct {
	BackboneElement
	Description string  `json:"description"`
	During      *Period `json:"during,omitempty"`
}

type notAvailablePresence struct {
	Description *json.RawMessage `json:"description" validate:"required"`
}

func (n *NotAvailable) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, &notAvailablePresence{}); err != nil {
		return err
	}
	type plain NotAvailable
	return json.Unmarshal(data, (*plain)(n))
}
