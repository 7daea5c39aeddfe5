package r4

import (
	"slices"
	"strings"
)

// Element is the base of all FHIR data types. Only the element id is modelled.
type Element struct {
	ID *string `json:"id,omitempty"`
}

// BackboneElement is the base of the nested components of a resource.
type BackboneElement struct {
	Element
}

type Meta struct {
	ID          *string  `json:"id,omitempty"`
	VersionID   *string  `json:"versionId,omitempty"`
	LastUpdated *string  `json:"lastUpdated,omitempty"`
	Source      *string  `json:"source,omitempty"`
	Profile     []string `json:"profile,omitempty"`
	Security    []Coding `json:"security,omitempty"`
	Tag         []Coding `json:"tag,omitempty"`
}

type Narrative struct {
	ID     *string         `json:"id,omitempty"`
	Status NarrativeStatus `json:"status"`
	Div    string          `json:"div"`
}

type Coding struct {
	Element
	System       *string `json:"system,omitempty"`
	Version      *string `json:"version,omitempty"`
	Code         *string `json:"code,omitempty"`
	Display      *string `json:"display,omitempty"`
	UserSelected *bool   `json:"userSelected,omitempty"`
}

type CodeableConcept struct {
	Element
	Coding []Coding `json:"coding,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

type Period struct {
	Element
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// Identifier is a business identifier of a resource, e.g. a chamber of commerce number.
// The assigner is plain data: it is not returned by GetReferences.
type Identifier struct {
	Element
	Use      *string                     `json:"use,omitempty"`
	Type     *CodeableConcept            `json:"type,omitempty"`
	System   *string                     `json:"system,omitempty"`
	Value    *string                     `json:"value,omitempty"`
	Period   *Period                     `json:"period,omitempty"`
	Assigner *Reference[OrganizationKind] `json:"assigner,omitempty"`
}

// equal compares identifiers field by field. Either side may be nil.
func (i *Identifier) equal(other *Identifier) bool {
	if i == nil || other == nil {
		return i == other
	}
	return equalPtr(i.ID, other.ID) &&
		equalPtr(i.Use, other.Use) &&
		equalPtr(i.System, other.System) &&
		equalPtr(i.Value, other.Value) &&
		i.Type.equal(other.Type) &&
		i.Period.equal(other.Period) &&
		equalReferencePtr(i.Assigner, other.Assigner)
}

func (c *CodeableConcept) equal(other *CodeableConcept) bool {
	if c == nil || other == nil {
		return c == other
	}
	return equalPtr(c.ID, other.ID) &&
		equalPtr(c.Text, other.Text) &&
		slices.EqualFunc(c.Coding, other.Coding, func(a, b Coding) bool { return a.equal(b) })
}

func (c Coding) equal(other Coding) bool {
	return equalPtr(c.ID, other.ID) &&
		equalPtr(c.System, other.System) &&
		equalPtr(c.Version, other.Version) &&
		equalPtr(c.Code, other.Code) &&
		equalPtr(c.Display, other.Display) &&
		equalPtr(c.UserSelected, other.UserSelected)
}

func (p *Period) equal(other *Period) bool {
	if p == nil || other == nil {
		return p == other
	}
	return equalPtr(p.ID, other.ID) && equalPtr(p.Start, other.Start) && equalPtr(p.End, other.End)
}

func equalReferencePtr[K Kind](a, b *Reference[K]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

type ContactPoint struct {
	Element
	System *string `json:"system,omitempty"`
	Value  *string `json:"value,omitempty"`
	Use    *string `json:"use,omitempty"`
	Rank   *int    `json:"rank,omitempty"`
	Period *Period `json:"period,omitempty"`
}

type Address struct {
	Element
	Use        *string  `json:"use,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Text       *string  `json:"text,omitempty"`
	Line       []string `json:"line,omitempty"`
	City       *string  `json:"city,omitempty"`
	District   *string  `json:"district,omitempty"`
	State      *string  `json:"state,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Country    *string  `json:"country,omitempty"`
	Period     *Period  `json:"period,omitempty"`
}

type HumanName struct {
	Element
	Use    *string  `json:"use,omitempty"`
	Text   *string  `json:"text,omitempty"`
	Family *string  `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
	Suffix []string `json:"suffix,omitempty"`
	Period *Period  `json:"period,omitempty"`
}

// String returns the text of the name, or the given names followed by the family name.
func (n HumanName) String() string {
	if n.Text != nil {
		return *n.Text
	}
	parts := slices.Clone(n.Given)
	if n.Family != nil {
		parts = append(parts, *n.Family)
	}
	return strings.Join(parts, " ")
}

type Attachment struct {
	Element
	ContentType *string `json:"contentType,omitempty"`
	Language    *string `json:"language,omitempty"`
	Data        *string `json:"data,omitempty"`
	URL         *string `json:"url,omitempty"`
	Size        *int    `json:"size,omitempty"`
	Hash        *string `json:"hash,omitempty"`
	Title       *string `json:"title,omitempty"`
	Creation    *string `json:"creation,omitempty"`
}
