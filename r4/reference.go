package r4

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// Reference is a FHIR Reference that may only point to resources of kind K.
// It can point by literal reference ("Organization/123"), by logical identifier, or both.
// The zero value is a valid, empty reference.
//
// When decoded from JSON, the literal reference must be "<K>/<id>" with a non-empty id,
// otherwise decoding fails with a ReferenceKindMismatchError.
type Reference[K Kind] struct {
	// Reference is the literal reference, "<CanonicalName>/<local-id>".
	Reference *string `json:"reference,omitempty"`
	// Type is a free-text type hint. It is kept for wire fidelity and not validated against K.
	Type       *string     `json:"type,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty"`
	Display    *string     `json:"display,omitempty"`
}

// ToID returns a literal reference to the resource of kind K with the given local id.
// It does not validate localID: ToID[K]("") yields "<K>/", which UnmarshalJSON rejects,
// so a resource holding such a reference does not survive a JSON round trip.
func ToID[K Kind](localID string) Reference[K] {
	return Reference[K]{
		Reference: to.Ptr(CanonicalName[K]() + "/" + localID),
	}
}

// ByIdentifier returns a logical reference to the resource of kind K identified by (system, value).
func ByIdentifier[K Kind](system, value string) Reference[K] {
	return Reference[K]{
		Identifier: &Identifier{
			System: to.Ptr(system),
			Value:  to.Ptr(value),
		},
	}
}

// WithDisplay returns a copy of the reference with the given display text.
func (r Reference[K]) WithDisplay(display string) Reference[K] {
	r.Display = to.Ptr(display)
	return r
}

// WithType returns a copy of the reference with the given type hint.
func (r Reference[K]) WithType(typeHint string) Reference[K] {
	r.Type = to.Ptr(typeHint)
	return r
}

// Kind returns the canonical name of the resource kind this reference may point to.
func (r Reference[K]) Kind() string {
	return CanonicalName[K]()
}

// LocalID returns the id part of the literal reference.
// It returns false if the reference has no literal reference or if it doesn't target K.
func (r Reference[K]) LocalID() (string, bool) {
	if r.Reference == nil {
		return "", false
	}
	return splitLocalID(CanonicalName[K](), *r.Reference)
}

// IsEmpty returns true if none of the reference's fields are set.
func (r Reference[K]) IsEmpty() bool {
	return r.Reference == nil && r.Type == nil && r.Identifier == nil && r.Display == nil
}

// Equal reports whether both references have equal field values.
func (r Reference[K]) Equal(other Reference[K]) bool {
	return equalPtr(r.Reference, other.Reference) &&
		equalPtr(r.Type, other.Type) &&
		equalPtr(r.Display, other.Display) &&
		r.Identifier.equal(other.Identifier)
}

func (r Reference[K]) String() string {
	switch {
	case r.Reference != nil:
		return *r.Reference
	case r.Identifier != nil:
		return CanonicalName[K]() + "?identifier=" + to.Value(r.Identifier.System) + "|" + to.Value(r.Identifier.Value)
	default:
		return CanonicalName[K]() + "/<empty>"
	}
}

// referenceFields mirrors Reference without the kind parameter, so it decodes without recursing into UnmarshalJSON.
type referenceFields struct {
	Reference  *string     `json:"reference,omitempty"`
	Type       *string     `json:"type,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty"`
	Display    *string     `json:"display,omitempty"`
}

func (r *Reference[K]) UnmarshalJSON(data []byte) error {
	var result referenceFields
	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}
	if result.Reference != nil {
		if err := checkReferenceKind(CanonicalName[K](), *result.Reference); err != nil {
			return err
		}
	}
	*r = Reference[K](result)
	return nil
}

func checkReferenceKind(kind string, reference string) error {
	if _, ok := splitLocalID(kind, reference); !ok {
		return &ReferenceKindMismatchError{Expected: kind, Actual: reference}
	}
	return nil
}

func splitLocalID(kind string, reference string) (string, bool) {
	localID, ok := strings.CutPrefix(reference, kind+"/")
	if !ok || localID == "" {
		return "", false
	}
	return localID, true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
