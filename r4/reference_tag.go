package r4

// ReferenceTag is a Reference whose kind is carried as a tag, so references to different kinds
// can be returned and inspected as one sequence.
// The set of variants is closed: every ReferenceTag is a Tagged[K] for one of the kinds in this package.
// Use a type switch on the variant aliases (OrganizationTag, EndpointTag, ...) to get the typed Reference back:
//
//	switch ref := tag.(type) {
//	case r4.OrganizationTag:
//		org := ref.Value()
//	case r4.EndpointTag:
//		...
//	}
type ReferenceTag interface {
	// Kind returns the canonical name of the kind the reference points to.
	Kind() string
	// LocalID returns the id part of the literal reference, if there is one.
	LocalID() (string, bool)
	// Identifier returns the logical identifier of the reference, if any.
	Identifier() *Identifier
	// Display returns the display text of the reference, or an empty string.
	Display() string
	// Equal reports whether other wraps the same kind with equal field values.
	Equal(other ReferenceTag) bool
	String() string
	referenceTag()
}

// Tagged is the variant of ReferenceTag that wraps a Reference of kind K.
// It can only be created through Tag, so the tag always agrees with the wrapped value.
type Tagged[K Kind] struct {
	ref Reference[K]
}

type (
	OrganizationTag            = Tagged[OrganizationKind]
	EndpointTag                = Tagged[EndpointKind]
	LocationTag                = Tagged[LocationKind]
	PractitionerTag            = Tagged[PractitionerKind]
	HealthcareServiceTag       = Tagged[HealthcareServiceKind]
	PractitionerRoleTag        = Tagged[PractitionerRoleKind]
	OrganizationAffiliationTag = Tagged[OrganizationAffiliationKind]
)

var _ ReferenceTag = Tagged[OrganizationKind]{}

// Tag wraps the reference in the ReferenceTag variant of its kind.
func Tag[K Kind](ref Reference[K]) ReferenceTag {
	return Tagged[K]{ref: ref}
}

// Value returns the wrapped, typed reference.
func (t Tagged[K]) Value() Reference[K] {
	return t.ref
}

func (t Tagged[K]) Kind() string {
	return t.ref.Kind()
}

func (t Tagged[K]) LocalID() (string, bool) {
	return t.ref.LocalID()
}

func (t Tagged[K]) Identifier() *Identifier {
	return t.ref.Identifier
}

func (t Tagged[K]) Display() string {
	if t.ref.Display == nil {
		return ""
	}
	return *t.ref.Display
}

func (t Tagged[K]) Equal(other ReferenceTag) bool {
	o, ok := other.(Tagged[K])
	return ok && t.ref.Equal(o.ref)
}

func (t Tagged[K]) String() string {
	return t.ref.String()
}

func (Tagged[K]) referenceTag() {}
