package r4

// Kind is implemented by the zero-size marker types that tag a Reference with the resource type it may point to.
// The set of kinds is closed: only this package can implement it.
type Kind interface {
	// CanonicalName returns the resourceType of the kind, e.g. "Organization".
	// It is a constant and can be read from the zero value.
	CanonicalName() string
	kind()
}

type OrganizationKind struct{}

func (OrganizationKind) CanonicalName() string { return "Organization" }
func (OrganizationKind) kind()                 {}

type EndpointKind struct{}

func (EndpointKind) CanonicalName() string { return "Endpoint" }
func (EndpointKind) kind()                 {}

type LocationKind struct{}

func (LocationKind) CanonicalName() string { return "Location" }
func (LocationKind) kind()                 {}

type PractitionerKind struct{}

func (PractitionerKind) CanonicalName() string { return "Practitioner" }
func (PractitionerKind) kind()                 {}

type HealthcareServiceKind struct{}

func (HealthcareServiceKind) CanonicalName() string { return "HealthcareService" }
func (HealthcareServiceKind) kind()                 {}

type PractitionerRoleKind struct{}

func (PractitionerRoleKind) CanonicalName() string { return "PractitionerRole" }
func (PractitionerRoleKind) kind()                 {}

type OrganizationAffiliationKind struct{}

func (OrganizationAffiliationKind) CanonicalName() string { return "OrganizationAffiliation" }
func (OrganizationAffiliationKind) kind()                 {}

// CanonicalName returns the resourceType for kind K.
func CanonicalName[K Kind]() string {
	var k K
	return k.CanonicalName()
}

// Kinds returns the canonical names of all resource kinds, in a fixed order.
func Kinds() []string {
	return []string{
		CanonicalName[OrganizationKind](),
		CanonicalName[EndpointKind](),
		CanonicalName[LocationKind](),
		CanonicalName[PractitionerKind](),
		CanonicalName[HealthcareServiceKind](),
		CanonicalName[PractitionerRoleKind](),
		CanonicalName[OrganizationAffiliationKind](),
	}
}
