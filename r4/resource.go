package r4

import (
	"github.com/google/uuid"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// Resource is implemented by all resources in this package.
type Resource interface {
	ReferenceExtractor
	// ResourceType returns the FHIR resourceType, which equals the CanonicalName of the resource's kind.
	ResourceType() string
	// GetID returns the logical id of the resource, or an empty string if it has none.
	GetID() string
	ToJSON() ([]byte, error)
	ToJSONPretty() ([]byte, error)
}

// DomainResource holds the fields shared by all resources.
type DomainResource struct {
	ID            *string    `json:"id,omitempty"`
	Meta          *Meta      `json:"meta,omitempty"`
	ImplicitRules *string    `json:"implicitRules,omitempty"`
	Language      *string    `json:"language,omitempty"`
	Text          *Narrative `json:"text,omitempty"`
}

func (r DomainResource) GetID() string {
	return to.Value(r.ID)
}

// NewID returns a random logical id, for resources that are created locally.
func NewID() string {
	return uuid.NewString()
}

func newDomainResource(id string) DomainResource {
	if id == "" {
		return DomainResource{}
	}
	return DomainResource{ID: to.Ptr(id)}
}

// referenceTo returns a literal reference to the resource of kind K with the given id.
func referenceTo[K Kind](id *string, display *string) (Reference[K], error) {
	if id == nil || *id == "" {
		return Reference[K]{}, ErrMissingID
	}
	ref := ToID[K](*id)
	if display != nil {
		ref = ref.WithDisplay(*display)
	}
	return ref, nil
}
