package mcsd

import (
	"context"

	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// resourceIDResolver resolves a reference (e.g. Organization/1, or Organization?identifier=system|value)
// to the reference of a resource in the directory.
// References may use a different id than the resource has in the directory (e.g. when it was copied from another directory),
// or refer to the resource by identifier.
type resourceIDResolver interface {
	resolve(ctx context.Context, reference string) *string
}

// chainedResourceIDResolver tries multiple resolvers in order until one succeeds.
type chainedResourceIDResolver []resourceIDResolver

func (c chainedResourceIDResolver) resolve(ctx context.Context, reference string) *string {
	for _, resolver := range c {
		if localReference := resolver.resolve(ctx, reference); localReference != nil {
			return localReference
		}
	}
	return nil
}

var _ resourceIDResolver = (*mapResourceIDResolver)(nil)

// mapResourceIDResolver resolves references using a provided map of references to local references.
type mapResourceIDResolver map[string]string

func (t mapResourceIDResolver) resolve(_ context.Context, reference string) *string {
	if localReference, ok := t[reference]; ok {
		return &localReference
	}
	return nil
}

var _ resourceIDResolver = (*indexResourceIDResolver)(nil)

// indexResourceIDResolver resolves references to resources that are in the directory under the same reference.
type indexResourceIDResolver map[string]int

func (i indexResourceIDResolver) resolve(_ context.Context, reference string) *string {
	if _, ok := i[reference]; ok {
		return &reference
	}
	return nil
}

// identifierKey formats a logical reference the way r4.Reference formats an identifier-only reference.
func identifierKey(resourceType string, identifier r4.Identifier) string {
	return resourceType + "?identifier=" + to.Value(identifier.System) + "|" + to.Value(identifier.Value)
}

// identifierIndex maps the identifiers of all resources to the resource's reference.
// It is used to resolve identifier-only (logical) references.
func identifierIndex(resources []r4.Resource) mapResourceIDResolver {
	result := make(mapResourceIDResolver)
	for _, resource := range resources {
		for _, identifier := range identifiersOf(resource) {
			if to.Value(identifier.Value) == "" {
				continue
			}
			result[identifierKey(resource.ResourceType(), identifier)] = referenceKey(resource.ResourceType(), resource.GetID())
		}
	}
	return result
}

func identifiersOf(resource r4.Resource) []r4.Identifier {
	switch r := resource.(type) {
	case r4.Organization:
		return r.Identifier
	case r4.Endpoint:
		return r.Identifier
	case r4.Location:
		return r.Identifier
	case r4.Practitioner:
		return r.Identifier
	case r4.HealthcareService:
		return r.Identifier
	case r4.PractitionerRole:
		return r.Identifier
	case r4.OrganizationAffiliation:
		return r.Identifier
	}
	return nil
}

// resolver returns the resolver chain for references to resources in the directory. Callers must hold the lock.
func (d *Directory) resolver() resourceIDResolver {
	return chainedResourceIDResolver{
		indexResourceIDResolver(d.index),
		d.aliases,
		identifierIndex(d.resources),
	}
}

// resolve returns the resource the reference points to. Callers must hold the lock.
func (d *Directory) resolve(ctx context.Context, reference string) (r4.Resource, bool) {
	localReference := d.resolver().resolve(ctx, reference)
	if localReference == nil {
		return nil, false
	}
	i, ok := d.index[*localReference]
	if !ok {
		return nil, false
	}
	return d.resources[i], true
}

// UnresolvedReference is a reference that doesn't point to a resource in the directory.
type UnresolvedReference struct {
	// Source is the reference of the resource holding the reference, e.g. Organization/1.
	Source    string
	Reference r4.ReferenceTag
}

// ReferenceReport is the result of checking the references of all resources in a directory.
type ReferenceReport struct {
	Checked  int
	Resolved int
	// Dangling contains literal references (Type/id) that don't point to a resource in the directory.
	Dangling []UnresolvedReference
	// Unresolved contains logical (identifier-only) or empty references that don't point to a resource in the directory.
	// These may refer to resources outside the directory.
	Unresolved []UnresolvedReference
}

// OK returns whether the report contains no dangling references.
func (r ReferenceReport) OK() bool {
	return len(r.Dangling) == 0
}

// CheckReferences resolves the references of all resources in the directory.
// A reference resolves if it points to a resource in the directory, a resource known under another reference
// (through the fullUrl of the bundle entry it was loaded from), or a resource having the referenced identifier.
func (d *Directory) CheckReferences(ctx context.Context) ReferenceReport {
	ctx = logging.WithComponent(ctx, componentName)
	d.mux.RLock()
	defer d.mux.RUnlock()

	resolver := d.resolver()
	var report ReferenceReport
	for _, resource := range d.resources {
		source := referenceKey(resource.ResourceType(), resource.GetID())
		for _, ref := range resource.GetReferences() {
			report.Checked++
			if localReference := resolver.resolve(ctx, ref.String()); localReference != nil {
				report.Resolved++
				if *localReference != ref.String() {
					log.Ctx(ctx).Debug().Msgf("Resolved reference %s in %s to %s", ref, source, *localReference)
				}
				continue
			}
			unresolved := UnresolvedReference{Source: source, Reference: ref}
			if _, literal := ref.LocalID(); literal {
				report.Dangling = append(report.Dangling, unresolved)
			} else {
				report.Unresolved = append(report.Unresolved, unresolved)
			}
		}
	}
	log.Ctx(ctx).Info().
		Int("checked", report.Checked).
		Int("resolved", report.Resolved).
		Int("dangling", len(report.Dangling)).
		Int("unresolved", len(report.Unresolved)).
		Msg("Checked directory references")
	return report
}
