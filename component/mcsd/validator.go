package mcsd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/fouadsfarijlani/libfhir/lib/coding"
	"github.com/fouadsfarijlani/libfhir/lib/fhirutil"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/lib/valuesets"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// ValidationRules are the rules for resources that are offered to the directory as update.
type ValidationRules struct {
	AllowedResourceTypes []string
}

var errNoURA = errors.New("organization must have an URA identifier or be part of an organization that has one")

// ValidateUpdate checks whether the resource may be added to the directory, and returns the parsed resource if so:
//   - the resource type must be allowed,
//   - an Organization must have exactly one URA identifier, or be part of an organization that has one,
//   - an Endpoint must be referenced by an Organization in the directory,
//   - references to managing/providing organizations must point to an Organization in the directory,
//   - codes from known code systems must be part of the value set.
//
// See https://nuts-foundation.github.io/nl-generic-functions-ig/care-services.html#update-client
func (d *Directory) ValidateUpdate(ctx context.Context, rules ValidationRules, resourceJSON []byte) (r4.Resource, error) {
	ctx = logging.WithComponent(ctx, componentName)
	info, err := fhirutil.ExtractResourceInfo(resourceJSON)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(rules.AllowedResourceTypes, info.ResourceType) {
		return nil, fmt.Errorf("resource type %s not allowed", info.ResourceType)
	}
	resource, err := r4.ParseResource(resourceJSON)
	if err != nil {
		return nil, err
	}

	d.mux.RLock()
	defer d.mux.RUnlock()
	switch r := resource.(type) {
	case r4.Organization:
		err = d.validateOrganizationResource(ctx, r)
	case r4.Endpoint:
		err = d.validateEndpointResource(ctx, r)
	case r4.Location:
		err = errors.Join(
			d.assertOptionalReferencePointsToValidOrganization(ctx, r.ManagingOrganization, "Location.managingOrganization"),
			validateCodings("Location.type", r.Type...),
			validateCodings("Location.physicalType", optional(r.PhysicalType)...),
		)
	case r4.HealthcareService:
		err = errors.Join(
			d.assertOptionalReferencePointsToValidOrganization(ctx, r.ProvidedBy, "HealthcareService.providedBy"),
			validateCodings("HealthcareService.type", r.Type...),
		)
	}
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msgf("Rejected update of %s/%s", info.ResourceType, info.ID)
		return nil, err
	}
	return resource, nil
}

func (d *Directory) validateOrganizationResource(ctx context.Context, org r4.Organization) error {
	if err := validateCodings("Organization.type", org.Type...); err != nil {
		return err
	}
	uras := coding.IdentifiersWithSystem(org.Identifier, coding.URANamingSystem)
	switch {
	case len(uras) > 1:
		return errors.New("organization can't have multiple URA identifiers")
	case len(uras) == 1:
		return nil
	case org.PartOf == nil:
		return errNoURA
	}

	visited := map[string]bool{org.GetID(): true}
	current := org
	for current.PartOf != nil {
		if identifier := current.PartOf.Identifier; current.PartOf.Reference == nil && identifier != nil &&
			to.Value(identifier.System) == coding.URANamingSystem && to.Value(identifier.Value) != "" {
			return nil
		}
		parent, ok := d.resolveOrganization(ctx, *current.PartOf)
		if !ok {
			return fmt.Errorf("Organization.partOf: %s not found in directory", current.PartOf)
		}
		if visited[parent.GetID()] {
			return fmt.Errorf("Organization.partOf: cycle at %s", current.PartOf)
		}
		visited[parent.GetID()] = true
		if len(coding.IdentifiersWithSystem(parent.Identifier, coding.URANamingSystem)) > 0 {
			return nil
		}
		current = parent
	}
	return errNoURA
}

func (d *Directory) validateEndpointResource(ctx context.Context, endpoint r4.Endpoint) error {
	var payloadCodings []r4.Coding
	for _, payloadType := range endpoint.PayloadType {
		payloadCodings = append(payloadCodings, payloadType.Coding...)
	}
	return errors.Join(
		validateCodings("Endpoint.connectionType", r4.CodeableConcept{Coding: []r4.Coding{endpoint.ConnectionType}}),
		validateCodings("Endpoint.payloadType", r4.CodeableConcept{Coding: payloadCodings}),
		d.assertOptionalReferencePointsToValidOrganization(ctx, endpoint.ManagingOrganization, "Endpoint.managingOrganization"),
		d.assertOrganizationHasEndpointReference(endpoint.GetID()),
	)
}

// resolveOrganization looks up the referenced organization in the directory.
func (d *Directory) resolveOrganization(ctx context.Context, ref r4.Reference[r4.OrganizationKind]) (r4.Organization, bool) {
	resource, ok := d.resolve(ctx, ref.String())
	if !ok {
		return r4.Organization{}, false
	}
	org, ok := resource.(r4.Organization)
	return org, ok
}

func (d *Directory) assertOptionalReferencePointsToValidOrganization(ctx context.Context, ref *r4.Reference[r4.OrganizationKind], path string) error {
	if ref == nil {
		return nil
	}
	return d.assertReferencePointsToValidOrganization(ctx, *ref, path)
}

func (d *Directory) assertReferencePointsToValidOrganization(ctx context.Context, ref r4.Reference[r4.OrganizationKind], path string) error {
	if ref.IsEmpty() {
		return fmt.Errorf("%s: empty reference", path)
	}
	if _, ok := d.resolveOrganization(ctx, ref); !ok {
		return fmt.Errorf("%s: %s not found in directory", path, ref)
	}
	return nil
}

func (d *Directory) assertOrganizationHasEndpointReference(endpointID string) error {
	if endpointID == "" {
		return fmt.Errorf("Endpoint: %w", r4.ErrMissingID)
	}
	for _, resource := range d.resources {
		org, ok := resource.(r4.Organization)
		if !ok {
			continue
		}
		for _, ref := range org.Endpoint {
			if id, ok := ref.LocalID(); ok && id == endpointID {
				return nil
			}
		}
	}
	return fmt.Errorf("Endpoint/%s is not referenced by any organization in the directory", endpointID)
}

// validateCodings checks that codings of code systems that have a value set, use a code from that value set.
// Codings of other code systems are accepted as-is.
func validateCodings(path string, codables ...r4.CodeableConcept) error {
	for _, codable := range codables {
		for _, c := range codable.Coding {
			setId, ok := valuesets.SetForSystem(to.Value(c.System))
			if !ok {
				continue
			}
			if !valuesets.Includes(setId, c) {
				return fmt.Errorf("%s: code %q is not part of value set %s", path, to.Value(c.Code), setId)
			}
		}
	}
	return nil
}

func optional[T any](value *T) []T {
	if value == nil {
		return nil
	}
	return []T{*value}
}
