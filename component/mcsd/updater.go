package mcsd

import (
	"context"
	"fmt"

	"github.com/fouadsfarijlani/libfhir/lib/fhirutil"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/lib/profile"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// BuildTransaction exports the directory as FHIR transaction Bundle, which creates or updates all resources
// (PUT Type/id) in a FHIR server, e.g. a local mCSD Query Directory.
// Entries get a urn:uuid fullUrl and are ordered as the resources were added to the directory.
// If a source URL is configured, it is set as meta.source of every resource.
func (d *Directory) BuildTransaction(ctx context.Context) (fhir.Bundle, error) {
	ctx = logging.WithComponent(ctx, componentName)
	resources := d.Resources()

	tx := fhir.Bundle{
		Type:  fhir.BundleTypeTransaction,
		Entry: make([]fhir.BundleEntry, 0, len(resources)),
	}
	for _, resource := range resources {
		if d.config.DeclareProfiles {
			if profileURL := profile.ForResourceType(resource.ResourceType()); profileURL != nil {
				resource = withMeta(resource, func(meta *r4.Meta) *r4.Meta {
					return profile.Set(meta, *profileURL)
				})
			}
		}
		resourceJSON, err := resource.ToJSON()
		if err != nil {
			return fhir.Bundle{}, errors.Wrapf(err, "marshal %s/%s", resource.ResourceType(), resource.GetID())
		}
		tx.Entry = append(tx.Entry, fhir.BundleEntry{
			FullUrl:  to.Ptr("urn:uuid:" + uuid.NewString()),
			Resource: resourceJSON,
			Request: &fhir.BundleEntryRequest{
				Url:    referenceKey(resource.ResourceType(), resource.GetID()),
				Method: fhir.HTTPVerbPUT,
			},
		})
	}

	if d.config.SourceURL != "" {
		err := fhirutil.VisitBundleResources[map[string]any](&tx, func(resource *map[string]any) error {
			resourceType, _ := (*resource)["resourceType"].(string)
			id, _ := (*resource)["id"].(string)
			source, err := fhirutil.BuildSourceURL(d.config.SourceURL, resourceType, id)
			if err != nil {
				return fmt.Errorf("build source URL: %w", err)
			}
			setResourceMetaSource(*resource, source)
			return nil
		})
		if err != nil {
			return fhir.Bundle{}, errors.Wrap(err, "set meta.source")
		}
	}
	log.Ctx(ctx).Debug().Msgf("Built transaction bundle with %d entries", len(tx.Entry))
	return tx, nil
}

func setResourceMetaSource(resource map[string]any, source string) {
	if meta, ok := resource["meta"].(map[string]any); ok {
		meta["source"] = source
	} else {
		resource["meta"] = map[string]any{"source": source}
	}
}

// withMeta returns a copy of the resource with its meta replaced by the result of fn.
func withMeta(resource r4.Resource, fn func(meta *r4.Meta) *r4.Meta) r4.Resource {
	switch r := resource.(type) {
	case r4.Organization:
		r.Meta = fn(r.Meta)
		return r
	case r4.Endpoint:
		r.Meta = fn(r.Meta)
		return r
	case r4.Location:
		r.Meta = fn(r.Meta)
		return r
	case r4.Practitioner:
		r.Meta = fn(r.Meta)
		return r
	case r4.HealthcareService:
		r.Meta = fn(r.Meta)
		return r
	case r4.PractitionerRole:
		r.Meta = fn(r.Meta)
		return r
	case r4.OrganizationAffiliation:
		r.Meta = fn(r.Meta)
		return r
	}
	return resource
}
