package mcsd

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/fouadsfarijlani/libfhir/lib/fhirutil"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

const componentName = "mcsd"

type Config struct {
	// SourceURL is the FHIR base URL written to meta.source of exported resources, e.g. https://example.com/fhir.
	// Exported resources get no meta.source if it is empty.
	SourceURL string `mapstructure:"sourceurl" validate:"omitempty,url"`
	// DeclareProfiles adds the NL Generic Functions profile to meta.profile of exported resources that have one.
	DeclareProfiles bool `mapstructure:"declareprofiles"`
	// AllowedResourceTypes are the resource types accepted by ValidateUpdate.
	AllowedResourceTypes []string `mapstructure:"allowedresourcetypes" validate:"dive,required"`
}

func DefaultConfig() Config {
	return Config{
		AllowedResourceTypes: []string{"Organization", "Endpoint", "Location", "HealthcareService"},
	}
}

// Directory is an in-memory mCSD Directory: a set of care services resources, indexed by resource type and id.
// Resources keep the order in which they were first added. It is safe for concurrent use.
type Directory struct {
	config Config

	mux       sync.RWMutex
	resources []r4.Resource
	index     map[string]int
	// aliases maps references to resources as they were known at their origin (e.g. Organization/remote-1)
	// to the resource's reference in this directory.
	aliases mapResourceIDResolver
}

// LoadResult describes the outcome of LoadBundle.
type LoadResult struct {
	Loaded int
	// Skipped contains a description of every entry that was skipped because its resource type isn't supported.
	Skipped []string
}

func New(config Config) *Directory {
	return &Directory{
		config:  config,
		index:   make(map[string]int),
		aliases: make(mapResourceIDResolver),
	}
}

func referenceKey(resourceType string, id string) string {
	return resourceType + "/" + id
}

// Add adds the resource to the directory. A resource with the same type and id is replaced, keeping its position.
// Resources without id can't be added.
func (d *Directory) Add(resource r4.Resource) error {
	if resource.GetID() == "" {
		return errors.Wrapf(r4.ErrMissingID, "add %s", resource.ResourceType())
	}
	d.mux.Lock()
	defer d.mux.Unlock()
	d.add(resource)
	return nil
}

// AddModel adds a golang-fhir-models resource (e.g. fhir.Organization) to the directory.
func (d *Directory) AddModel(model any) error {
	resource, err := fhirutil.FromModel(model)
	if err != nil {
		return errors.Wrapf(err, "convert %T", model)
	}
	return d.Add(resource)
}

func (d *Directory) add(resource r4.Resource) {
	key := referenceKey(resource.ResourceType(), resource.GetID())
	if i, ok := d.index[key]; ok {
		d.resources[i] = resource
		return
	}
	d.index[key] = len(d.resources)
	d.resources = append(d.resources, resource)
}

// Get returns the resource with the given resource type (e.g. Organization) and id.
func (d *Directory) Get(resourceType string, id string) (r4.Resource, bool) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return d.get(resourceType, id)
}

func (d *Directory) get(resourceType string, id string) (r4.Resource, bool) {
	i, ok := d.index[referenceKey(resourceType, id)]
	if !ok {
		return nil, false
	}
	return d.resources[i], true
}

// GetAs returns the resource of type T with the given id.
func GetAs[T r4.Resource](d *Directory, id string) (T, bool) {
	var zero T
	resource, ok := d.Get(zero.ResourceType(), id)
	if !ok {
		return zero, false
	}
	result, ok := resource.(T)
	return result, ok
}

// Resources returns all resources in the order they were added.
func (d *Directory) Resources() []r4.Resource {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return slices.Clone(d.resources)
}

func (d *Directory) Len() int {
	d.mux.RLock()
	defer d.mux.RUnlock()
	return len(d.resources)
}

// LoadBundle adds the resources in a FHIR Bundle of any type to the directory.
// Entries holding resource types that aren't supported are skipped with a warning.
// If any other entry can't be parsed, no resources are added.
func (d *Directory) LoadBundle(ctx context.Context, data []byte) (LoadResult, error) {
	ctx = logging.WithComponent(ctx, componentName)
	var bundle fhir.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return LoadResult{}, errors.Wrap(err, "unmarshal bundle")
	}

	var result LoadResult
	var resources []r4.Resource
	aliases := make(map[string]string)
	for i, entry := range bundle.Entry {
		if entry.Resource == nil {
			continue
		}
		resource, err := r4.ParseResource(entry.Resource)
		if errors.Is(err, r4.ErrUnsupportedResourceType) {
			skipped := skippedEntryName(i, entry.Resource, err)
			log.Ctx(ctx).Warn().
				Str("resource", skipped).
				Str("fullUrl", to.Value(entry.FullUrl)).
				Msg("Skipping bundle entry with unsupported resource type")
			result.Skipped = append(result.Skipped, skipped)
			continue
		}
		if err != nil {
			return LoadResult{}, errors.Wrapf(err, "bundle entry %d", i)
		}
		if resource.GetID() == "" {
			return LoadResult{}, errors.Wrapf(r4.ErrMissingID, "bundle entry %d (%s)", i, resource.ResourceType())
		}
		key := referenceKey(resource.ResourceType(), resource.GetID())
		if alias, ok := fullURLReference(to.Value(entry.FullUrl), resource.ResourceType()); ok && alias != key {
			aliases[alias] = key
		}
		resources = append(resources, resource)
	}

	d.mux.Lock()
	defer d.mux.Unlock()
	for _, resource := range resources {
		d.add(resource)
	}
	for alias, key := range aliases {
		d.aliases[alias] = key
	}
	result.Loaded = len(resources)
	log.Ctx(ctx).Info().
		Int("loaded", result.Loaded).
		Int("skipped", len(result.Skipped)).
		Msg("Loaded bundle into directory")
	return result, nil
}

// skippedEntryName describes a bundle entry that couldn't be parsed, as Type/id if its id can be read.
func skippedEntryName(index int, resource []byte, parseErr error) string {
	if info, err := fhirutil.ExtractResourceInfo(resource); err == nil {
		return referenceKey(info.ResourceType, info.ID)
	}
	resourceType := "unknown"
	var target *r4.ParseError
	if errors.As(parseErr, &target) && target.ResourceType != "" {
		resourceType = target.ResourceType
	}
	return fmt.Sprintf("%s (entry %d)", resourceType, index)
}

// fullURLReference returns the relative reference (Type/id) contained in an absolute bundle entry fullUrl,
// e.g. Organization/1 for https://example.com/fhir/Organization/1/_history/2.
func fullURLReference(fullURL string, resourceType string) (string, bool) {
	parsed, err := url.Parse(fullURL)
	if err != nil || !parsed.IsAbs() {
		return "", false
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i] == resourceType && segments[i+1] != "" {
			return referenceKey(resourceType, segments[i+1]), true
		}
	}
	return "", false
}
