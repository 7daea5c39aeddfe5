package mcsd

import (
	"context"

	"github.com/fouadsfarijlani/libfhir/lib/coding"
	"github.com/fouadsfarijlani/libfhir/lib/logging"
	"github.com/fouadsfarijlani/libfhir/r4"
	"github.com/rs/zerolog/log"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
)

// AdministrationDirectory is an mCSD Administration Directory, announced by an Endpoint in the directory.
type AdministrationDirectory struct {
	// Endpoint is the reference of the announcing Endpoint, e.g. Endpoint/1.
	Endpoint string
	// Address is the FHIR base URL of the Administration Directory.
	Address string
}

var administrationDirectoryPayloadType = r4.Coding{
	System: to.Ptr(coding.MCSDPayloadTypeSystem),
	Code:   to.Ptr(coding.MCSDPayloadTypeDirectoryCode),
}

// AdministrationDirectories returns the Administration Directories announced by Endpoints in the directory,
// in the order the Endpoints were added. An Endpoint announces one through its connection type (mcsd-directory)
// or through its payload type (the admin directory update client capability).
func (d *Directory) AdministrationDirectories(ctx context.Context) []AdministrationDirectory {
	ctx = logging.WithComponent(ctx, componentName)
	d.mux.RLock()
	defer d.mux.RUnlock()

	var result []AdministrationDirectory
	for _, resource := range d.resources {
		endpoint, ok := resource.(r4.Endpoint)
		if !ok || !isAdministrationDirectoryEndpoint(endpoint) {
			continue
		}
		if endpoint.Address == "" {
			log.Ctx(ctx).Warn().Msgf("Ignoring Administration Directory Endpoint/%s without address", endpoint.GetID())
			continue
		}
		result = append(result, AdministrationDirectory{
			Endpoint: referenceKey(endpoint.ResourceType(), endpoint.GetID()),
			Address:  endpoint.Address,
		})
	}
	log.Ctx(ctx).Debug().Msgf("Found %d Administration Directories", len(result))
	return result
}

func isAdministrationDirectoryEndpoint(endpoint r4.Endpoint) bool {
	return coding.EqualsCode(endpoint.ConnectionType, coding.MCSDConnectionTypeSystem, coding.MCSDConnectionTypeDirectoryCode) ||
		coding.CodablesIncludesCode(endpoint.PayloadType, administrationDirectoryPayloadType)
}
