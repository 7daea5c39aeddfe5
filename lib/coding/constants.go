package coding

// URANamingSystem is the naming system of the URA (UZI register number) of Dutch care providers.
const URANamingSystem = "http://fhir.nl/fhir/NamingSystem/ura"
const MCSDConnectionTypeSystem = "http://fhir.nl/fhir/NamingSystem/endpoint-connection-type"
const MCSDPayloadTypeSystem = "http://nuts-foundation.github.io/nl-generic-functions-ig/CodeSystem/nl-gf-data-exchange-capabilities"
const MCSDPayloadTypeDirectoryCode = "http://nuts-foundation.github.io/nl-generic-functions-ig/CapabilityStatement/nl-gf-admin-directory-update-client"
const MCSDConnectionTypeDirectoryCode = "mcsd-directory"
