package coding

import (
	"github.com/fouadsfarijlani/libfhir/r4"
)

func EqualsCode(coding r4.Coding, system string, value string) bool {
	return coding.System != nil && *coding.System == system &&
		coding.Code != nil && *coding.Code == value
}

// CodableIncludesCode reports whether the CodeableConcept contains a coding matching code.
// A code without system matches codings of any system.
func CodableIncludesCode(codable r4.CodeableConcept, code r4.Coding) bool {
	for _, coding := range codable.Coding {
		if code.System != nil && (coding.System == nil || *coding.System != *code.System) {
			continue
		}
		if coding.Code != nil && code.Code != nil && *coding.Code == *code.Code {
			return true
		}
	}
	return false
}

func CodablesIncludesCode(codables []r4.CodeableConcept, code r4.Coding) bool {
	for _, codable := range codables {
		if CodableIncludesCode(codable, code) {
			return true
		}
	}
	return false
}

// IdentifiersWithSystem returns the identifiers of the given system that have a value.
func IdentifiersWithSystem(identifiers []r4.Identifier, system string) []r4.Identifier {
	var result []r4.Identifier
	for _, identifier := range identifiers {
		if identifier.System != nil && *identifier.System == system && identifier.Value != nil && *identifier.Value != "" {
			result = append(result, identifier)
		}
	}
	return result
}
