package r4

// ReferenceExtractor is implemented by every resource that can list the references it holds.
type ReferenceExtractor interface {
	// GetReferences returns all references of the resource in a fixed order, skipping absent ones.
	// The result is never nil.
	GetReferences() []ReferenceTag
}

// CollectReferences returns the references of all given resources, in argument order.
func CollectReferences(resources ...ReferenceExtractor) []ReferenceTag {
	result := make([]ReferenceTag, 0)
	for _, resource := range resources {
		result = append(result, resource.GetReferences()...)
	}
	return result
}

func appendReference[K Kind](refs []ReferenceTag, ref *Reference[K]) []ReferenceTag {
	if ref == nil {
		return refs
	}
	return append(refs, Tag(*ref))
}

func appendReferences[K Kind](refs []ReferenceTag, list []Reference[K]) []ReferenceTag {
	for _, ref := range list {
		refs = append(refs, Tag(ref))
	}
	return refs
}
