// Package xmlfeed turns namespaced XML feed documents into flat, ordered
// records. Records are untyped (text or null per field); typed coercion is
// applied afterwards through a RecordDecoder.
package xmlfeed

// Namespace is the XML namespace URI shared by every element of a feed.
type Namespace string

// Qualify returns the fully qualified element name used to match the direct
// children of a record element, in the form "{namespace}local".
func (ns Namespace) Qualify(local string) string {
	return "{" + string(ns) + "}" + local
}
