package rdf

// Namespace and term constants used throughout the package.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// RDFType is the rdf:type predicate, the expansion of the short name "a".
	RDFType = RDFNamespace + "type"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	// XSDString is the xsd:string datatype IRI.
	XSDString = XSDNamespace + "string"
	// XSDInteger is the xsd:integer datatype IRI.
	XSDInteger = XSDNamespace + "integer"
	// XSDBoolean is the xsd:boolean datatype IRI.
	XSDBoolean = XSDNamespace + "boolean"
)
