// Package domain defines the data types and contracts shared across edsign.
//
// It contains plain fixed-size key types (types) and the interfaces that the
// signing primitive, the entropy source and the signature service implement
// (interfaces). Both are re-exported here for compact imports.
package domain
