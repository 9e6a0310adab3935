// Package converters defines the capability boundary for file converters.
//
// A converter transforms a raw instrument file of one type into a storable
// artifact of another type. This package only carries the contract and the
// naming scheme used to reference converter implementations from dataset
// info files; the concrete converters live with the backends that need them.
package converters
