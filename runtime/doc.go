// Package runtime defines the contract between generated protocol methods
// and the host binding layer.
//
// Code produced by the derivepy compiler references only this package: the
// capability interfaces a record type must satisfy (Equaler, Orderer,
// Hasher), the argument-binding machinery used by generated constructors,
// the field iterator returned by PyIter/PyReversed, and the reflective
// metadata records returned by PyFields.
//
// The package has no generation-time state. Everything here exists so that
// a host can dispatch the generated methods uniformly, by the slot names
// declared in this package.
package runtime
