// Package model defines the hospital entities shared by the store, the
// validators and the screens.
//
// Integer ids are assigned by the store on insert and are zero on values
// that have not been persisted yet. Optional text columns are *string so
// that "not provided" round-trips as SQL NULL rather than an empty string.
package model
