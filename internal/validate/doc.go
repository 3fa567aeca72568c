// Package validate turns raw form text into domain values.
//
// Every validator is pure apart from the optional References lookup and
// returns an Errors map keyed by field. Screens render the map inline and
// only write to the store when it is empty.
package validate
