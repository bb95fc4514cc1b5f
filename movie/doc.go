// Package movie inspects loosely-typed movie records.
//
// Every accessor treats invalid or incomplete input as an ordinary outcome:
// it returns a sentinel ("", 0, false or an empty slice) and reports one
// diagnostic to the Inspector's sink. Nothing panics and nothing returns an error.
//
// Records are *record.Record values or maps with string keys. Presence is
// explicit: a key that exists with a zero value (title "" or year 0) is present;
// only an absent key or a nil value counts as missing.
package movie
