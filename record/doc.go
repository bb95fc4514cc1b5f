// Package record provides an ordered, loosely-typed key/value record and
// uniform read access over every value shape the module treats as a record.
//
// Key capabilities:
//   - Record: insertion-ordered map from string keys to values of mixed type
//   - IsRecord / Lookup / KeysOf: presence checks over *Record and string-keyed maps
//   - DecodeJSON / DecodeYAML / LoadFile: decoding that keeps document key order
package record
