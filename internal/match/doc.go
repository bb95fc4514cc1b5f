// Package match provides name normalization, Levenshtein distance calculation
// and ranking of near-miss property names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks existing keys that resemble a wanted key
package match
