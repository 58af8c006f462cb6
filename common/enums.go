// Enums shared between configuration and the rendering actions live in a
// separate package so that config does not need to import compose.
package common

//go:generate go tool go-enum --nocase --names --marshal

// Specification of requested rendering output format: plain emits one
// selector per line, css emits empty rule blocks usable as a stylesheet
// skeleton.
// ENUM(plain, css)
type OutputFmt int
