// Package schemas holds the JSON Schemas for every artifact the assistant
// reads or writes.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS
