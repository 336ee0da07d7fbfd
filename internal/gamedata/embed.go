// Package gamedata provides the embedded creature and item tables that
// floors are stocked from.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
