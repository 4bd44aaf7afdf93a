// Package gamedata provides the embedded board data: effect value sets and
// the marker palette shared by the renderers.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
