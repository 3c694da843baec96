// Package preset loads named example matrices from YAML.
//
// A preset file is a YAML list of mappings with the keys name,
// description, augmented and rows; presets.yaml, embedded as the builtin
// set, is the reference layout. Each row is a YAML sequence of cells.
// Cells may be YAML integers or quoted "num/den" strings; both are parsed
// by matrix.Parse, so bad cells are reported with their 1-based position.
package preset
