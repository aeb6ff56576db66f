// Package models provides the shared data types of the JSON builder.
//
// The types mirror the documents consumed by the ElDewrito voting
// server: a voting document made of maps and game types, the mods
// document derived from it, and the persisted records (saved builders
// and user settings) kept between sessions.
//
// # Maps
//
// A [MapRef] pairs the label shown in the in-game vote with the
// engine map name:
//
//	m := models.MapRef{DisplayName: "High Ground", MapName: "deadlock"}
//
// # Types
//
// A [TypeRecord] is one voting entry. Its ID is a session-local handle
// and is never exported.
//
//	rec := models.NewTypeRecord(1)
//	rec.TypeName = "Slayer"
//
// # Map modes
//
// [MapMode] selects how the exported maps array is populated:
// [MapModeVanilla], [MapModeError] or [MapModeChosen].
package models
