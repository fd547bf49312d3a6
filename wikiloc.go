// Package wikiloc extracts geographic locations from Wikipedia article
// pages. It runs an ordered set of coordinate-extraction strategies over
// each page, falls back to infobox address extraction when none of them
// match, and optionally geocodes detailed addresses through external
// providers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package wikiloc
