// Package naming normalizes PBR texture file names to the canonical
// lowercase suffix vocabulary (_albedo, _ao, _height, _normal, _normal-ogl,
// _metallic, _roughness, metalRoughness).
//
// The rule table in rules.go is an ordered slice, not a map: rules apply
// cumulatively in table order and the order is part of the behavior.
package naming
