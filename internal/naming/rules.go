package naming

import "strings"

// SuffixRule rewrites a trailing Old suffix to New. Old is always
// lowercase because names are lowercased before any rule runs.
type SuffixRule struct {
	Old string
	New string
}

// Rules is the ordered suffix table. Every rule is checked against the
// name as left by the rules before it, so several may fire on one name.
var Rules = []SuffixRule{
	{"roughnessmetalness.png", "metalRoughness.png"},
	{"-ao.png", "_ao.png"},
	{"-albedo.png", "_albedo.png"},
	{"-height.png", "_height.png"},
	{"-normal-ogl.png", "_normal-ogl.png"},
	{"-normal.png", "_normal.png"},
	{"-metallic.png", "_metallic.png"},
	{"-roughness.png", "_roughness.png"},
}

// Apply returns name with the rule applied and whether it fired.
//
// A name that already ends in the lowercased form of New has its suffix
// restored to New, so a canonical mixed-case suffix such as
// "metalRoughness.png" survives the lowercasing of a second pass.
func (r SuffixRule) Apply(name string) (string, bool) {
	if strings.HasSuffix(name, r.Old) {
		return strings.TrimSuffix(name, r.Old) + r.New, true
	}
	lowerNew := strings.ToLower(r.New)
	if lowerNew != r.New && strings.HasSuffix(name, lowerNew) {
		return strings.TrimSuffix(name, lowerNew) + r.New, true
	}
	return name, false
}
