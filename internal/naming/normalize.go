package naming

import (
	"sort"
	"strings"
)

// Rename is one planned in-place file rename inside a directory.
type Rename struct {
	From string
	To   string
}

// Normalize lowercases name and then runs every rule of [Rules] in order.
func Normalize(name string) string {
	out := strings.ToLower(name)
	for _, r := range Rules {
		out, _ = r.Apply(out)
	}
	return out
}

// PlanRenames returns the renames needed to normalize every name ending in
// ext, sorted by source name. Names whose normalized form is unchanged are
// omitted. Collisions between targets are not resolved; the caller owns
// uniqueness.
func PlanRenames(names []string, ext string) []Rename {
	var plan []Rename
	for _, name := range names {
		if !strings.HasSuffix(name, ext) {
			continue
		}
		if to := Normalize(name); to != name {
			plan = append(plan, Rename{From: name, To: to})
		}
	}
	sort.Slice(plan, func(i, j int) bool { return plan[i].From < plan[j].From })
	return plan
}
