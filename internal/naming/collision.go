package naming

import "sort"

// Collision is a rename target claimed by more than one file, or by a
// rename and a file that already carries that name.
type Collision struct {
	Target  string
	Sources []string // Sorted; includes Target itself when it already exists.
}

// FindCollisions reports every target of plan that would overwrite another
// file. existing is the full listing of the directory the plan applies to.
// Collisions are only reported; renaming still proceeds in plan order.
func FindCollisions(plan []Rename, existing []string) []Collision {
	moving := make(map[string]bool, len(plan))
	for _, r := range plan {
		moving[r.From] = true
	}

	owners := make(map[string][]string) // target → names that end up there
	for _, name := range existing {
		if !moving[name] {
			owners[name] = append(owners[name], name)
		}
	}
	for _, r := range plan {
		owners[r.To] = append(owners[r.To], r.From)
	}

	var out []Collision
	for target, srcs := range owners {
		if len(srcs) < 2 {
			continue
		}
		sort.Strings(srcs)
		out = append(out, Collision{Target: target, Sources: srcs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}
