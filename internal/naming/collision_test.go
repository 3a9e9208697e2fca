package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCollisions(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     []Collision
	}{
		{
			name:     "no collisions",
			existing: []string{"Wall-AO.png", "Wall-Albedo.png"},
			want:     nil,
		},
		{
			name:     "rename onto existing file",
			existing: []string{"Wall-AO.png", "wall_ao.png"},
			want:     []Collision{{Target: "wall_ao.png", Sources: []string{"Wall-AO.png", "wall_ao.png"}}},
		},
		{
			name:     "two renames onto one target",
			existing: []string{"WALL-AO.png", "Wall-AO.png", "Wall-Height.png"},
			want:     []Collision{{Target: "wall_ao.png", Sources: []string{"WALL-AO.png", "Wall-AO.png"}}},
		},
		{
			name:     "swap through a moved name is fine",
			existing: []string{"Wall-Normal.png"},
			want:     nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanRenames(tc.existing, ".png")
			assert.Equal(t, tc.want, FindCollisions(plan, tc.existing))
		})
	}
}
