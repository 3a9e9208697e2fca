package config

import "strings"

// Excluded reports whether name carries the exclusion marker and must be
// left out of every listing.
func (c *Config) Excluded(name string) bool {
	return c.ExcludeSubstring != "" && strings.Contains(name, c.ExcludeSubstring)
}

// Listed accepts every file that is not excluded.
func (c *Config) Listed(name string) bool {
	return !c.Excluded(name)
}

// IsImage accepts non-excluded files with the image extension.
func (c *Config) IsImage(name string) bool {
	return strings.HasSuffix(name, c.ImageExt) && !c.Excluded(name)
}

// IsSkipMarker reports whether name marks a material with no real images.
func (c *Config) IsSkipMarker(name string) bool {
	return strings.HasSuffix(name, c.SkipSuffix)
}
