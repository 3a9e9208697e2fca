package pipeline

// rootDir is the file-system-relative path of the working root.
const rootDir = "."

// Discover returns the material folder names directly under the root,
// sorted, excluding the dump tree itself.
func (c *Converter) Discover() ([]string, error) {
	return c.ops.ListDirs(rootDir, func(name string) bool {
		return name != c.cfg.DumpDirName
	})
}
