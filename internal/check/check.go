// Package check provides the read-only preflight behind "pbrdump check".
// It reports, per material folder, what a conversion run would do and
// flags problems before anything is written.
package check

import (
	"errors"
	"fmt"

	billy "github.com/go-git/go-billy/v5"

	"github.com/backmassage/pbrdump/internal/config"
	"github.com/backmassage/pbrdump/internal/fileops"
	"github.com/backmassage/pbrdump/internal/imaging"
	"github.com/backmassage/pbrdump/internal/naming"
)

// ErrProblems is returned by RunCheck when at least one material would fail
// or lose data during conversion.
var ErrProblems = errors.New("preflight found problems")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Status is the predicted outcome for one material.
type Status string

const (
	StatusReady      Status = "ready"      // Flat images present.
	StatusBackfill   Status = "backfill"   // Flat folder will be filled from its master bucket.
	StatusSkipped    Status = "skipped"    // Carries the skip marker.
	StatusNoMaster   Status = "no-master"  // No flat images and no readable master bucket.
	StatusUnreadable Status = "unreadable" // Folder could not be listed.
)

// Report describes one material folder.
type Report struct {
	Name       string
	Status     Status
	Images     []string
	Renames    []naming.Rename
	Collisions []naming.Collision
	OffSize    []string // Images that are not master-sized squares, with their size.
	Broken     []string // Images whose header cannot be read.
	Err        error
}

// OK reports whether converting the material would succeed cleanly.
func (r Report) OK() bool {
	switch r.Status {
	case StatusNoMaster, StatusUnreadable:
		return false
	}
	return len(r.Collisions) == 0 && len(r.Broken) == 0
}

// Inspect predicts the conversion of material name without writing.
func Inspect(cfg *config.Config, fs billy.Filesystem, ops *fileops.Ops, name string) Report {
	rep := Report{Name: name}

	files, err := ops.ListFiles(name, cfg.Listed)
	if err != nil {
		rep.Status, rep.Err = StatusUnreadable, err
		return rep
	}

	dir := name
	for _, f := range files {
		if cfg.IsSkipMarker(f) {
			rep.Status = StatusSkipped
			return rep
		}
		if cfg.IsImage(f) {
			rep.Images = append(rep.Images, f)
		}
	}

	rep.Status = StatusReady
	if len(rep.Images) == 0 {
		dir = fs.Join(name, cfg.MasterBucket())
		rep.Images, err = ops.ListFiles(dir, cfg.IsImage)
		if err != nil {
			rep.Status, rep.Err = StatusNoMaster, err
			return rep
		}
		rep.Status = StatusBackfill
	}

	rep.Renames = naming.PlanRenames(rep.Images, cfg.ImageExt)
	rep.Collisions = naming.FindCollisions(rep.Renames, rep.Images)

	for _, img := range rep.Images {
		info, err := imaging.Probe(fs, fs.Join(dir, img))
		if err != nil {
			rep.Broken = append(rep.Broken, img)
			continue
		}
		if !info.Square(cfg.MasterSize) {
			rep.OffSize = append(rep.OffSize, fmt.Sprintf("%s (%s)", img, info))
		}
	}
	return rep
}

// RunCheck inspects every material under the root of fs and logs the
// findings. It returns the reports and ErrProblems if any material is not OK.
func RunCheck(cfg *config.Config, fs billy.Filesystem, log Logger) ([]Report, error) {
	log.Info("=== Preflight Check ===")

	ops := fileops.New(fs, false, log)
	materials, err := ops.ListDirs(".", func(n string) bool { return n != cfg.DumpDirName })
	if err != nil {
		log.Error("Cannot list root: %v", err)
		return nil, err
	}

	var reports []Report
	problems := 0
	for _, name := range materials {
		rep := Inspect(cfg, fs, ops, name)
		reports = append(reports, rep)
		logReport(log, rep)
		if !rep.OK() {
			problems++
		}
	}

	if problems > 0 {
		log.Error("%d of %d materials have problems", problems, len(materials))
		return reports, ErrProblems
	}
	log.Success("%d materials ready", len(materials))
	return reports, nil
}

func logReport(log Logger, rep Report) {
	switch rep.Status {
	case StatusSkipped:
		log.Warn("%s: skipped (no images)", rep.Name)
		return
	case StatusUnreadable, StatusNoMaster:
		log.Error("%s: %s: %v", rep.Name, rep.Status, rep.Err)
		return
	}

	log.Info("%s: %s, %d images", rep.Name, rep.Status, len(rep.Images))
	for _, r := range rep.Renames {
		log.Debug("  rename %s -> %s", r.From, r.To)
	}
	for _, c := range rep.Collisions {
		log.Error("  collision: %v -> %s", c.Sources, c.Target)
	}
	for _, s := range rep.OffSize {
		log.Warn("  not master-sized: %s", s)
	}
	for _, b := range rep.Broken {
		log.Error("  unreadable image: %s", b)
	}
}
