package pipeline

import (
	"context"
	"errors"
	"time"

	billy "github.com/go-git/go-billy/v5"

	"github.com/backmassage/pbrdump/internal/config"
	"github.com/backmassage/pbrdump/internal/display"
	"github.com/backmassage/pbrdump/internal/fileops"
	"github.com/backmassage/pbrdump/internal/imaging"
	"github.com/backmassage/pbrdump/internal/logging"
)

// Converter holds what a run needs. fs is rooted at the working root, so
// every path it sees is root-relative.
type Converter struct {
	cfg     *config.Config
	fs      billy.Filesystem
	ops     *fileops.Ops
	resizer *imaging.Resizer
	log     *logging.Logger
}

// NewConverter wires a Converter over fs.
func NewConverter(cfg *config.Config, fs billy.Filesystem, log *logging.Logger) *Converter {
	return &Converter{
		cfg:     cfg,
		fs:      fs,
		ops:     fileops.New(fs, cfg.MaterializeMissing, log),
		resizer: imaging.NewResizer(cfg.Filter),
		log:     log,
	}
}

// Run is the top-level batch entry point. It converts every material
// folder under the root in name order and returns aggregate stats.
//
// The returned error is non-nil only when the run was aborted: a fatal
// primitive failure, a root that cannot be listed, or a cancelled ctx.
// Per-material failures are counted in RunStats.Failed and logged.
func Run(ctx context.Context, cfg *config.Config, fs billy.Filesystem, log *logging.Logger) (RunStats, error) {
	return NewConverter(cfg, fs, log).Run(ctx)
}

// Run converts every material; see the package-level [Run].
func (c *Converter) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	if err := c.ops.EnsureDir(c.cfg.DumpDirName, false); err != nil {
		c.log.Error("The process failed: %v", err)
		return stats, err
	}

	materials, err := c.Discover()
	if err != nil {
		c.log.Error("Material discovery failed: %v", err)
		return stats, err
	}
	stats.Total = len(materials)
	c.log.Info("Found %d material folders", stats.Total)

	for i, name := range materials {
		if ctx.Err() != nil {
			c.log.Warn("Interrupted")
			c.logSummary(&stats, start)
			return stats, ctx.Err()
		}
		stats.Current = i + 1
		c.log.Info("[%d/%d] dir=%s", stats.Current, stats.Total, name)

		res, err := c.convertOne(name)
		stats.add(res)
		switch {
		case err == nil:
			stats.Converted++
			c.log.Success("%s: %d images, %d derived", name, res.MasterImages, res.DerivedImages)
		case errors.Is(err, ErrNoImages):
			stats.Skipped++
		case isFatal(err):
			stats.Failed++
			c.log.Error("The process failed: %v", err)
			c.log.Error("Aborting run; %d materials not processed", stats.Total-stats.Current)
			c.logSummary(&stats, start)
			return stats, err
		default:
			stats.Failed++
			c.log.Error("%s: %v", name, err)
		}
	}

	c.log.Success("Finished!")
	c.logSummary(&stats, start)
	return stats, nil
}

// convertOne ensures the material's dump folder and converts it.
func (c *Converter) convertOne(name string) (MaterialResult, error) {
	dumpDir := c.fs.Join(c.cfg.DumpDirName, name)
	if err := c.ops.EnsureDir(dumpDir, false); err != nil {
		return MaterialResult{}, err
	}
	return c.ConvertMaterial(name, dumpDir)
}

// isFatal reports whether err came from a file-system primitive.
func isFatal(err error) bool {
	var opErr *fileops.Error
	return errors.As(err, &opErr)
}

func (c *Converter) logSummary(stats *RunStats, start time.Time) {
	c.log.Info("==============================")
	c.log.Info("Done: %d converted, %d skipped, %d failed", stats.Converted, stats.Skipped, stats.Failed)
	c.log.Info("Summary report:")
	c.log.Info("  Materials processed: %d of %d", stats.Current, stats.Total)
	c.log.Info("  Master images:       %s", display.FormatCount(stats.MasterImages))
	c.log.Info("  Derived images:      %s (%s)",
		display.FormatCount(stats.DerivedImages), display.FormatBytes(stats.BytesWritten))
	c.log.Info("  Elapsed:             %s", display.FormatElapsed(time.Since(start)))
	if stats.Failed > 0 {
		c.log.Warn("  %d materials failed; partial output may remain under %s",
			stats.Failed, c.cfg.DumpDirName)
	}
}
