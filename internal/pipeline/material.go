package pipeline

import (
	"errors"
	"fmt"

	"github.com/backmassage/pbrdump/internal/config"
	"github.com/backmassage/pbrdump/internal/naming"
)

// Sentinel errors returned by ConvertMaterial. Neither aborts the run.
var (
	ErrNoImages = errors.New("material has no images")
	ErrNoMaster = errors.New("material has no flat images and no readable master bucket")
)

// MaterialResult counts what one conversion produced.
type MaterialResult struct {
	MasterImages  int
	DerivedImages int
	BytesWritten  int64
}

// ConvertMaterial mirrors srcDir into dumpDir:
//
//  1. skip the material if it carries the skip marker
//  2. ensure the master bucket in dumpDir
//  3. back-fill srcDir from srcDir's own master bucket when it has no images
//  4. copy srcDir's images into the dump master bucket
//  5. normalize the names in the dump master bucket
//  6. rebuild every derived bucket from the dump master bucket
func (c *Converter) ConvertMaterial(srcDir, dumpDir string) (MaterialResult, error) {
	var res MaterialResult

	files, err := c.ops.ListFiles(srcDir, c.cfg.Listed)
	if err != nil {
		return res, err
	}
	c.log.Debug("List of all files in %s:", srcDir)
	hasImages := false
	for _, name := range files {
		c.log.Debug("  %s", name)
		if c.cfg.IsSkipMarker(name) {
			c.log.Warn("%s has no images", srcDir)
			return res, ErrNoImages
		}
		if c.cfg.IsImage(name) {
			hasImages = true
		}
	}

	masterBucket := c.cfg.MasterBucket()
	dumpMaster := c.fs.Join(dumpDir, masterBucket)
	if err := c.ops.EnsureDir(dumpMaster, false); err != nil {
		return res, err
	}

	if !hasImages {
		if err := c.backfill(srcDir, masterBucket); err != nil {
			return res, err
		}
	}

	n, err := c.ops.CopyAll(srcDir, dumpMaster, c.cfg.IsImage)
	if err != nil {
		return res, err
	}
	res.MasterImages = n
	c.log.Info("Copied %d images to %s", n, dumpMaster)

	if err := c.normalizeBucket(dumpMaster); err != nil {
		return res, err
	}

	for _, size := range c.cfg.Resolutions {
		written, bytes, err := c.buildBucket(dumpDir, dumpMaster, size)
		res.DerivedImages += written
		res.BytesWritten += bytes
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// backfill copies the images of srcDir/<master> into srcDir itself.
func (c *Converter) backfill(srcDir, masterBucket string) error {
	embedded := c.fs.Join(srcDir, masterBucket)
	n, err := c.ops.CopyAll(embedded, srcDir, c.cfg.IsImage)
	if err != nil {
		if isFatal(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrNoMaster, err)
	}
	c.log.Info("Back-filled %d images from %s", n, embedded)
	return nil
}

// normalizeBucket renames every image in dir to its normalized name.
func (c *Converter) normalizeBucket(dir string) error {
	names, err := c.ops.ListFiles(dir, c.cfg.Listed)
	if err != nil {
		return err
	}
	plan := naming.PlanRenames(names, c.cfg.ImageExt)
	for _, col := range naming.FindCollisions(plan, names) {
		c.log.Warn("Name collision in %s: %v all normalize to %s", dir, col.Sources, col.Target)
	}
	for _, r := range plan {
		c.log.Info("Filename changed old: %s new: %s", r.From, r.To)
		if err := c.ops.Move(c.fs.Join(dir, r.From), c.fs.Join(dir, r.To)); err != nil {
			return err
		}
	}
	return nil
}

// buildBucket recreates dumpDir/<size>x<size> and fills it with a resized
// copy of every image in master.
func (c *Converter) buildBucket(dumpDir, master string, size int) (int, int64, error) {
	bucket := c.fs.Join(dumpDir, config.BucketName(size))
	if err := c.ops.EnsureDir(bucket, true); err != nil {
		return 0, 0, err
	}

	names, err := c.ops.ListFiles(master, c.cfg.IsImage)
	if err != nil {
		return 0, 0, err
	}

	var written int
	var total int64
	for _, name := range names {
		n, err := c.resizer.ResizeFile(c.fs, c.fs.Join(master, name), c.fs.Join(bucket, name), size)
		total += n
		if err != nil {
			return written, total, fmt.Errorf("resize to %s: %w", config.BucketName(size), err)
		}
		written++
	}
	c.log.Debug("Wrote %d images to %s", written, bucket)
	return written, total, nil
}
