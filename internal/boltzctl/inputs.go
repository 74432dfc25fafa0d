package boltzctl

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/foldlab/boltzctl/internal/common/boltzerrors"
)

// WorkItem is one input file due to be wrapped in a job script.
type WorkItem struct {
	// Name is the input filename with the suffix stripped.
	// It seeds the job name and the per-job log filenames.
	Name string
	// Path to the input file as passed to boltz.
	Path string
}

// DiscoverInputs lists the regular files in dir carrying the given suffix.
// It returns boltzerrors.ErrNotFound if dir does not exist and
// boltzerrors.ErrNoInput if dir exists but holds no matching files.
// Entries are returned in lexical filename order.
func DiscoverInputs(dir string, suffix string) ([]*WorkItem, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, errors.WithStack(&boltzerrors.ErrNotFound{
			Type:  "directory",
			Value: dir,
		})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error reading input directory %s", dir)
	}

	items := []*WorkItem{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		items = append(items, &WorkItem{
			Name: strings.TrimSuffix(name, suffix),
			Path: filepath.Join(dir, name),
		})
	}
	if len(items) == 0 {
		return nil, errors.WithStack(&boltzerrors.ErrNoInput{
			Dir:    dir,
			Suffix: suffix,
		})
	}
	return items, nil
}
