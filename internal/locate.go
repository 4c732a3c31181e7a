package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const dataFileExt = ".db3"

// BagLocation holds the resolved paths of a ROS2 bag.
type BagLocation struct {
	Dir      string // bag directory
	DataFile string // path to the .db3 data file inside Dir
}

// LocateBag resolves a user-supplied path to the canonical bag directory.
// The path may be the bag directory itself or a .db3 file inside it; in the
// latter case the parent directory is used and a warning is logged.
func LocateBag(path string) (BagLocation, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return BagLocation{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return BagLocation{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(path, dataFileExt) {
			return BagLocation{}, fmt.Errorf("%w: %s", ErrInvalidBagPath, path)
		}
		dir := filepath.Dir(path)
		LogWarn("'.db3' file provided, using parent directory as bag path: %s", dir)
		return BagLocation{Dir: dir, DataFile: path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return BagLocation{}, fmt.Errorf("failed to list %s: %w", path, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), dataFileExt) {
			return BagLocation{Dir: path, DataFile: filepath.Join(path, entry.Name())}, nil
		}
	}
	return BagLocation{}, fmt.Errorf("%w in %s", ErrNoDataFile, path)
}

// Size returns the total size in bytes of every file under the bag
// directory, walking recursively.
func (l BagLocation) Size() (int64, error) {
	var total int64
	err := filepath.Walk(l.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk %s: %w", l.Dir, err)
	}
	return total, nil
}
