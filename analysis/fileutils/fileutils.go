package fileutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrExists is returned by WriteJSONFileAtomic when the target exists and overwrite is off.
var ErrExists = errors.New("output already exists")

const AnalysisSuffix = ".analysis.json"

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CollectReviewFiles returns the .json files under inPath (or inPath itself), sorted.
// Previously written *.analysis.json outputs are skipped.
func CollectReviewFiles(inPath string) ([]string, error) {
	fi, err := os.Stat(inPath)
	if err != nil {
		return nil, fmt.Errorf("stat -in: %w", err)
	}
	if !fi.IsDir() {
		if !strings.EqualFold(filepath.Ext(inPath), ".json") {
			return nil, fmt.Errorf("input file must be .json: %s", inPath)
		}
		return []string{inPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(path)
		if filepath.Ext(lower) != ".json" || strings.HasSuffix(lower, AnalysisSuffix) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input dir: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// AnalysisOutPath mirrors reviewPath's position under inRoot into outRoot with the analysis suffix.
func AnalysisOutPath(inRoot, outRoot, reviewPath string) string {
	rel := filepath.Base(reviewPath)
	if fi, err := os.Stat(inRoot); err == nil && fi.IsDir() {
		if r, err := filepath.Rel(inRoot, reviewPath); err == nil {
			rel = r
		}
	}
	return filepath.Join(outRoot, strings.TrimSuffix(rel, filepath.Ext(rel))+AnalysisSuffix)
}

func WriteJSONFileAtomic(path string, v any, pretty, overwrite bool) error {
	if !overwrite && FileExists(path) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	b, err := MarshalJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := WriteFileAtomicSameDir(path, b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteFileAtomicSameDir writes data plus a trailing newline through a temp file in
// the target directory, then renames it into place.
func WriteFileAtomicSameDir(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_analysis_*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
