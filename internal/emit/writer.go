package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every file into its directory, creating directories as
// needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		dir := file.Dir
		if dir == "" {
			dir = "."
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(filepath.Join(dir, file.Filename), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Orphans returns the files in dirs that end in suffix and start with header
// but are not among files. They are output of earlier runs, e.g. a nested
// file named after a member count that has since changed. Files without the
// header are never reported. Missing directories are skipped.
func Orphans(dirs []string, files []GeneratedFile, header, suffix string) ([]string, error) {
	current := make(map[string]bool, len(files))
	for _, file := range files {
		current[filepath.Clean(file.Path())] = true
	}

	var res []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading output directory: %w", err)
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), suffix) {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			if current[filepath.Clean(path)] {
				continue
			}

			generated, err := hasHeader(path, header)
			if err != nil {
				return nil, err
			}

			if generated {
				res = append(res, path)
			}
		}
	}

	slices.Sort(res)

	return slices.Compact(res), nil
}

// RemoveFiles deletes the given files. Files already gone are ignored.
func RemoveFiles(paths []string) error {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing file %s: %w", path, err)
		}
	}

	return nil
}

func hasHeader(path, header string) (bool, error) {
	if header == "" {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, len(header))
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}

		return false, fmt.Errorf("reading file %s: %w", path, err)
	}

	return bytes.Equal(buf, []byte(header)), nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. It is best-effort.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
