package tree

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	indentToken   = "│   "
	connector     = "├── "
	lastConnector = "└── "
)

// Render writes an indented listing of the directory tree rooted at rootDir
// to outputPath. The root must be an existing directory; nothing is written
// otherwise.
func (r *implRenderer) Render(ctx context.Context, rootDir, outputPath string) error {
	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q not found", rootDir)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Directory tree for: %s\n\n", rootDir)

	if err := r.walk(w, rootDir, rootDir); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}

	r.logger.Info(ctx, "Directory tree for %s written to %s", rootDir, outputPath)
	return nil
}

// walk emits one directory: its own line, then its files, then each
// subdirectory in name order. Depth is the separator count left in the path
// after stripping the root prefix; child paths are joined with a bare
// separator so a relative root keeps its prefix.
func (r *implRenderer) walk(w io.Writer, root, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files, subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	level := strings.Count(strings.TrimPrefix(dir, root), string(os.PathSeparator))

	indent := ""
	if level > 0 {
		indent = strings.Repeat(indentToken, level-1) + connector
	}
	fmt.Fprintf(w, "%s%s/\n", indent, filepath.Base(dir))

	for i, name := range files {
		conn := connector
		if i == len(files)-1 {
			conn = lastConnector
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(indentToken, level), conn, name)
	}

	for _, name := range subdirs {
		if err := r.walk(w, root, dir+string(os.PathSeparator)+name); err != nil {
			return err
		}
	}

	return nil
}
