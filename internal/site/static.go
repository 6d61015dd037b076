package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// copyTree copies every file and directory under src into dst.
func copyTree(log logrus.FieldLogger, src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			// new directories get ModePerm (umask applies), not the source mode
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}
		if err := copyFile(log, path, target); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, target, err)
		}
		return nil
	})
}

// copyFile copies src to dst, creating dst's directory and keeping the
// source file mode when possible.
func copyFile(log logrus.FieldLogger, src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", filepath.Dir(dst), err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	info, err := in.Stat()
	if err != nil {
		log.WithError(err).WithField("file", src).Warn("could not stat source file to preserve permissions")
		return nil
	}
	if err := os.Chmod(dst, info.Mode()); err != nil {
		log.WithError(err).WithField("file", dst).Warn("could not set permissions")
	}
	return nil
}
