package utils

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// EnsureDir ensure target dir exists
func EnsureDir(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}

	err = EnsureDir(filepath.Dir(dir))
	if err != nil {
		return err
	}

	return os.Mkdir(dir, 0755)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenOutput open output file, empty path or "-" writes to stdout
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	err := EnsureDir(filepath.Dir(path))
	if err != nil {
		zap.L().Error("ensure output dir failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		zap.L().Error("create output file failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	return file, nil
}
