package adapters

import (
	"os"

	"wifictl/internal/domain/interfaces"
)

// RealFileSystem is a FileSystem implementation backed by the real file system
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem
func NewRealFileSystem() interfaces.FileSystem {
	return &RealFileSystem{}
}

// ReadFile reads a file
func (fs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists reports whether a file or directory exists
func (fs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
