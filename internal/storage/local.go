package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore abstracts where uploaded equipment images live so services and
// jobs do not touch the filesystem directly.
type FileStore interface {
	// SaveEquipmentImage streams the upload to disk and returns the
	// public path it will be served under (e.g. "/uploads/equipment/x.jpg").
	SaveEquipmentImage(originalFilename string, r io.Reader) (string, error)
	// Remove deletes the file behind a public path. Missing files are not
	// an error.
	Remove(publicPath string) error
}

const publicPrefix = "/uploads"

// LocalStorage keeps uploads on the local filesystem. Uploads are written
// synchronously as part of the request that carries them.
type LocalStorage struct {
	uploadsDir   string // e.g. "./uploads"
	equipmentDir string // subdirectory for equipment images
}

func NewLocalStorage(uploadsDir string) (*LocalStorage, error) {
	equipmentDir := filepath.Join(uploadsDir, "equipment")
	if err := os.MkdirAll(equipmentDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create equipment uploads directory: %w", err)
	}
	return &LocalStorage{
		uploadsDir:   uploadsDir,
		equipmentDir: equipmentDir,
	}, nil
}

func (s *LocalStorage) SaveEquipmentImage(originalFilename string, r io.Reader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalFilename))
	fullPath := filepath.Join(s.equipmentDir, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return publicPrefix + "/equipment/" + name, nil
}

func (s *LocalStorage) Remove(publicPath string) error {
	local, ok := s.localPath(publicPath)
	if !ok {
		return nil
	}
	if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// EquipmentDir returns the directory equipment images are stored in.
func (s *LocalStorage) EquipmentDir() string {
	return s.equipmentDir
}

// UploadsDir returns the root uploads directory served under /uploads.
func (s *LocalStorage) UploadsDir() string {
	return s.uploadsDir
}

// PublicPath converts a stored filename into its public URL path.
func PublicPath(filename string) string {
	return publicPrefix + "/equipment/" + filename
}

func (s *LocalStorage) localPath(publicPath string) (string, bool) {
	rel, ok := strings.CutPrefix(publicPath, publicPrefix+"/")
	if !ok {
		return "", false
	}
	// Reject traversal out of the uploads directory.
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.Join(s.uploadsDir, rel), true
}
