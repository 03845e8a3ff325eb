package jobs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agroverse-backend/internal/logger"
	"agroverse-backend/internal/storage"
)

// orphanGracePeriod keeps freshly written uploads safe from the cleaner
// while the request that created them is still in flight.
const orphanGracePeriod = 24 * time.Hour

// CleanOrphanedUploads removes equipment images on disk that no equipment
// row references anymore. Listings deleted or re-imaged leave their old
// files behind; this job reclaims them.
func (jr *JobRunner) CleanOrphanedUploads() {
	jr.runWithRecovery("CleanOrphanedUploads", func() {
		ctx := context.Background()

		paths, err := jr.store.EquipmentRepository.ListImagePaths(ctx)
		if err != nil {
			logger.Error("Failed to list referenced images", "error", err)
			return
		}

		referenced := make(map[string]struct{}, len(paths))
		for _, p := range paths {
			referenced[filepath.Base(p)] = struct{}{}
		}

		entries, err := os.ReadDir(jr.storage.EquipmentDir())
		if err != nil {
			logger.Error("Failed to read uploads directory", "error", err)
			return
		}

		cutoff := time.Now().Add(-orphanGracePeriod)
		removed := 0
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if _, ok := referenced[entry.Name()]; ok {
				continue
			}

			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}

			if err := jr.storage.Remove(storage.PublicPath(entry.Name())); err != nil {
				logger.Warn("Failed to remove orphaned upload", "file", entry.Name(), "error", err)
				continue
			}
			removed++
		}

		logger.Info("Orphaned upload cleanup finished",
			"referenced", len(referenced),
			"removed", removed,
		)
	})
}
