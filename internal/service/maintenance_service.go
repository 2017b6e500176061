package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"tradejournal/internal/domain"
)

// MaintenanceService removes uploaded chart images that no trade
// references anymore. Files younger than the grace period are kept so
// an upload is not swept between the upload call and the trade save.
type MaintenanceService struct {
	trades   domain.TradeRepository
	dir      string
	gracePer time.Duration
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(trades domain.TradeRepository, uploadDir string, gracePeriod time.Duration) *MaintenanceService {
	return &MaintenanceService{trades: trades, dir: uploadDir, gracePer: gracePeriod}
}

// SweepOrphanUploads deletes unreferenced upload files past the grace period
func (s *MaintenanceService) SweepOrphanUploads(ctx context.Context) error {
	refs, err := s.trades.ListChartImageRefs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list chart image refs: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read upload directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < s.gracePer {
			continue
		}

		if _, ok := refs[URLPrefix+"/"+entry.Name()]; ok {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			log.Printf("[ERROR] Failed to remove orphan upload %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("[OK] Removed %d orphan upload(s)", removed)
	}

	return nil
}
