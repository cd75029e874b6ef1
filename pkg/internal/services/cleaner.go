package services

import (
	"time"

	"github.com/driftline-social/driftline/pkg/internal/database"
	"github.com/rs/zerolog/log"
)

const cleanupRetention = 30 * 24 * time.Hour

// DoAutoDatabaseCleanup hard-deletes rows that were soft-deleted long ago.
// Scheduled from main via cron.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-cleanupRetention)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at <= ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
