package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "guidanceku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler sweeps expired blacklist and refresh token
// rows once an hour so the tables never grow without bound.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] blacklist cleanup:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d tokens\n", res.RowsAffected)
			}

			res = db.Where("expires_at < ? OR revoked = true", now).
				Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Println("[ERROR] refresh token cleanup:", res.Error)
			}
		}
	}()
}
