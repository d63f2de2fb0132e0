package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	userModel "guidanceku_backend/internals/features/users/user/model"
)

// RunAllSeeds makes sure the instance always has a usable superuser. The
// credentials come from the environment; without them nothing is seeded.
func RunAllSeeds(db *gorm.DB) {
	seedSuperuser(db)
}

func seedSuperuser(db *gorm.DB) {
	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] SUPERUSER_EMAIL/SUPERUSER_PASSWORD not set, skipping superuser seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("is_superuser = true").Count(&count).Error; err != nil {
		log.Println("[ERROR] superuser seed check failed:", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] superuser password hash failed:", err)
		return
	}

	admin := userModel.UserModel{
		UserName:    "superadmin",
		Email:       email,
		Password:    string(hashed),
		FirstName:   "Super",
		LastName:    "Admin",
		Role:        constants.RoleAdmin,
		IsSuperuser: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("[ERROR] superuser seed failed:", err)
		return
	}
	log.Println("[SUCCESS] Superuser seeded:", email)
}
