package migration

import (
	"soapbox/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BoardModel{},
		&models.StatusSetModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.UpvoteModel{},
		&models.SubscriptionModel{},
		&models.SettingModel{},
	}
}
