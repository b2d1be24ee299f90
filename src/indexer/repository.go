package indexer

import (
	"identity-market/src/database"
	"identity-market/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ViewRepository interface {
	UpsertIdentity(view model.IdentityView) error
	GetIdentity(identityId uint64) (model.IdentityView, error)
	UpsertListing(view model.ListingView) error
	GetListing(identityId uint64) (model.ListingView, error)
}

type gormViewRepository struct {
	db *gorm.DB
}

func NewViewRepository() ViewRepository {
	return &gormViewRepository{db: database.GetDatabaseConnection()}
}

func NewViewRepositoryWithDb(db *gorm.DB) ViewRepository {
	return &gormViewRepository{db: db}
}

func (r *gormViewRepository) UpsertIdentity(view model.IdentityView) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&view).Error
}

func (r *gormViewRepository) GetIdentity(identityId uint64) (model.IdentityView, error) {
	var view model.IdentityView
	err := r.db.First(&view, "identity_id = ?", identityId).Error
	return view, err
}

func (r *gormViewRepository) UpsertListing(view model.ListingView) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&view).Error
}

func (r *gormViewRepository) GetListing(identityId uint64) (model.ListingView, error) {
	var view model.ListingView
	err := r.db.First(&view, "identity_id = ?", identityId).Error
	return view, err
}
