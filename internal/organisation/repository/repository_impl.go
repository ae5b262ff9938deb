package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fessit/financesuite/internal/organisation/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, organisation *domain.Organisation) error {
	return db.WithContext(ctx).Create(organisation).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Organisation, error) {
	var organisation domain.Organisation
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&organisation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &organisation, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Organisation, error) {
	var organisation domain.Organisation
	err := db.WithContext(ctx).
		Where("email = ?", email).
		First(&organisation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &organisation, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Organisation, error) {
	var organisations []*domain.Organisation
	err := db.WithContext(ctx).
		Model(&domain.Organisation{}).
		Order("created_at desc, id desc").
		Find(&organisations).Error
	if err != nil {
		return nil, err
	}
	return organisations, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, organisation *domain.Organisation) error {
	return db.WithContext(ctx).Save(organisation).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Organisation{}).Error
}
