package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, organisation *Organisation) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Organisation, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Organisation, error)
	List(ctx context.Context, db *gorm.DB) ([]*Organisation, error)
	Update(ctx context.Context, db *gorm.DB, organisation *Organisation) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
