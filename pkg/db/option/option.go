// Package option applies query options such as cursor pagination to a gorm
// statement.
package option

import (
	"github.com/fessit/financesuite/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination decodes the cursor token and limits the statement to one
// row past the page size so callers can detect whether more rows exist.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	size := o.page.PageSize
	if size <= 0 {
		size = 10
	}

	if o.page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(o.page.PageToken)
		if err == nil && cursor != nil {
			if cursor.CreatedAt != "" && cursor.ID != "" {
				stmt = stmt.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
			} else if cursor.ID != "" {
				stmt = stmt.Where("id < ?", cursor.ID)
			}
		}
	}

	return stmt.Limit(size + 1)
}
