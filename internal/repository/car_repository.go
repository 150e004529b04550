package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
)

const carColumns = `
	id,
	name,
	brand,
	category,
	image,
	default_price,
	default_km,
	default_extra_km,
	default_deposit,
	description,
	status,
	created_at,
	updated_at
`

type CarFilter struct {
	Status   string
	Search   string
	Brand    string
	Category string
}

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	var car model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+carColumns+`
		FROM cars
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&car).Error
	if err != nil {
		return nil, err
	}
	if car.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &car, nil
}

func (r *CarRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Car, error) {
	if len(ids) == 0 {
		return []model.Car{}, nil
	}
	var cars []model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+carColumns+`
		FROM cars
		WHERE id IN ?
		ORDER BY id ASC
	`, ids).Scan(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// List applies the catalog filter. An "archived" status selects only
// archived cars, anything else selects active and inactive ones.
func (r *CarRepository) List(ctx context.Context, filter CarFilter) ([]model.Car, error) {
	baseQuery := `
		SELECT ` + carColumns + `
		FROM cars
	`
	var (
		filters []string
		args    []interface{}
	)

	if filter.Status == string(model.CarStatusArchived) {
		filters = append(filters, "status = 'archived'")
	} else {
		filters = append(filters, "status IN ('active', 'inactive')")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		filters = append(filters, "(name ILIKE ? OR brand ILIKE ? OR description ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Brand != "" {
		filters = append(filters, "brand = ?")
		args = append(args, filter.Brand)
	}
	if filter.Category != "" {
		filters = append(filters, "category = ?")
		args = append(args, filter.Category)
	}

	baseQuery += " WHERE " + strings.Join(filters, " AND ")
	baseQuery += " ORDER BY created_at DESC"

	var cars []model.Car
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) ListActive(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+carColumns+`
		FROM cars
		WHERE status = 'active'
		ORDER BY id ASC
	`).Scan(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) ListBrands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT brand
		FROM cars
		WHERE status <> 'archived'
		ORDER BY brand ASC
	`).Scan(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *CarRepository) Create(ctx context.Context, car model.Car) (*model.Car, error) {
	var saved model.Car
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO cars (
			name,
			brand,
			category,
			image,
			default_price,
			default_km,
			default_extra_km,
			default_deposit,
			description,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+carColumns,
		car.Name,
		car.Brand,
		car.Category,
		car.Image,
		car.DefaultPrice,
		car.DefaultKm,
		car.DefaultExtraKm,
		car.DefaultDeposit,
		car.Description,
		car.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CarRepository) Update(ctx context.Context, car model.Car) (*model.Car, error) {
	var saved model.Car
	err := r.db.WithContext(ctx).Raw(`
		UPDATE cars
		SET
			name = ?,
			brand = ?,
			category = ?,
			image = ?,
			default_price = ?,
			default_km = ?,
			default_extra_km = ?,
			default_deposit = ?,
			description = ?,
			status = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+carColumns,
		car.Name,
		car.Brand,
		car.Category,
		car.Image,
		car.DefaultPrice,
		car.DefaultKm,
		car.DefaultExtraKm,
		car.DefaultDeposit,
		car.Description,
		car.Status,
		car.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM cars WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CarRepository) BulkUpdateStatus(ctx context.Context, ids []int64, status model.CarStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Exec(`
		UPDATE cars
		SET status = ?, updated_at = NOW()
		WHERE id IN ?
	`, status, ids).Error
}

func (r *CarRepository) BulkDelete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Exec(`DELETE FROM cars WHERE id IN ?`, ids).Error
}

func (r *CarRepository) ListImages(ctx context.Context, ids []int64) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT image
		FROM cars
		WHERE id IN ? AND image <> ''
	`, ids).Scan(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
