package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
	"github.com/amberdrive/backoffice/internal/repository"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

//go:generate mockgen -source=car_service.go -destination=car_service_mock.go -package=service
type CarStore interface {
	GetByID(ctx context.Context, id int64) (*model.Car, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.Car, error)
	List(ctx context.Context, filter repository.CarFilter) ([]model.Car, error)
	ListActive(ctx context.Context) ([]model.Car, error)
	ListBrands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, car model.Car) (*model.Car, error)
	Update(ctx context.Context, car model.Car) (*model.Car, error)
	Delete(ctx context.Context, id int64) error
	BulkUpdateStatus(ctx context.Context, ids []int64, status model.CarStatus) error
	BulkDelete(ctx context.Context, ids []int64) error
	ListImages(ctx context.Context, ids []int64) ([]string, error)
}

type ImageStore interface {
	Save(originalName string, data []byte) (string, error)
	Remove(name string)
}

type CarService struct {
	cars   CarStore
	images ImageStore
}

func NewCarService(cars CarStore, images ImageStore) *CarService {
	return &CarService{cars: cars, images: images}
}

type ImageUpload struct {
	FileName string
	Data     []byte
}

type CarInput struct {
	Name           string
	Brand          string
	Category       string
	DefaultPrice   float64
	DefaultKm      int
	DefaultExtraKm float64
	DefaultDeposit float64
	Description    *string
	Status         model.CarStatus
	Image          *ImageUpload
}

type BulkCarAction string

const (
	BulkCarArchive BulkCarAction = "archive"
	BulkCarRestore BulkCarAction = "restore"
	BulkCarDelete  BulkCarAction = "delete"
)

func (s *CarService) Get(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, id)
		}
		return nil, err
	}
	return car, nil
}

// List returns the filtered catalog plus the distinct brand list used by
// the catalog filter UI.
func (s *CarService) List(ctx context.Context, filter repository.CarFilter) ([]model.Car, []string, error) {
	cars, err := s.cars.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	brands, err := s.cars.ListBrands(ctx)
	if err != nil {
		return nil, nil, err
	}
	return cars, brands, nil
}

func (s *CarService) Create(ctx context.Context, input CarInput) (*model.Car, error) {
	if err := validateCarInput(&input); err != nil {
		return nil, err
	}

	imageName := ""
	if input.Image != nil {
		name, err := s.saveImage(input.Image)
		if err != nil {
			return nil, err
		}
		imageName = name
	}

	return s.cars.Create(ctx, model.Car{
		Name:           input.Name,
		Brand:          input.Brand,
		Category:       input.Category,
		Image:          imageName,
		DefaultPrice:   input.DefaultPrice,
		DefaultKm:      input.DefaultKm,
		DefaultExtraKm: input.DefaultExtraKm,
		DefaultDeposit: input.DefaultDeposit,
		Description:    input.Description,
		Status:         input.Status,
	})
}

func (s *CarService) Update(ctx context.Context, id int64, input CarInput) (*model.Car, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = existing.Status
	}
	if err := validateCarInput(&input); err != nil {
		return nil, err
	}

	imageName := existing.Image
	if input.Image != nil {
		name, err := s.saveImage(input.Image)
		if err != nil {
			return nil, err
		}
		if existing.Image != "" {
			s.images.Remove(existing.Image)
		}
		imageName = name
	}

	return s.cars.Update(ctx, model.Car{
		ID:             id,
		Name:           input.Name,
		Brand:          input.Brand,
		Category:       input.Category,
		Image:          imageName,
		DefaultPrice:   input.DefaultPrice,
		DefaultKm:      input.DefaultKm,
		DefaultExtraKm: input.DefaultExtraKm,
		DefaultDeposit: input.DefaultDeposit,
		Description:    input.Description,
		Status:         input.Status,
	})
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	car, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if car.Image != "" {
		s.images.Remove(car.Image)
	}
	if err := s.cars.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: car %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *CarService) Bulk(ctx context.Context, ids []int64, action BulkCarAction) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no ids provided", ErrInvalidInput)
	}
	switch action {
	case BulkCarArchive:
		return s.cars.BulkUpdateStatus(ctx, ids, model.CarStatusArchived)
	case BulkCarRestore:
		return s.cars.BulkUpdateStatus(ctx, ids, model.CarStatusActive)
	case BulkCarDelete:
		images, err := s.cars.ListImages(ctx, ids)
		if err != nil {
			return err
		}
		for _, image := range images {
			s.images.Remove(image)
		}
		return s.cars.BulkDelete(ctx, ids)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
}

func (s *CarService) saveImage(upload *ImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: unsupported image format %q", ErrInvalidInput, ext)
	}
	name, err := s.images.Save(upload.FileName, upload.Data)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return name, nil
}

func validateCarInput(input *CarInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if !model.ValidCarCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}
	if input.Status == "" {
		input.Status = model.CarStatusActive
	}
	if !model.ValidCarStatus(input.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, input.Status)
	}
	if input.DefaultPrice < 0 || input.DefaultKm < 0 || input.DefaultExtraKm < 0 || input.DefaultDeposit < 0 {
		return fmt.Errorf("%w: pricing fields must be non-negative", ErrInvalidInput)
	}
	return nil
}
