package repository

import (
	"context"
	"errors"

	"mortgage-engine/domain"
)

var ErrRecordNotFound = errors.New("calculation record not found")

type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	FindByID(ctx context.Context, id string) (domain.CalculationRecord, error)
}
