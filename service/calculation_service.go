package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mortgage-engine/domain"
	"mortgage-engine/money"
	"mortgage-engine/repository"
)

// CalculationService runs engine calculations by kind, caches their reports
// and records every run. Cache and repository failures are logged and never
// fail the calculation.
type CalculationService struct {
	amortization  *AmortizationService
	extraPayments *ExtraPaymentService
	refinance     *RefinanceService
	rentVsBuy     *RentVsBuyService
	scenarios     *ScenarioService

	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCalculationService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger zerolog.Logger,
	scenarioWorkers int,
) *CalculationService {
	amortization := NewAmortizationService()
	extraPayments := NewExtraPaymentService(amortization)
	return &CalculationService{
		amortization:  amortization,
		extraPayments: extraPayments,
		refinance:     NewRefinanceService(amortization),
		rentVsBuy:     NewRentVsBuyService(amortization),
		scenarios:     NewScenarioService(amortization, extraPayments, scenarioWorkers),
		repo:          repo,
		cache:         cache,
		logger:        logger.With().Str("component", "calculation").Logger(),
		now:           time.Now,
	}
}

// calculation is a decoded request ready to run.
type calculation struct {
	input any
	run   func() (any, error)
}

// Run decodes the request parameters for its kind and executes it.
func (s *CalculationService) Run(
	ctx context.Context,
	req domain.CalculationRequest,
) (domain.CalculationRecord, error) {
	calc, err := s.prepare(req)
	if err != nil {
		s.logger.Debug().Err(err).Str("kind", string(req.Kind)).Msg("rejected calculation request")
		return domain.CalculationRecord{}, err
	}
	return s.execute(ctx, req.Kind, calc)
}

func (s *CalculationService) Amortize(ctx context.Context, terms domain.LoanTerms) (domain.CalculationRecord, error) {
	return s.execute(ctx, domain.KindAmortization, s.amortizeCalculation(terms))
}

func (s *CalculationService) SimulateExtraPayments(ctx context.Context, input domain.ExtraPaymentInput) (domain.CalculationRecord, error) {
	return s.execute(ctx, domain.KindExtraPayment, s.extraPaymentCalculation(input))
}

func (s *CalculationService) AnalyzeRefinance(ctx context.Context, input domain.RefinanceInput) (domain.CalculationRecord, error) {
	return s.execute(ctx, domain.KindRefinance, s.refinanceCalculation(input))
}

func (s *CalculationService) ProjectRentVsBuy(ctx context.Context, input domain.RentVsBuyInput) (domain.CalculationRecord, error) {
	return s.execute(ctx, domain.KindRentVsBuy, s.rentVsBuyCalculation(input))
}

func (s *CalculationService) GenerateScenarios(ctx context.Context, input domain.ScenarioInput) (domain.CalculationRecord, error) {
	return s.execute(ctx, domain.KindScenarios, s.scenarioCalculation(input))
}

// execute serves the report from cache or computes it, then records the run.
func (s *CalculationService) execute(
	ctx context.Context,
	kind domain.CalculationKind,
	calc calculation,
) (domain.CalculationRecord, error) {
	start := s.now()
	log := s.logger.With().Str("kind", string(kind)).Logger()

	// Inputs that cannot be hashed (NaN, Inf) skip the cache; validation
	// rejects them below.
	key, keyErr := cacheKey(kind, calc.input)
	cacheable := keyErr == nil

	record := domain.CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: start,
	}

	if !cacheable {
		log.Debug().Err(keyErr).Msg("skipping cache")
	} else if cached, ok := s.cache.Get(ctx, key); ok {
		log.Debug().Str("key", key).Msg("cache hit")
		record.Report = []byte(cached)
		record.Cached = true
		s.save(ctx, log, record)
		return record, nil
	}

	if err := ctx.Err(); err != nil {
		return domain.CalculationRecord{}, err
	}

	report, err := calc.run()
	if err != nil {
		if errors.Is(err, domain.ErrDidNotConverge) {
			log.Error().Err(err).Msg("calculation did not converge")
		}
		return domain.CalculationRecord{}, err
	}

	data, err := money.Marshal(report)
	if err != nil {
		return domain.CalculationRecord{}, err
	}
	record.Report = data

	if cacheable {
		if err := s.cache.Set(ctx, key, string(data)); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache report")
		}
	}
	s.save(ctx, log, record)

	log.Info().
		Str("id", record.ID).
		Dur("elapsed", s.now().Sub(start)).
		Msg("calculation finished")

	return record, nil
}

// Find returns a previously recorded calculation.
func (s *CalculationService) Find(ctx context.Context, id string) (domain.CalculationRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CalculationService) save(ctx context.Context, log zerolog.Logger, record domain.CalculationRecord) {
	// Persisting is non-critical.
	if err := s.repo.Save(ctx, record); err != nil {
		log.Warn().Err(err).Str("id", record.ID).Msg("failed to save calculation")
	}
}

func (s *CalculationService) prepare(req domain.CalculationRequest) (calculation, error) {
	switch req.Kind {
	case domain.KindAmortization:
		return decodeCalculation(req.Params, s.amortizeCalculation)
	case domain.KindExtraPayment:
		return decodeCalculation(req.Params, s.extraPaymentCalculation)
	case domain.KindRefinance:
		return decodeCalculation(req.Params, s.refinanceCalculation)
	case domain.KindRentVsBuy:
		return decodeCalculation(req.Params, s.rentVsBuyCalculation)
	case domain.KindScenarios:
		return decodeCalculation(req.Params, s.scenarioCalculation)
	}

	return calculation{}, &domain.ParameterError{
		Field:  "kind",
		Reason: fmt.Sprintf("unsupported calculation kind %q", req.Kind),
	}
}

func decodeCalculation[T any](raw json.RawMessage, build func(T) calculation) (calculation, error) {
	in, err := decodeParams[T](raw)
	if err != nil {
		return calculation{}, err
	}
	return build(in), nil
}

func (s *CalculationService) amortizeCalculation(in domain.LoanTerms) calculation {
	return calculation{input: in, run: func() (any, error) {
		result, err := s.amortization.GenerateSchedule(in)
		if err != nil {
			return nil, err
		}
		return money.NewAmortizationReport(result), nil
	}}
}

func (s *CalculationService) extraPaymentCalculation(in domain.ExtraPaymentInput) calculation {
	return calculation{input: in, run: func() (any, error) {
		result, err := s.extraPayments.Simulate(in)
		if err != nil {
			return nil, err
		}
		return money.NewExtraPaymentReport(result), nil
	}}
}

func (s *CalculationService) refinanceCalculation(in domain.RefinanceInput) calculation {
	return calculation{input: in, run: func() (any, error) {
		result, err := s.refinance.Analyze(in)
		if err != nil {
			return nil, err
		}
		return money.NewRefinanceReport(result), nil
	}}
}

func (s *CalculationService) rentVsBuyCalculation(in domain.RentVsBuyInput) calculation {
	return calculation{input: in, run: func() (any, error) {
		result, err := s.rentVsBuy.Project(in)
		if err != nil {
			return nil, err
		}
		return money.NewRentVsBuyReport(result), nil
	}}
}

func (s *CalculationService) scenarioCalculation(in domain.ScenarioInput) calculation {
	return calculation{input: in, run: func() (any, error) {
		result, err := s.scenarios.Generate(in)
		if err != nil {
			return nil, err
		}
		return money.NewScenariosReport(result), nil
	}}
}

// decodeParams rejects unknown fields so a misspelled parameter is not
// silently read as zero.
func decodeParams[T any](raw json.RawMessage) (T, error) {
	var in T
	if len(bytes.TrimSpace(raw)) == 0 {
		return in, &domain.ParameterError{Field: "params", Reason: "must be provided"}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return in, &domain.ParameterError{Field: "params", Reason: err.Error()}
	}
	return in, nil
}

// cacheKey hashes the decoded input, so requests that differ only in field
// order, spacing or name casing share an entry.
func cacheKey(kind domain.CalculationKind, input any) (string, error) {
	canonical, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return fmt.Sprintf("mortgage:%s:%016x", kind, xxhash.Sum64(canonical)), nil
}
