package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
	"github.com/shopspring/decimal"
)

const maxDealUniqueIDLength = 100

// Amount bounds from the deals column type NUMERIC(19,4).
const (
	maxAmountIntegerDigits  = 15
	maxAmountFractionDigits = 4
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// DealService implements the deal admission pipeline and the read-only query
// surface over persisted deals. It is stateless; uniqueness of dealUniqueId
// is ultimately enforced by the repository's atomic insert.
type DealService struct {
	dealRepo          portsrepo.DealRepositoryFacade
	currencyValidator portssvc.CurrencyValidator
	rejectFutureDeals bool
}

// NewDealService creates a new DealService. rejectFutureDeals toggles the
// optional rule that refuses deal timestamps later than submission time.
func NewDealService(dealRepo portsrepo.DealRepositoryFacade, currencyValidator portssvc.CurrencyValidator, rejectFutureDeals bool) *DealService {
	return &DealService{
		dealRepo:          dealRepo,
		currencyValidator: currencyValidator,
		rejectFutureDeals: rejectFutureDeals,
	}
}

var _ portssvc.DealSvcFacade = (*DealService)(nil)

// SubmitDeal runs the admission pipeline: validate fully, then check for a
// duplicate, then commit. The duplicate pre-check only buys a cheap, friendly
// error; the insert itself is the authoritative uniqueness barrier, so a
// race between two submissions of the same ID still yields exactly one deal.
func (s *DealService) SubmitDeal(ctx context.Context, req dto.SubmitDealRequest) (*domain.Deal, error) {
	if err := s.validateDealRequest(ctx, req); err != nil {
		return nil, err
	}

	exists, err := s.dealRepo.ExistsByUniqueID(ctx, req.DealUniqueID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate deal %s: %w", req.DealUniqueID, err)
	}
	if exists {
		return nil, duplicateDealError(req.DealUniqueID)
	}

	deal := domain.NewDeal(req.DealUniqueID, req.FromCurrency, req.ToCurrency, req.DealTimestamp, req.DealAmount)

	saved, err := s.dealRepo.InsertDealIfAbsent(ctx, deal)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race between pre-check and insert.
			return nil, duplicateDealError(req.DealUniqueID)
		}
		return nil, fmt.Errorf("failed to persist deal %s: %w", req.DealUniqueID, err)
	}

	return saved, nil
}

// GetDealByUniqueID retrieves a deal by its business key.
func (s *DealService) GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindDealByUniqueID(ctx, dealUniqueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get deal %s: %w", dealUniqueID, err)
	}
	return deal, nil
}

// ListDeals retrieves all persisted deals.
func (s *DealService) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	deals, err := s.dealRepo.ListDeals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	if deals == nil {
		return []domain.Deal{}, nil
	}
	return deals, nil
}

// GetDealsByCurrencyPair retrieves deals for the given pair, newest deal
// timestamp first. Inputs are upper-cased and validated against the catalog
// before querying.
func (s *DealService) GetDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.Deal, error) {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	if err := s.validateCurrencyCode(ctx, from); err != nil {
		return nil, err
	}
	if err := s.validateCurrencyCode(ctx, to); err != nil {
		return nil, err
	}

	deals, err := s.dealRepo.FindDealsByCurrencyPair(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find deals for pair %s/%s: %w", from, to, err)
	}
	if deals == nil {
		return []domain.Deal{}, nil
	}
	return deals, nil
}

// GetDealsByTimeRange retrieves deals with timestamps in [start, end], both
// bounds inclusive, newest deal timestamp first.
func (s *DealService) GetDealsByTimeRange(ctx context.Context, start, end time.Time) ([]domain.Deal, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start time cannot be after end time", apperrors.ErrValidation)
	}

	deals, err := s.dealRepo.FindDealsByTimestampRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find deals in time range: %w", err)
	}
	if deals == nil {
		return []domain.Deal{}, nil
	}
	return deals, nil
}

// GetRecentDeals retrieves up to limit deals, newest createdAt first.
func (s *DealService) GetRecentDeals(ctx context.Context, limit int) ([]domain.Deal, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be greater than 0", apperrors.ErrValidation)
	}

	deals, err := s.dealRepo.FindRecentDeals(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent deals: %w", err)
	}
	if deals == nil {
		return []domain.Deal{}, nil
	}
	return deals, nil
}

// CountDeals returns the total number of persisted deals.
func (s *DealService) CountDeals(ctx context.Context) (int64, error) {
	count, err := s.dealRepo.CountDeals(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count deals: %w", err)
	}
	return count, nil
}

// DealExists reports whether a deal with the given business key exists.
func (s *DealService) DealExists(ctx context.Context, dealUniqueID string) (bool, error) {
	exists, err := s.dealRepo.ExistsByUniqueID(ctx, dealUniqueID)
	if err != nil {
		return false, fmt.Errorf("failed to check deal existence for %s: %w", dealUniqueID, err)
	}
	return exists, nil
}

// validateDealRequest applies the admission rules, fail-fast, reporting the
// first violation: field presence, ID length, currency rules, amount rules,
// then the optional temporal rule.
func (s *DealService) validateDealRequest(ctx context.Context, req dto.SubmitDealRequest) error {
	if strings.TrimSpace(req.DealUniqueID) == "" {
		return fmt.Errorf("%w: deal unique ID is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.FromCurrency) == "" {
		return fmt.Errorf("%w: from currency is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.ToCurrency) == "" {
		return fmt.Errorf("%w: to currency is required", apperrors.ErrValidation)
	}
	if req.DealTimestamp.IsZero() {
		return fmt.Errorf("%w: deal timestamp is required", apperrors.ErrValidation)
	}

	if len(req.DealUniqueID) > maxDealUniqueIDLength {
		return fmt.Errorf("%w: deal unique ID must be between 1 and %d characters", apperrors.ErrValidation, maxDealUniqueIDLength)
	}

	if err := s.validateCurrencies(ctx, req.FromCurrency, req.ToCurrency); err != nil {
		return err
	}

	if req.DealAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: deal amount must be greater than 0", apperrors.ErrValidation)
	}
	if err := validateAmountDigits(req.DealAmount); err != nil {
		return err
	}

	if s.rejectFutureDeals && req.DealTimestamp.After(time.Now()) {
		return fmt.Errorf("%w: deal timestamp cannot be in the future", apperrors.ErrValidation)
	}

	return nil
}

// validateCurrencies checks format and catalog membership of both codes,
// then their distinctness after upper-casing.
func (s *DealService) validateCurrencies(ctx context.Context, fromCurrency, toCurrency string) error {
	if err := s.validateCurrencyCode(ctx, fromCurrency); err != nil {
		return err
	}
	if err := s.validateCurrencyCode(ctx, toCurrency); err != nil {
		return err
	}
	if strings.EqualFold(fromCurrency, toCurrency) {
		return fmt.Errorf("%w: from currency and to currency cannot be the same", apperrors.ErrValidation)
	}
	return nil
}

func (s *DealService) validateCurrencyCode(ctx context.Context, currencyCode string) error {
	if len(currencyCode) != 3 {
		return fmt.Errorf("%w: currency code must be exactly 3 characters: %s", apperrors.ErrValidation, currencyCode)
	}
	if !currencyCodePattern.MatchString(currencyCode) {
		return fmt.Errorf("%w: invalid currency code: %s", apperrors.ErrValidation, currencyCode)
	}

	valid, err := s.currencyValidator.IsValidCurrencyCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return fmt.Errorf("failed to validate currency code %s: %w", currencyCode, err)
	}
	if !valid {
		return fmt.Errorf("%w: invalid currency code: %s", apperrors.ErrValidation, currencyCode)
	}
	return nil
}

// validateAmountDigits enforces the NUMERIC(19,4) shape of the amount:
// at most 15 integer digits and at most 4 decimal places.
func validateAmountDigits(amount decimal.Decimal) error {
	if amount.Exponent() < -maxAmountFractionDigits {
		return fmt.Errorf("%w: deal amount must have at most %d integer digits and %d decimal places",
			apperrors.ErrValidation, maxAmountIntegerDigits, maxAmountFractionDigits)
	}
	if amount.Abs().GreaterThanOrEqual(decimal.New(1, maxAmountIntegerDigits)) {
		return fmt.Errorf("%w: deal amount must have at most %d integer digits and %d decimal places",
			apperrors.ErrValidation, maxAmountIntegerDigits, maxAmountFractionDigits)
	}
	return nil
}

func duplicateDealError(dealUniqueID string) error {
	return fmt.Errorf("%w: deal with unique ID %s already exists", apperrors.ErrDuplicate, dealUniqueID)
}
