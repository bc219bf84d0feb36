package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/cache"
	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/paystack"
	"github.com/david-jerry/iwitness/internal/repository"
)

const (
	bankListCacheTTL = 30 * time.Minute

	// bankListVersionKey holds a generation marker mixed into every list
	// cache key. Bumping it after a sync orphans all cached pages at once,
	// whatever their offset or page size.
	bankListVersionKey = "banks:version"
)

// BankService exposes the bank reference data and its Paystack sync.
type BankService interface {
	GetBank(ctx context.Context, id uuid.UUID) (*model.Bank, error)
	ListBanks(ctx context.Context, offset, limit int) ([]model.Bank, error)
	SyncBanks(ctx context.Context, country string) (created int, updated int, err error)
}

type bankService struct {
	banks  repository.BankRepository
	client paystack.Client
	cache  *cache.Client
}

// NewBankService creates a new bank service.
func NewBankService(banks repository.BankRepository, client paystack.Client, cache *cache.Client) BankService {
	return &bankService{banks: banks, client: client, cache: cache}
}

func (s *bankService) listCacheKey(ctx context.Context, offset, limit int) string {
	version := "0"
	if data, _ := s.cache.Get(ctx, bankListVersionKey); data != nil {
		version = string(data)
	}
	return fmt.Sprintf("banks:%s:%d:%d", version, offset, limit)
}

// GetBank retrieves a bank by ID.
func (s *bankService) GetBank(ctx context.Context, id uuid.UUID) (*model.Bank, error) {
	bank, err := s.banks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBankNotFound
		}
		return nil, err
	}
	return bank, nil
}

// ListBanks returns a page of banks with caching.
func (s *bankService) ListBanks(ctx context.Context, offset, limit int) ([]model.Bank, error) {
	key := s.listCacheKey(ctx, offset, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Bank
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	banks, err := s.banks.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(banks); err == nil {
		_ = s.cache.Set(ctx, key, payload, bankListCacheTTL)
	}
	return banks, nil
}

// SyncBanks refreshes the local reference data from the Paystack bank list,
// creating unknown banks and updating known ones by slug.
func (s *bankService) SyncBanks(ctx context.Context, country string) (created int, updated int, err error) {
	remote, err := s.client.ListBanks(ctx, country)
	if err != nil {
		return 0, 0, err
	}

	for _, item := range remote {
		existing, err := s.banks.FindBySlug(ctx, item.Slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, fmt.Errorf("sync bank %s: %w", item.Slug, err)
		}

		if existing != nil {
			existing.Name = item.Name
			existing.Code = item.Code
			existing.LCode = item.LongCode
			existing.CountryISO = item.Country
			if err := s.banks.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("update bank %s: %w", item.Slug, err)
			}
			updated++
			continue
		}

		bank := &model.Bank{
			Name:       item.Name,
			Slug:       item.Slug,
			Code:       item.Code,
			LCode:      item.LongCode,
			CountryISO: item.Country,
		}
		if err := s.banks.Create(ctx, bank); err != nil {
			return created, updated, fmt.Errorf("create bank %s: %w", item.Slug, err)
		}
		created++
	}

	// The reference data changed; a new generation marker orphans every
	// cached page regardless of its offset and page size.
	_ = s.cache.Set(ctx, bankListVersionKey, []byte(uuid.NewString()), 0)

	return created, updated, nil
}
