package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/david-jerry/iwitness/internal/cache"
	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/paystack"
)

func setupTestCache(t *testing.T) *cache.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return cache.New(mr.Addr(), "", 0)
}

func TestBankService_SyncBanks(t *testing.T) {
	remote := []paystack.BankData{
		{Name: "Guaranty Trust Bank", Slug: "gtbank", Code: "058", LongCode: "058152036", Country: "Nigeria"},
		{Name: "Access Bank", Slug: "access-bank", Code: "044", LongCode: "044150149", Country: "Nigeria"},
	}

	client := new(MockPaystackClient)
	client.On("ListBanks", mock.Anything, "NG").Return(remote, nil)

	banks := new(MockBankRepository)
	banks.On("FindBySlug", mock.Anything, "gtbank").Return(&model.Bank{Slug: "gtbank", Code: "057"}, nil)
	banks.On("Update", mock.Anything, mock.MatchedBy(func(b *model.Bank) bool {
		return b.Slug == "gtbank" && b.Code == "058"
	})).Return(nil)
	banks.On("FindBySlug", mock.Anything, "access-bank").Return(nil, gorm.ErrRecordNotFound)
	banks.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Bank) bool {
		return b.Slug == "access-bank" && b.Code == "044"
	})).Return(nil)

	svc := NewBankService(banks, client, setupTestCache(t))
	created, updated, err := svc.SyncBanks(context.Background(), "NG")

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)
	banks.AssertExpectations(t)
}

func TestBankService_SyncBanks_InvalidatesAllCachedPages(t *testing.T) {
	testCache := setupTestCache(t)

	gtbank := model.Bank{Name: "Guaranty Trust Bank", Slug: "gtbank", Code: "058"}
	access := model.Bank{Name: "Access Bank", Slug: "access-bank", Code: "044"}

	banks := new(MockBankRepository)
	// First read populates the cache; the read after the sync must reach
	// the repository again even though the page size is not the default.
	banks.On("List", mock.Anything, 0, 25).Return([]model.Bank{gtbank}, nil).Once()
	banks.On("List", mock.Anything, 0, 25).Return([]model.Bank{gtbank, access}, nil).Once()
	banks.On("FindBySlug", mock.Anything, "access-bank").Return(nil, gorm.ErrRecordNotFound)
	banks.On("Create", mock.Anything, mock.AnythingOfType("*model.Bank")).Return(nil)

	client := new(MockPaystackClient)
	client.On("ListBanks", mock.Anything, "NG").Return([]paystack.BankData{
		{Name: "Access Bank", Slug: "access-bank", Code: "044", Country: "Nigeria"},
	}, nil)

	svc := NewBankService(banks, client, testCache)
	ctx := context.Background()

	first, err := svc.ListBanks(ctx, 0, 25)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	// Served from cache; the repository expectation above is not consumed.
	cached, err := svc.ListBanks(ctx, 0, 25)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, _, err = svc.SyncBanks(ctx, "NG")
	require.NoError(t, err)

	refreshed, err := svc.ListBanks(ctx, 0, 25)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)

	banks.AssertExpectations(t)
}
