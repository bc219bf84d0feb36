package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/david-jerry/iwitness/internal/model"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestBankAccountRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBankAccountRepository(db)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_bank_accounts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), &model.UserBankAccount{UserID: userID})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankAccountRepository_Create_DuplicateUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBankAccountRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_bank_accounts`").
		WillReturnError(&mysqlDuplicateError{})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.UserBankAccount{UserID: uuid.New()})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// mysqlDuplicateError mimics the driver error raised by a unique index hit.
type mysqlDuplicateError struct{}

func (e *mysqlDuplicateError) Error() string {
	return "Error 1062 (23000): Duplicate entry for key 'idx_user_bank_accounts_user_id'"
}

func TestBankAccountRepository_FindByUserID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBankAccountRepository(db)

	accountID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "bank_id", "verified", "account_name", "account_number",
		"created_at", "updated_at", "deleted_at",
	}).AddRow(accountID.String(), userID.String(), nil, false, "", nil, now, now, nil)

	mock.ExpectQuery("SELECT \\* FROM `user_bank_accounts` WHERE user_id = \\?").
		WithArgs(userID, 1).
		WillReturnRows(rows)

	account, err := repo.FindByUserID(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, userID, account.UserID)
	assert.False(t, account.Verified)
	assert.Nil(t, account.AccountNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankAccountRepository_FindByUserID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewBankAccountRepository(db)

	userID := uuid.New()

	mock.ExpectQuery("SELECT \\* FROM `user_bank_accounts` WHERE user_id = \\?").
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	account, err := repo.FindByUserID(context.Background(), userID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, account)
	assert.NoError(t, mock.ExpectationsWereMet())
}
