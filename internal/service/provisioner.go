package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/david-jerry/iwitness/internal/model"
	"github.com/david-jerry/iwitness/internal/repository"
)

// Provisioner creates the dependent records a new user owns. It must be
// invoked exactly once, right after the user row is created; a second
// invocation hits the unique index on each dependent's user_id and fails
// loudly instead of duplicating rows.
type Provisioner interface {
	ProvisionUser(ctx context.Context, user *model.User) error
}

type provisioner struct {
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	consents     repository.PrivacyConsentRepository
	locations    repository.UserLocationRepository
	bankAccounts repository.BankAccountRepository
	earnings     repository.EarningRepository
	log          zerolog.Logger
}

// NewProvisioner creates a new account provisioner.
func NewProvisioner(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	consents repository.PrivacyConsentRepository,
	locations repository.UserLocationRepository,
	bankAccounts repository.BankAccountRepository,
	earnings repository.EarningRepository,
	log zerolog.Logger,
) Provisioner {
	return &provisioner{
		users:        users,
		profiles:     profiles,
		consents:     consents,
		locations:    locations,
		bankAccounts: bankAccounts,
		earnings:     earnings,
		log:          log,
	}
}

// ProvisionUser marks superusers as pre-verified, then creates one Profile,
// UserPrivacyConsent, UserLocation, UserBankAccount and UserEarning for the
// user, all with default values.
func (p *provisioner) ProvisionUser(ctx context.Context, user *model.User) error {
	if user.IsSuperuser {
		if err := p.users.SetVerified(ctx, user.ID, true); err != nil {
			return fmt.Errorf("mark superuser verified: %w", err)
		}
		user.Verified = true
	}

	if err := p.profiles.Create(ctx, &model.Profile{UserID: user.ID}); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if err := p.consents.Create(ctx, &model.UserPrivacyConsent{UserID: user.ID, OfLegalAge: true}); err != nil {
		return fmt.Errorf("create privacy consent: %w", err)
	}
	if err := p.locations.Create(ctx, &model.UserLocation{UserID: user.ID}); err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	if err := p.bankAccounts.Create(ctx, &model.UserBankAccount{UserID: user.ID}); err != nil {
		return fmt.Errorf("create bank account: %w", err)
	}
	if err := p.earnings.Create(ctx, &model.UserEarning{UserID: user.ID}); err != nil {
		return fmt.Errorf("create earning: %w", err)
	}

	p.log.Info().
		Str("username", user.Username).
		Msg("user account created with all relationships attached")
	return nil
}
