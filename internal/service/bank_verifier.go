package service

import (
	"context"
	"fmt"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	apperrors "github.com/david-jerry/iwitness/internal/errors"
	"github.com/david-jerry/iwitness/internal/paystack"
)

const (
	// NameSimilarityThreshold is the minimum 0-100 fuzzy score between the
	// resolved holder name and the claimed name for a verification to pass.
	NameSimilarityThreshold = 80

	// resolvedMessage is the exact message the resolution service returns
	// for a successfully resolved account.
	resolvedMessage = "Account number resolved"
)

// BankVerifier checks a claimed bank account against the external resolution
// service. It performs no persistence; callers write the resolved name and
// verified flag once it succeeds.
type BankVerifier interface {
	// VerifyAndResolve resolves the account and compares the holder name
	// against claimedName. On success it returns the service's resolved
	// name, which replaces the claimed one.
	VerifyAndResolve(ctx context.Context, accountNumber, bankCode, claimedName string) (string, error)
}

type bankVerifier struct {
	client paystack.Client
}

// NewBankVerifier creates a verifier backed by the given resolution client.
func NewBankVerifier(client paystack.Client) BankVerifier {
	return &bankVerifier{client: client}
}

// VerifyAndResolve implements BankVerifier.
func (v *bankVerifier) VerifyAndResolve(ctx context.Context, accountNumber, bankCode, claimedName string) (string, error) {
	resp, err := v.client.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		return "", err
	}

	if !resp.Status || resp.Message != resolvedMessage {
		return "", fmt.Errorf("%w: %s", apperrors.ErrResolutionFailed, resp.Message)
	}

	// Token-set scoring is word-order-insensitive and tolerates middle
	// names the claimant omitted (a strict token-sort comparison would
	// punish "John Okafor" against "John Adeyemi Okafor"). The cleanse
	// option lowercases both names; without it the score is case-sensitive.
	score := fuzzy.TokenSetRatio(resp.Data.AccountName, claimedName, false, true)
	if score < NameSimilarityThreshold {
		return "", fmt.Errorf("%w: similarity %d below %d", apperrors.ErrNameMismatch, score, NameSimilarityThreshold)
	}

	return resp.Data.AccountName, nil
}
