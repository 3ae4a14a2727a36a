package services

import (
	"context"
	"log"
	"time"

	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// AccessGateInterface decides whether a caller may run a generation this
// cycle: identity required, admin allow-list and active day passes bypass
// the quota, everyone else spends a daily token.
type AccessGateInterface interface {
	Authorize(ctx context.Context, userID string) error
}

type AccessGate struct {
	quota    QuotaServiceInterface
	accounts repositories.AccountRepository
	adminIDs map[string]struct{}
}

func NewAccessGate(quota QuotaServiceInterface, accounts repositories.AccountRepository, adminIDs []string) AccessGateInterface {
	ids := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return &AccessGate{
		quota:    quota,
		accounts: accounts,
		adminIDs: ids,
	}
}

func (g *AccessGate) Authorize(ctx context.Context, userID string) error {
	if userID == "" {
		return utils.ErrUnauthenticated
	}

	if _, ok := g.adminIDs[userID]; ok {
		return nil
	}

	if g.hasActiveDayPass(ctx, userID) {
		return nil
	}

	allowed, err := g.quota.Consume(ctx, userID)
	if err != nil {
		// Fail OPEN: an unreachable quota store must not block all traffic.
		log.Printf("quota check unavailable for user %s, allowing request: %v", userID, err)
		return nil
	}
	if !allowed {
		return utils.ErrRateLimited
	}

	return nil
}

func (g *AccessGate) hasActiveDayPass(ctx context.Context, userID string) bool {
	account, err := g.accounts.FindById(ctx, userID)
	if err != nil {
		log.Printf("day pass lookup failed for user %s: %v", userID, err)
		return false
	}
	return account != nil && account.ProExpiresAt > time.Now().Unix()
}
