package usecase

import (
	"time"

	"calendar-event-creator/internal/auth/repository"
	"calendar-event-creator/pkg/log"
	"calendar-event-creator/pkg/oauth"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	providers map[string]oauth.Provider
	order     []string
	now       func() time.Time
}

// New creates the auth UseCase. Providers are offered in the order given.
func New(l log.Logger, repo repository.Repository, providers []oauth.Provider) *implUseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		providers: make(map[string]oauth.Provider, len(providers)),
		now:       time.Now,
	}
	for _, p := range providers {
		if _, dup := uc.providers[p.Name()]; dup {
			continue
		}
		uc.providers[p.Name()] = p
		uc.order = append(uc.order, p.Name())
	}
	return uc
}
