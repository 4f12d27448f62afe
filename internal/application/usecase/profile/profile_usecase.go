package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	events      service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, events service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		events:      events,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

// UpdateProfileInput carries the sections present in the request. A nil
// section is left as stored.
type UpdateProfileInput struct {
	Personal  *profile.PersonalInfo
	About     *profile.AboutInfo
	Education *[]profile.Education
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
	Created bool
}

// ExecuteUpdateProfile merges the given sections into the stored profile. With
// no stored profile, personal and about are both required.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	current, err := uc.profileRepo.GetLatest(ctx)
	created := false

	switch {
	case err == nil:
		if input.Personal != nil {
			current.Personal = *input.Personal
		}
		if input.About != nil {
			current.About = *input.About
		}
		if input.Education != nil {
			current.Education = *input.Education
		}
	case apperror.IsNotFound(err):
		if input.Personal == nil || input.About == nil {
			return nil, apperror.NewInvalidInput("Personal and about data required for new profile", nil)
		}
		current = &profile.Profile{
			Personal:  *input.Personal,
			About:     *input.About,
			Education: []profile.Education{},
		}
		if input.Education != nil {
			current.Education = *input.Education
		}
		created = true
	default:
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	if err := uc.profileRepo.Replace(ctx, current); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	service.Notify(ctx, uc.events, uc.logger, service.NewPortfolioEvent(service.EventDocumentReplaced, document.CollectionProfiles, ""))
	return &UpdateProfileOutput{Profile: current, Created: created}, nil
}
