package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/setting"
	apperrors "soapbox/internal/shared/errors"
	"soapbox/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	Values map[string]string
}

type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

var knownSettingKeys = map[string]bool{
	setting.KeySiteName:         true,
	setting.KeySiteDescription:  true,
	setting.KeyDefaultBoardSlug: true,
	setting.KeyAllowAnonVotes:   true,
}

// Execute upserts the given settings. Unknown keys are rejected up front so
// typos do not silently accumulate dead rows.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) error {
	if len(cmd.Values) == 0 {
		return apperrors.NewValidationError("no settings provided")
	}

	for key := range cmd.Values {
		if !knownSettingKeys[key] {
			return apperrors.NewValidationError(fmt.Sprintf("unknown setting key: %s", key))
		}
	}

	for key, value := range cmd.Values {
		if err := uc.settingRepo.Upsert(ctx, key, value); err != nil {
			uc.logger.Errorw("failed to upsert setting", "key", key, "error", err)
			return fmt.Errorf("failed to upsert setting %q: %w", key, err)
		}
	}

	uc.logger.Infow("settings updated", "count", len(cmd.Values))
	return nil
}
