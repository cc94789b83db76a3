package usecases

import (
	"context"
	"fmt"

	"soapbox/internal/domain/setting"
	"soapbox/internal/shared/logger"
)

type GetSettingsResult struct {
	// Values maps setting keys to their stored values. Known keys missing
	// from storage are absent, not empty.
	Values map[string]string
}

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsResult, error) {
	settings, err := uc.settingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key()] = s.Value()
	}

	return &GetSettingsResult{Values: values}, nil
}
