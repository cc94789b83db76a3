package usecases

import (
	"context"

	"soapbox/internal/domain/setting"
	"soapbox/internal/shared/logger"
)

type mockSettingRepository struct {
	UpsertFunc func(ctx context.Context, key, value string) error
	GetFunc    func(ctx context.Context, key string) (*setting.Setting, error)
	ListFunc   func(ctx context.Context) ([]*setting.Setting, error)
}

func (m *mockSettingRepository) Upsert(ctx context.Context, key, value string) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, key, value)
	}
	return nil
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockSettingRepository) List(ctx context.Context) ([]*setting.Setting, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
