package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

// SettingService keeps exactly one setting per key.
type SettingService struct {
	repomanager repomanager.RepositoryManager
	deps
}

func (s *SettingService) List(ctx context.Context) ([]models.Setting, error) {
	list, err := s.repomanager.Settings().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return list, nil
}

func (s *SettingService) ListByCategory(ctx context.Context, category string) ([]models.Setting, error) {
	list, err := s.repomanager.Settings().ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list settings in %s: %w", category, err)
	}
	return list, nil
}

func (s *SettingService) Get(ctx context.Context, id string) (*models.Setting, error) {
	st, err := s.repomanager.Settings().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get setting %s: %w", id, err)
	}
	return st, nil
}

// FindByKey returns the setting or common.ErrorNotFound.
func (s *SettingService) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	st, err := s.repomanager.Settings().GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find setting %s: %w", key, err)
	}
	return st, nil
}

// Create stores a new setting. A taken key yields common.ErrorAlreadyExists;
// the check and the insert are one atomic step.
func (s *SettingService) Create(ctx context.Context, in models.SettingInput) (*models.Setting, error) {
	st, _, err := s.repomanager.Settings().Upsert(ctx, in.Key, keyTaken(in.Key), s.builder(in))
	if err != nil {
		return nil, fmt.Errorf("create setting: %w", err)
	}
	return st, nil
}

// UpsertByKey replaces only the value of the setting holding in.Key, or
// creates it with the category and displayName defaults. The returned bool
// is true when a record was created.
func (s *SettingService) UpsertByKey(ctx context.Context, in models.SettingInput) (*models.Setting, bool, error) {
	setValue := func(st *models.Setting) error {
		st.Value = in.Value
		return nil
	}
	st, created, err := s.repomanager.Settings().Upsert(ctx, in.Key, setValue, s.builder(in))
	if err != nil {
		return nil, false, fmt.Errorf("upsert setting: %w", err)
	}
	return st, created, nil
}

// Update merges the patch. The key cannot be changed this way.
func (s *SettingService) Update(ctx context.Context, id string, patch models.SettingPatch) (*models.Setting, error) {
	st, err := s.repomanager.Settings().Update(ctx, id, func(st *models.Setting) error {
		patch.Apply(st)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update setting %s: %w", id, err)
	}
	return st, nil
}

func (s *SettingService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.Settings().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete setting %s: %w", id, err)
	}
	return ok, nil
}

// Import stores a fully formed setting under its fixed id. A taken key
// yields common.ErrorAlreadyExists like Create.
func (s *SettingService) Import(ctx context.Context, st models.Setting) (*models.Setting, error) {
	created, _, err := s.repomanager.Settings().Upsert(ctx, st.Key, keyTaken(st.Key), func() models.Setting { return st })
	if err != nil {
		return nil, fmt.Errorf("import setting: %w", err)
	}
	return created, nil
}

func keyTaken(key string) func(*models.Setting) error {
	return func(*models.Setting) error {
		return fmt.Errorf("setting key %s: %w", key, common.ErrorAlreadyExists)
	}
}

func (s *SettingService) builder(in models.SettingInput) func() models.Setting {
	return func() models.Setting {
		return models.NewSetting(s.newID(), in)
	}
}
