package services

import (
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

// Storage is the single entry point the route layer talks to. It is built
// once by the composition root.
type Storage struct {
	Users     *UserService
	Schemes   *SchemeService
	News      *NewsService
	Documents *DocumentService
	Settings  *SettingService
	Branches  *BranchService
}

// NewStorage wires one service per entity over the repositories vended by m.
func NewStorage(m repomanager.RepositoryManager, opts ...Option) *Storage {
	d := newDeps(opts...)
	return &Storage{
		Users:     &UserService{repomanager: m, deps: d},
		Schemes:   &SchemeService{repomanager: m, deps: d},
		News:      &NewsService{repomanager: m, deps: d},
		Documents: &DocumentService{repomanager: m, deps: d},
		Settings:  &SettingService{repomanager: m, deps: d},
		Branches:  &BranchService{repomanager: m, deps: d},
	}
}
