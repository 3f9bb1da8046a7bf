// Package repomanager provides the RepositoryManager that vends one
// repository per entity. The in-memory manager owns a single table per
// entity for the lifetime of the process.
package repomanager

import (
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/branches"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/documents"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/news"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/schemes"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/settings"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends process-local repositories. Every call
// returns the same instance, so all callers observe the same data.
type InMemoryRepositoryManager struct {
	users     *users.MemoryRepository
	schemes   *schemes.MemoryRepository
	news      *news.MemoryRepository
	documents *documents.MemoryRepository
	settings  *settings.MemoryRepository
	branches  *branches.MemoryRepository
}

// Users returns the shared users.Repository.
func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

// Schemes returns the shared schemes.Repository.
func (m *InMemoryRepositoryManager) Schemes() schemes.Repository { return m.schemes }

// News returns the shared news.Repository.
func (m *InMemoryRepositoryManager) News() news.Repository { return m.news }

// Documents returns the shared documents.Repository.
func (m *InMemoryRepositoryManager) Documents() documents.Repository { return m.documents }

// Settings returns the shared settings.Repository.
func (m *InMemoryRepositoryManager) Settings() settings.Repository { return m.settings }

// Branches returns the shared branches.Repository.
func (m *InMemoryRepositoryManager) Branches() branches.Repository { return m.branches }

// NewInMemoryRepositoryManager constructs a manager with empty repositories.
func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		schemes:   schemes.NewMemoryRepository(),
		news:      news.NewMemoryRepository(),
		documents: documents.NewMemoryRepository(),
		settings:  settings.NewMemoryRepository(),
		branches:  branches.NewMemoryRepository(),
	}
}
