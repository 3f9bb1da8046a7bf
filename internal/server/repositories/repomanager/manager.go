package repomanager

import (
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/branches"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/documents"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/news"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/schemes"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/settings"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Schemes() schemes.Repository
	News() news.Repository
	Documents() documents.Repository
	Settings() settings.Repository
	Branches() branches.Repository
}
