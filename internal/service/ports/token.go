package ports

import "github.com/rahmedalmosd25-ux/eventhub/internal/domain"

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
