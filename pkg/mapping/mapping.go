package mapping

import (
	"github.com/chris/statement-ledger/pkg/api"
	"github.com/chris/statement-ledger/pkg/models"
)

// ToApiUser converts a domain User model to an API User model.
// The password hash deliberately has no API counterpart.
func ToApiUser(user *models.User) *api.User {
	return &api.User{
		Id:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToApiStatement converts a domain Statement model to an API Statement model.
func ToApiStatement(statement *models.Statement) *api.Statement {
	return &api.Statement{
		Id:          statement.ID,
		UserId:      statement.UserID,
		Type:        string(statement.Type),
		Amount:      statement.Amount,
		Description: statement.Description,
		CreatedAt:   statement.CreatedAt,
		UpdatedAt:   statement.UpdatedAt,
	}
}

// ToApiBalance converts a domain Balance model to an API Balance model.
func ToApiBalance(balance *models.Balance) *api.Balance {
	statements := make([]*api.Statement, len(balance.Statement))
	for i, st := range balance.Statement {
		statements[i] = ToApiStatement(&st)
	}
	return &api.Balance{
		Balance:   balance.Balance,
		Statement: statements,
	}
}
