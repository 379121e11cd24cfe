package service

import "net/http"

// ExpenseService holds the expense routes. They have no behaviour yet and
// are only registered when expenses are enabled in the config.
type ExpenseService struct{}

func NewExpenseService() *ExpenseService {
	return &ExpenseService{}
}

func (s *ExpenseService) AddExpense(w http.ResponseWriter, r *http.Request) error {
	return noContent(w, r)
}

// ListExpenses runs behind middleware.RequireUser.
func (s *ExpenseService) ListExpenses(w http.ResponseWriter, r *http.Request) error {
	return noContent(w, r)
}

func (s *ExpenseService) DeleteExpense(w http.ResponseWriter, r *http.Request) error {
	return noContent(w, r)
}
