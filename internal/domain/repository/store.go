package repository

import "context"

// Store agrupa los puertos de persistencia de un mismo backend (postgres o memoria).
type Store struct {
	Organizations       OrganizationRepository
	Wallets             WalletRepository
	Bills               BillRepository
	Goals               GoalRepository
	Categories          CategoryRepository
	SubCategories       SubCategoryRepository
	CategoryCreditCards CategoryCreditCardRepository
	Companies           CompanyRepository
	Investments         InvestmentRepository
	AccessLogs          AccessLogRepository
	Suggestions         SuggestionRepository
	Users               UserRepository
	PasswordResetTokens PasswordResetTokenRepository
}

// TxRunner ejecuta fn con un Store cuyas operaciones comparten una transacción.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(Store) error) error
}
