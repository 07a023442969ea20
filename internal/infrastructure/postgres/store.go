package postgres

import "github.com/jhoicas/Finanzas-api/internal/domain/repository"

// NewStore construye todos los repositorios sobre el mismo Querier (pool o tx).
func NewStore(db Querier) repository.Store {
	return repository.Store{
		Organizations:       NewOrganizationRepository(db),
		Wallets:             NewWalletRepository(db),
		Bills:               NewBillRepository(db),
		Goals:               NewGoalRepository(db),
		Categories:          NewCategoryRepository(db),
		SubCategories:       NewSubCategoryRepository(db),
		CategoryCreditCards: NewCategoryCreditCardRepository(db),
		Companies:           NewCompanyRepository(db),
		Investments:         NewInvestmentRepository(db),
		AccessLogs:          NewAccessLogRepository(db),
		Suggestions:         NewSuggestionRepository(db),
		Users:               NewUserRepository(db),
		PasswordResetTokens: NewPasswordResetTokenRepository(db),
	}
}
