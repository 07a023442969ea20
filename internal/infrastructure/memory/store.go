package memory

import "github.com/jhoicas/Finanzas-api/internal/domain/repository"

// NewStore construye un repository.Store completo en memoria.
func NewStore() repository.Store {
	return repository.Store{
		Organizations:       NewOrganizationRepository(),
		Wallets:             NewWalletRepository(),
		Bills:               NewBillRepository(),
		Goals:               NewGoalRepository(),
		Categories:          NewCategoryRepository(),
		SubCategories:       NewSubCategoryRepository(),
		CategoryCreditCards: NewCategoryCreditCardRepository(),
		Companies:           NewCompanyRepository(),
		Investments:         NewInvestmentRepository(),
		AccessLogs:          NewAccessLogRepository(),
		Suggestions:         NewSuggestionRepository(),
		Users:               NewUserRepository(),
		PasswordResetTokens: NewPasswordResetTokenRepository(),
	}
}
