// Package factory compone los casos de uso a partir de un Store concreto y sus colaboradores.
// No contiene lógica: cada Make* solo conecta dependencias.
package factory

import (
	"time"

	"github.com/jhoicas/Finanzas-api/internal/application/accesslog"
	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/bill"
	"github.com/jhoicas/Finanzas-api/internal/application/category"
	"github.com/jhoicas/Finanzas-api/internal/application/company"
	"github.com/jhoicas/Finanzas-api/internal/application/goal"
	"github.com/jhoicas/Finanzas-api/internal/application/investment"
	"github.com/jhoicas/Finanzas-api/internal/application/organization"
	"github.com/jhoicas/Finanzas-api/internal/application/suggestion"
	"github.com/jhoicas/Finanzas-api/internal/application/user"
	"github.com/jhoicas/Finanzas-api/internal/application/wallet"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/pkg/password"
)

// Deps colaboradores compartidos por todos los casos de uso.
type Deps struct {
	Store    repository.Store
	Tx       repository.TxRunner
	Mailer   auth.Mailer
	Observer auth.NotificationObserver
	JWT      auth.JWTConfig
	Hasher   password.Hasher
	Clock    func() time.Time
}

// Factory construye casos de uso.
type Factory struct {
	d Deps
}

// New crea la factory. Hasher nil usa bcrypt con costo por defecto; Clock nil usa time.Now.
func New(d Deps) *Factory {
	if d.Hasher == nil {
		d.Hasher = password.NewBcryptHasher(password.DefaultCost)
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return &Factory{d: d}
}

// organization

func (f *Factory) MakeCreateOrganization() *organization.CreateOrganizationUseCase {
	return organization.NewCreateOrganizationUseCase(f.d.Store.Organizations, f.d.Hasher)
}

// auth

func (f *Factory) MakeLogin() *auth.LoginUseCase {
	return auth.NewLoginUseCase(f.d.Store.Organizations, f.d.Store.AccessLogs, f.d.Hasher, f.d.JWT)
}

func (f *Factory) MakeForgotPassword() *auth.ForgotPasswordUseCase {
	return auth.NewForgotPasswordUseCase(f.d.Store.PasswordResetTokens, f.d.Mailer, f.d.Observer, f.d.Clock)
}

func (f *Factory) MakeResetPassword() *auth.ResetPasswordUseCase {
	return auth.NewResetPasswordUseCase(f.d.Store.Organizations, f.d.Store.PasswordResetTokens, f.d.Tx, f.d.Hasher, f.d.Clock)
}

// wallet

func (f *Factory) MakeCreateWallet() *wallet.CreateWalletUseCase {
	return wallet.NewCreateWalletUseCase(f.d.Store.Wallets)
}

func (f *Factory) MakeUpdateWallet() *wallet.UpdateWalletUseCase {
	return wallet.NewUpdateWalletUseCase(f.d.Store.Wallets)
}

func (f *Factory) MakeDeleteWallet() *wallet.DeleteWalletUseCase {
	return wallet.NewDeleteWalletUseCase(f.d.Store.Wallets)
}

func (f *Factory) MakeSearchWallets() *wallet.SearchWalletsUseCase {
	return wallet.NewSearchWalletsUseCase(f.d.Store.Wallets)
}

// bill

func (f *Factory) MakeCreateBill() *bill.CreateBillUseCase {
	return bill.NewCreateBillUseCase(f.d.Store.Bills)
}

func (f *Factory) MakeMarkBillAsPaid() *bill.MarkBillAsPaidUseCase {
	return bill.NewMarkBillAsPaidUseCase(f.d.Store.Bills)
}

func (f *Factory) MakeDeleteBill() *bill.DeleteBillUseCase {
	return bill.NewDeleteBillUseCase(f.d.Store.Bills)
}

func (f *Factory) MakeSearchBills() *bill.SearchBillsUseCase {
	return bill.NewSearchBillsUseCase(f.d.Store.Bills)
}

// goal

func (f *Factory) MakeCreateGoal() *goal.CreateGoalUseCase {
	return goal.NewCreateGoalUseCase(f.d.Store.Goals)
}

func (f *Factory) MakeUpdateGoal() *goal.UpdateGoalUseCase {
	return goal.NewUpdateGoalUseCase(f.d.Store.Goals)
}

func (f *Factory) MakeDeleteGoal() *goal.DeleteGoalUseCase {
	return goal.NewDeleteGoalUseCase(f.d.Store.Goals)
}

func (f *Factory) MakeSearchGoals() *goal.SearchGoalsUseCase {
	return goal.NewSearchGoalsUseCase(f.d.Store.Goals)
}

// category

func (f *Factory) MakeCreateCategory() *category.CreateCategoryUseCase {
	return category.NewCreateCategoryUseCase(f.d.Store.Categories)
}

func (f *Factory) MakeImportCategories() *category.ImportCategoriesUseCase {
	return category.NewImportCategoriesUseCase(f.d.Store.Categories)
}

func (f *Factory) MakeSearchCategories() *category.SearchCategoriesUseCase {
	return category.NewSearchCategoriesUseCase(f.d.Store.Categories)
}

func (f *Factory) MakeCreateSubCategory() *category.CreateSubCategoryUseCase {
	return category.NewCreateSubCategoryUseCase(f.d.Store.Categories, f.d.Store.SubCategories)
}

func (f *Factory) MakeImportSubCategories() *category.ImportSubCategoriesUseCase {
	return category.NewImportSubCategoriesUseCase(f.d.Store.Categories, f.d.Store.SubCategories)
}

func (f *Factory) MakeSearchSubCategories() *category.SearchSubCategoriesUseCase {
	return category.NewSearchSubCategoriesUseCase(f.d.Store.Categories, f.d.Store.SubCategories)
}

func (f *Factory) MakeImportCategoryCreditCards() *category.ImportCategoryCreditCardsUseCase {
	return category.NewImportCategoryCreditCardsUseCase(f.d.Store.CategoryCreditCards)
}

func (f *Factory) MakeSearchCategoryCreditCards() *category.SearchCategoryCreditCardsUseCase {
	return category.NewSearchCategoryCreditCardsUseCase(f.d.Store.CategoryCreditCards)
}

// company

func (f *Factory) MakeCreateCompany() *company.CreateCompanyUseCase {
	return company.NewCreateCompanyUseCase(f.d.Store.Companies)
}

func (f *Factory) MakeImportCompanies() *company.ImportCompaniesUseCase {
	return company.NewImportCompaniesUseCase(f.d.Store.Companies)
}

func (f *Factory) MakeSearchCompanies() *company.SearchCompaniesUseCase {
	return company.NewSearchCompaniesUseCase(f.d.Store.Companies)
}

// investment, accesslog, suggestion, user

func (f *Factory) MakeCreateInvestment() *investment.CreateInvestmentUseCase {
	return investment.NewCreateInvestmentUseCase(f.d.Store.Investments)
}

func (f *Factory) MakeSearchInvestments() *investment.SearchInvestmentsUseCase {
	return investment.NewSearchInvestmentsUseCase(f.d.Store.Investments)
}

func (f *Factory) MakeCreateAccessLog() *accesslog.CreateAccessLogUseCase {
	return accesslog.NewCreateAccessLogUseCase(f.d.Store.AccessLogs)
}

func (f *Factory) MakeSearchAccessLogs() *accesslog.SearchAccessLogsUseCase {
	return accesslog.NewSearchAccessLogsUseCase(f.d.Store.AccessLogs)
}

func (f *Factory) MakeCreateSuggestion() *suggestion.CreateSuggestionUseCase {
	return suggestion.NewCreateSuggestionUseCase(f.d.Store.Suggestions)
}

func (f *Factory) MakeSearchSuggestions() *suggestion.SearchSuggestionsUseCase {
	return suggestion.NewSearchSuggestionsUseCase(f.d.Store.Suggestions)
}

func (f *Factory) MakeCreateUser() *user.CreateUserUseCase {
	return user.NewCreateUserUseCase(f.d.Store.Users)
}

func (f *Factory) MakeSearchUsers() *user.SearchUsersUseCase {
	return user.NewSearchUsersUseCase(f.d.Store.Users)
}
