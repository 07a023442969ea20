package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/factory"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Factory   *factory.Factory
	JWTSecret string
	Cache     PartitionCache
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	f := deps.Factory
	p := newPartitions(deps.Cache, deps.Log)

	api := app.Group("/api")

	// Organizations (público)
	orgHandler := NewOrganizationHandler(f.MakeCreateOrganization())
	api.Post("/organizations", orgHandler.Create)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(f.MakeLogin(), f.MakeForgotPassword(), f.MakeResetPassword())
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	wallets := protected.Group("/wallets")
	walletHandler := NewWalletHandler(f.MakeCreateWallet(), f.MakeUpdateWallet(), f.MakeDeleteWallet(), f.MakeSearchWallets())
	wallets.Get("/", walletHandler.List)
	wallets.Post("/", walletHandler.Create)
	wallets.Put("/:id", walletHandler.Update)
	wallets.Delete("/:id", walletHandler.Delete)

	bills := protected.Group("/bills")
	billHandler := NewBillHandler(f.MakeCreateBill(), f.MakeMarkBillAsPaid(), f.MakeDeleteBill(), f.MakeSearchBills())
	bills.Get("/", billHandler.List)
	bills.Post("/", billHandler.Create)
	bills.Patch("/:id/paid", billHandler.MarkAsPaid)
	bills.Delete("/:id", billHandler.Delete)

	goals := protected.Group("/goals")
	goalHandler := NewGoalHandler(f.MakeCreateGoal(), f.MakeUpdateGoal(), f.MakeDeleteGoal(), f.MakeSearchGoals())
	goals.Get("/", goalHandler.List)
	goals.Post("/", goalHandler.Create)
	goals.Put("/:id", goalHandler.Update)
	goals.Delete("/:id", goalHandler.Delete)

	categoryHandler := NewCategoryHandler(CategoryUseCases{
		Create:      f.MakeCreateCategory(),
		Import:      f.MakeImportCategories(),
		Search:      f.MakeSearchCategories(),
		CreateSub:   f.MakeCreateSubCategory(),
		ImportSubs:  f.MakeImportSubCategories(),
		SearchSubs:  f.MakeSearchSubCategories(),
		ImportCards: f.MakeImportCategoryCreditCards(),
		SearchCards: f.MakeSearchCategoryCreditCards(),
	}, p)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Post("/import", categoryHandler.Import)
	categories.Get("/:id/sub-categories", categoryHandler.ListSubCategories)
	categories.Post("/:id/sub-categories", categoryHandler.CreateSubCategory)
	categories.Post("/:id/sub-categories/import", categoryHandler.ImportSubCategories)

	cards := protected.Group("/credit-card-categories")
	cards.Get("/", categoryHandler.ListCreditCards)
	cards.Post("/import", categoryHandler.ImportCreditCards)

	banks := protected.Group("/banks")
	companyHandler := NewCompanyHandler(f.MakeCreateCompany(), f.MakeImportCompanies(), f.MakeSearchCompanies(), p)
	banks.Get("/", companyHandler.List)
	banks.Post("/", companyHandler.Create)
	banks.Post("/import", companyHandler.Import)

	investments := protected.Group("/investments")
	investmentHandler := NewInvestmentHandler(f.MakeCreateInvestment(), f.MakeSearchInvestments())
	investments.Get("/", investmentHandler.List)
	investments.Post("/", investmentHandler.Create)

	accessLogs := protected.Group("/access-logs")
	accessLogHandler := NewAccessLogHandler(f.MakeCreateAccessLog(), f.MakeSearchAccessLogs())
	accessLogs.Get("/", accessLogHandler.List)
	accessLogs.Post("/", accessLogHandler.Create)

	suggestions := protected.Group("/suggestions")
	suggestionHandler := NewSuggestionHandler(f.MakeCreateSuggestion(), f.MakeSearchSuggestions())
	suggestions.Get("/", suggestionHandler.List)
	suggestions.Post("/", suggestionHandler.Create)

	users := protected.Group("/users")
	userHandler := NewUserHandler(f.MakeCreateUser(), f.MakeSearchUsers())
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
}
