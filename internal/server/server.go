package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fessit/financesuite/internal/compliance"
	compliancedomain "github.com/fessit/financesuite/internal/compliance/domain"
	"github.com/fessit/financesuite/internal/config"
	"github.com/fessit/financesuite/internal/customer"
	customerdomain "github.com/fessit/financesuite/internal/customer/domain"
	"github.com/fessit/financesuite/internal/dashboard"
	dashboarddomain "github.com/fessit/financesuite/internal/dashboard/domain"
	"github.com/fessit/financesuite/internal/expense"
	expensedomain "github.com/fessit/financesuite/internal/expense/domain"
	"github.com/fessit/financesuite/internal/invoice"
	invoicedomain "github.com/fessit/financesuite/internal/invoice/domain"
	"github.com/fessit/financesuite/internal/organisation"
	organisationdomain "github.com/fessit/financesuite/internal/organisation/domain"
	"github.com/fessit/financesuite/internal/report"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	customer.Module,
	organisation.Module,
	invoice.Module,
	expense.Module,
	dashboard.Module,
	compliance.Module,
	report.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware(httpMetrics))
	r.Use(CORS(cfg.CORSOrigin))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(cfg config.Config, log *zap.Logger) *gin.Engine {
	return NewEngine(cfg, log, HTTP())
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	customerSvc     customerdomain.Service
	organisationSvc organisationdomain.Service
	invoiceSvc      invoicedomain.Service
	expenseSvc      expensedomain.Service
	dashboardSvc    dashboarddomain.Service
	complianceSvc   compliancedomain.Service
	reportGen       report.Generator
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	CustomerSvc     customerdomain.Service
	OrganisationSvc organisationdomain.Service
	InvoiceSvc      invoicedomain.Service
	ExpenseSvc      expensedomain.Service
	DashboardSvc    dashboarddomain.Service
	ComplianceSvc   compliancedomain.Service
	ReportGen       report.Generator
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		customerSvc:     p.CustomerSvc,
		organisationSvc: p.OrganisationSvc,
		invoiceSvc:      p.InvoiceSvc,
		expenseSvc:      p.ExpenseSvc,
		dashboardSvc:    p.DashboardSvc,
		complianceSvc:   p.ComplianceSvc,
		reportGen:       p.ReportGen,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	customers := api.Group("/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomerByID)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)

	organisations := api.Group("/organisations")
	organisations.POST("", s.CreateOrganisation)
	organisations.GET("", s.ListOrganisations)
	organisations.GET("/by-email", s.GetOrganisationByEmail)
	organisations.GET("/:id", s.GetOrganisationByID)
	organisations.PUT("/:id", s.UpdateOrganisation)
	organisations.DELETE("/:id", s.DeleteOrganisation)

	invoices := api.Group("/invoices")
	invoices.POST("", s.CreateInvoice)
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoiceByID)
	invoices.PUT("/:id", s.UpdateInvoice)
	invoices.DELETE("/:id", s.DeleteInvoice)
	invoices.GET("/:id/taxes", s.GetInvoiceTaxSummary)
	invoices.GET("/:id/report", s.GetInvoiceReport)

	expenses := api.Group("/expenses")
	expenses.POST("", s.CreateExpense)
	expenses.GET("", s.ListExpenses)
	expenses.GET("/summary", s.GetExpenseSummary)
	expenses.GET("/projects", s.GetExpenseProjectStats)
	expenses.GET("/categories", s.GetExpenseCategoryStats)
	expenses.GET("/:id", s.GetExpenseByID)
	expenses.PUT("/:id", s.UpdateExpense)
	expenses.DELETE("/:id", s.DeleteExpense)
	expenses.POST("/receipts", s.UploadExpenseReceipt)
	expenses.GET("/receipts/:name", s.GetExpenseReceipt)
	expenses.POST("/:id/submit", s.SubmitExpense)
	expenses.POST("/:id/review", s.ReviewExpense)
	expenses.POST("/:id/reimburse", s.ReimburseExpense)

	api.GET("/dashboard/stats", s.GetDashboardStats)

	comp := api.Group("/compliance")
	comp.POST("/gst-returns", s.CreateGSTReturn)
	comp.GET("/gst-returns", s.ListGSTReturns)
	comp.GET("/gst-returns/summary", s.GetGSTSummary)
	comp.POST("/gst-returns/:id/file", s.FileGSTReturn)
	comp.POST("/tds-records", s.CreateTDSRecord)
	comp.GET("/tds-records", s.ListTDSRecords)
	comp.GET("/tds-records/summary", s.GetTDSSummary)
	comp.POST("/tds-records/:id/deposit", s.DepositTDS)

	api.GET("/reference/countries", s.ListCountries)
	api.GET("/reference/countries/:code", s.GetCountryByCode)
}
