package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/landscape/internal/api/controller"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/ougirez/landscape/internal/service/finance"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type APIService struct {
	router         *echo.Echo
	financeService *finance.Service
	metrics        *metrics
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router, mostly for httptest.
func (svc *APIService) Handler() http.Handler {
	return svc.router
}

func NewAPIService(store store.Store) (*APIService, error) {
	// numeric columns go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	svc := &APIService{router: echo.New(), metrics: newMetrics()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:        uuid.NewString,
		RequestIDHandler: requestIDHandler,
	}))
	svc.router.Use(middleware.Logger())
	// metrics wraps Recover so panicking requests are counted as 500s
	svc.router.Use(svc.metrics.middleware)
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	svc.financeService = finance.NewService(store)
	cntrl := controller.NewController(svc.financeService)

	svc.router.GET("/healthz", cntrl.Health)
	svc.router.GET("/metrics", svc.metrics.handler())

	api := svc.router.Group("/api")

	admin := api.Group("/admin")
	admin.POST("/login", cntrl.LoginAdmin)

	fin := api.Group("/fin")

	categories := fin.Group("/categories")
	categories.GET("", cntrl.ListCategories)
	categories.POST("", cntrl.CreateCategory)
	categories.GET("/:id", cntrl.GetCategory)
	categories.PATCH("/:id", cntrl.UpdateCategory)
	categories.DELETE("/:id", cntrl.DeleteCategory)

	lines := fin.Group("/lines")
	lines.GET("", cntrl.ListLines)
	lines.POST("", cntrl.CreateLine)
	lines.PATCH("/:id", cntrl.UpdateLine)
	lines.DELETE("/:id", cntrl.DeleteLine)
	lines.GET("/:id/vendors", cntrl.ListLineVendors)
	lines.POST("/:id/vendors", cntrl.AddLineVendor)
	lines.DELETE("/:id/vendors", cntrl.RemoveLineVendor)

	fin.GET("/vendors", cntrl.SearchVendors)
	fin.POST("/vendors", cntrl.CreateVendor)
	fin.GET("/uoms", cntrl.ListUOMs)
	fin.GET("/confidence", cntrl.ListConfidencePolicies)
	fin.GET("/budgets", cntrl.ListBudgetVersions)
	fin.POST("/budgets", cntrl.CreateBudgetVersion)
	fin.POST("/seed", cntrl.Seed, svc.EnvGateMiddleware)

	return svc, nil
}

func corsOrigins() []string {
	if origins := viper.GetStringSlice(constants.ViperCORSOriginsKey); len(origins) > 0 {
		return origins
	}
	return []string{"http://localhost:3000"}
}
