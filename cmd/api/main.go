package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "bde-backend/internal/adapter/http"
	appmw "bde-backend/internal/adapter/middleware"
	"bde-backend/internal/adapter/repository/sqldb"
	"bde-backend/internal/config"
	"bde-backend/internal/infrastructure/cache"
	"bde-backend/internal/infrastructure/db"
	"bde-backend/internal/usecase/csvio"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal(err)
	}

	store := sqldb.NewStore(gdb)
	exchanger := csvio.NewExchanger(store)

	h := httpadp.NewHandler()
	employees := httpadp.NewEmployeeHandler(store.Employees)
	machines := httpadp.NewMachineHandler(store.Machines)
	workOrders := httpadp.NewWorkOrderHandler(store.WorkOrders)
	operations := httpadp.NewOperationHandler(store.Operations, store.WorkOrders, store.Machines)
	activities := httpadp.NewActivityHandler(store.Activities, store.Employees, store.Operations)
	csvh := httpadp.NewCSVHandler(exchanger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		e.Use(appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
		log.Println("idempotency middleware enabled")
	}

	// routes
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.GET("/employees", employees.List)
	e.POST("/employees", employees.Create)
	e.GET("/employees/:id", employees.Get)
	e.PUT("/employees/:id", employees.Update)
	e.DELETE("/employees/:id", employees.Delete)

	e.GET("/machines", machines.List)
	e.POST("/machines", machines.Create)
	e.GET("/machines/:id", machines.Get)
	e.PUT("/machines/:id", machines.Update)
	e.DELETE("/machines/:id", machines.Delete)

	e.GET("/work-orders", workOrders.List)
	e.POST("/work-orders", workOrders.Create)
	e.GET("/work-orders/:id", workOrders.Get)
	e.PUT("/work-orders/:id", workOrders.Update)
	e.DELETE("/work-orders/:id", workOrders.Delete)

	e.GET("/operations", operations.List)
	e.POST("/operations", operations.Create)
	e.GET("/operations/:id", operations.Get)
	e.PUT("/operations/:id", operations.Update)
	e.DELETE("/operations/:id", operations.Delete)

	e.GET("/activity-records", activities.List)
	e.POST("/activity-records", activities.Create)
	e.GET("/activity-records/:id", activities.Get)
	e.PUT("/activity-records/:id", activities.Update)
	e.DELETE("/activity-records/:id", activities.Delete)

	e.GET("/csv/:entity", csvh.Export)
	e.POST("/csv/:entity", csvh.Import)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
