package main

import (
	"log"
	"log/slog"
	"os"

	"supplier-api/config"
	"supplier-api/controllers"
	"supplier-api/database"
	"supplier-api/idgen"
	"supplier-api/mailer"
	"supplier-api/repositories"
	"supplier-api/routes"
	"supplier-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := idgen.Init(cfg.SnowflakeNode); err != nil {
		log.Fatalf("Failed to initialise id generator: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	supplierRepo := repositories.NewSupplierRepository(db)
	productRepo := repositories.NewProductRepository(db)

	supplierService := services.NewSupplierService(supplierRepo)
	productService := services.NewProductService(productRepo, supplierRepo)
	notificationService := services.NewNotificationService(productRepo, supplierRepo, mailer.NewSMTPSender(cfg.Mail))

	app := routes.NewApp(cfg, routes.Controllers{
		Supplier: controllers.NewSupplierController(supplierService),
		Product:  controllers.NewProductController(productService),
		Email:    controllers.NewEmailController(notificationService),
	})

	slog.Info("server starting", "port", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
