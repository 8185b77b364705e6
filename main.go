package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanager/collections"
	"quotemanager/handlers"
	"quotemanager/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the default company profile on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/api/", func(e *core.RequestEvent) error {
			return e.JSON(http.StatusOK, map[string]string{"message": "Quotation Management System API"})
		})

		// ── Company profile ──────────────────────────────────────
		se.Router.GET("/api/company", handlers.HandleCompanyGet(app))
		se.Router.PUT("/api/company", handlers.HandleCompanyUpdate(app))
		se.Router.POST("/api/company/logo", handlers.HandleLogoUpload(app))
		se.Router.GET("/api/uploads/{filename}", handlers.HandleUploadServe())

		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))

		// Register export (before /api/quotes/{id} so "export" is not matched as an ID)
		se.Router.GET("/api/quotes/export/register", handlers.HandleQuoteRegisterExport(app))

		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteGet(app))
		se.Router.PUT("/api/quotes/{id}", handlers.HandleQuoteUpdate(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Document exports ─────────────────────────────────────
		se.Router.GET("/api/quotes/{id}/export/excel", handlers.HandleQuoteExport(app, services.ExportExcel))
		se.Router.GET("/api/quotes/{id}/export/docx", handlers.HandleQuoteExport(app, services.ExportDocx))
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExport(app, services.ExportPDF))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
