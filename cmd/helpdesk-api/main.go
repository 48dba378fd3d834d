// main is the entry point of the university helpdesk mock API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the SQLite audit trail
//  4. Seed the in-memory mock data store
//  5. Wire the domain services and the intent dispatcher
//  6. Register all HTTP routes
//  7. Start the HTTP server in a separate goroutine
//  8. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  9. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/helpdesk-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/helpdesk-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/config"
	"github.com/aanand-mishra/helpdesk-api/internal/dispatch"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/enrollment"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/events"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/exams"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/fees"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/hostel"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/identity"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/intents"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/leave"
	"github.com/aanand-mishra/helpdesk-api/internal/http/handlers/system"
	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/storage/sqlite"
	"github.com/aanand-mishra/helpdesk-api/internal/store"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and panics if anything is wrong.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Structured logging writes key=value pairs rather than plain strings,
	// making logs easy to filter/search downstream.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting helpdesk-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Audit Storage ───────────────────────────────────────
	// Only the audit trail is durable; everything else is mock state.
	// We store the result as the storage.Storage INTERFACE, not *sqlite.SQLite,
	// so swapping backends later only requires changing this one line.
	auditStore, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise audit storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("audit storage initialised",
		slog.String("path", cfg.StoragePath))

	// ── 4. Seed the Mock Data Store ───────────────────────────────────────
	// seed is also handed to the admin reset endpoint so a test run can
	// put the world back exactly as it started.
	seed := func() (*store.Data, error) {
		if cfg.SeedPath != "" {
			return store.LoadSeedFile(cfg.SeedPath)
		}
		return store.Seed(), nil
	}

	data, err := seed()
	if err != nil {
		log.Error("failed to seed mock data store",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	mockStore := store.New(data)

	// ── 5. Wire Services and Dispatcher ───────────────────────────────────
	feesSvc := service.NewFees(mockStore, auditStore, cfg.PaymentLinkTTL)
	enrollSvc := service.NewEnrollment(mockStore, auditStore)
	examsSvc := service.NewExams(mockStore, auditStore)
	hostelSvc := service.NewHostel(mockStore, auditStore)
	leaveSvc := service.NewLeave(mockStore, auditStore, cfg.LeaveAutoApproveDays)
	eventsSvc := service.NewEvents(mockStore, auditStore)
	identitySvc := service.NewIdentity(mockStore, auditStore, cfg.OTPTTL, cfg.OTPLength)
	catalogSvc := service.NewCatalog(mockStore)

	dispatcher := dispatch.New(dispatch.Services{
		Fees:       feesSvc,
		Enrollment: enrollSvc,
		Exams:      examsSvc,
		Hostel:     hostelSvc,
		Leave:      leaveSvc,
		Events:     eventsSvc,
		Identity:   identitySvc,
		Catalog:    catalogSvc,
	})

	// ── 6. Register HTTP Routes ───────────────────────────────────────────
	// The handler functions are FACTORIES — each receives its service and
	// returns the actual handler (the dependency-injection closure pattern).
	router := http.NewServeMux()

	router.HandleFunc("POST /api/dispatch", intents.Dispatch(dispatcher))

	router.HandleFunc("GET /api/students/{id}", identity.Student(identitySvc))
	router.HandleFunc("GET /api/courses", system.Courses(catalogSvc))

	router.HandleFunc("GET /api/fees/{studentId}", fees.Balance(feesSvc))
	router.HandleFunc("POST /api/fees/{studentId}/payments", fees.CreatePaymentLink(feesSvc))
	router.HandleFunc("POST /api/payments/{id}/callback", fees.PaymentCallback(feesSvc))

	router.HandleFunc("POST /api/enrollments", enrollment.Enroll(enrollSvc))
	router.HandleFunc("GET /api/enrollments/{courseCode}", enrollment.Status(enrollSvc))
	router.HandleFunc("DELETE /api/enrollments", enrollment.Drop(enrollSvc))

	router.HandleFunc("GET /api/exams/{studentId}", exams.Timetable(examsSvc))
	router.HandleFunc("POST /api/exams/special", exams.RequestSpecial(examsSvc))

	router.HandleFunc("GET /api/hostels", hostel.Availability(hostelSvc))
	router.HandleFunc("POST /api/hostels/bookings", hostel.Book(hostelSvc))
	router.HandleFunc("POST /api/hostels/maintenance", hostel.Maintenance(hostelSvc))

	router.HandleFunc("POST /api/leaves", leave.Apply(leaveSvc))

	router.HandleFunc("POST /api/events/registrations", events.Register(eventsSvc))
	router.HandleFunc("DELETE /api/events/registrations", events.Cancel(eventsSvc))

	router.HandleFunc("POST /api/otp/request", identity.RequestOTP(identitySvc))
	router.HandleFunc("POST /api/otp/verify", identity.VerifyOTP(identitySvc))

	router.HandleFunc("GET /api/audit", system.AuditLog(auditStore))
	router.HandleFunc("GET /api/health", system.Health())
	router.HandleFunc("POST /api/admin/reset", system.Reset(mockStore, seed))

	// ── 7. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 8. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever; running it here would keep the
	// graceful-shutdown code below from ever executing.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 9. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered so we don't miss the signal if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	// In-flight requests get five seconds to finish before the context
	// cancels and Shutdown returns an error.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
