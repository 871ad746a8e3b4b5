package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"arfilla-backend/internal/config"
	"arfilla-backend/internal/db"
	"arfilla-backend/internal/handler"
	"arfilla-backend/internal/notify"
	"arfilla-backend/internal/repository"
	"arfilla-backend/internal/server"
	"arfilla-backend/internal/service"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/option"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		logger.Error("failed to ensure schema", "err", err)
		os.Exit(1)
	}

	// Firebase Auth (optional)
	var firebaseAuth *auth.Client
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
		if err != nil {
			logger.Error("failed to init firebase app", "err", err)
			os.Exit(1)
		}
		client, err := app.Auth(ctx)
		if err != nil {
			logger.Error("failed to init firebase auth", "err", err)
			os.Exit(1)
		}
		firebaseAuth = client
	}

	// repositories
	penggunaRepo := repository.PenggunaRepository{DB: pg}
	adminRepo := repository.AdminRepository{DB: pg}
	layananRepo := repository.LayananRepository{DB: pg}
	pesananRepo := repository.PesananRepository{DB: pg}
	pembayaranRepo := repository.PembayaranRepository{DB: pg}
	progresRepo := repository.ProgresRepository{DB: pg}
	portofolioRepo := repository.PortofolioRepository{DB: pg}
	laporanRepo := repository.LaporanRepository{DB: pg}
	keluhanRepo := repository.KeluhanRepository{DB: pg}
	pengaturanRepo := repository.PengaturanRepository{DB: pg}
	logRepo := repository.ActivityLogRepository{DB: pg}
	dashboardRepo := repository.DashboardRepository{DB: pg}
	notificationRepo := repository.NotificationRepository{DB: pg}

	seed(ctx, cfg, logger, adminRepo, layananRepo)

	dispatcher := notify.Dispatcher{
		Mailer:        notify.NewMailer(cfg, pengaturanRepo),
		Notifications: notificationRepo,
		Log:           logger,
	}

	// services
	authSvc := service.AuthService{
		Config:       cfg,
		Admins:       adminRepo,
		Pengguna:     penggunaRepo,
		Logger:       logger,
		FirebaseAuth: firebaseAuth,
	}
	pesananSvc := service.PesananService{
		Pesanan:  pesananRepo,
		Pengguna: penggunaRepo,
		Logs:     logRepo,
		Notifier: dispatcher,
		Logger:   logger,
	}
	pembayaranSvc := service.PembayaranService{
		DB:         pg,
		Pembayaran: pembayaranRepo,
		Pesanan:    pesananRepo,
		Pengguna:   penggunaRepo,
		Logs:       logRepo,
		Notifier:   dispatcher,
		Logger:     logger,
	}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Auth: &authSvc}
	layananHandler := handler.LayananHandler{Repo: layananRepo}
	pesananHandler := handler.PesananHandler{Service: pesananSvc}
	pembayaranHandler := handler.PembayaranHandler{Service: pembayaranSvc}
	progresHandler := handler.ProgresHandler{Progres: progresRepo, Pesanan: pesananRepo}
	penggunaHandler := handler.PenggunaHandler{Repo: penggunaRepo}
	adminHandler := handler.AdminHandler{Repo: adminRepo}
	portofolioHandler := handler.PortofolioHandler{Repo: portofolioRepo}
	laporanHandler := handler.LaporanHandler{Repo: laporanRepo}
	keluhanHandler := handler.KeluhanHandler{Repo: keluhanRepo, Pesanan: pesananRepo}
	uploadHandler := handler.UploadHandler{Dir: cfg.UploadDir, BaseURL: cfg.PublicBaseURL}
	notifikasiHandler := handler.NotifikasiHandler{Repo: notificationRepo}
	dashboardHandler := handler.DashboardHandler{Repo: dashboardRepo}
	logHandler := handler.ActivityLogHandler{Repo: logRepo}
	pengaturanHandler := handler.PengaturanHandler{Repo: pengaturanRepo}
	homeHandler := handler.HomeHandler{}

	router := server.NewRouter(cfg, logger,
		healthHandler, authHandler, layananHandler, pesananHandler,
		pembayaranHandler, progresHandler, penggunaHandler, adminHandler,
		portofolioHandler, laporanHandler, keluhanHandler, uploadHandler,
		notifikasiHandler, dashboardHandler, logHandler, pengaturanHandler,
		homeHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg config.Config, logger *slog.Logger, admins repository.AdminRepository, layanan repository.LayananRepository) {
	if err := layanan.SeedDefaults(ctx); err != nil {
		logger.Warn("failed to seed layanan", "err", err)
	}
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Warn("failed to hash seed admin password", "err", err)
		return
	}
	if err := admins.SeedDefault(ctx, "Administrator", cfg.SeedAdminEmail, string(hash)); err != nil {
		logger.Warn("failed to seed admin", "err", err)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// Allow inline JSON or base64-encoded JSON in env to avoid writing a file.
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
