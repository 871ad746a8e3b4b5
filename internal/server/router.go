package server

import (
	"net/http"
	"time"

	"arfilla-backend/internal/config"
	"arfilla-backend/internal/domain"
	"arfilla-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	layanan handler.LayananHandler,
	pesanan handler.PesananHandler,
	pembayaran handler.PembayaranHandler,
	progres handler.ProgresHandler,
	pengguna handler.PenggunaHandler,
	admins handler.AdminHandler,
	portofolio handler.PortofolioHandler,
	laporan handler.LaporanHandler,
	keluhan handler.KeluhanHandler,
	upload handler.UploadHandler,
	notifikasi handler.NotifikasiHandler,
	dashboard handler.DashboardHandler,
	logs handler.ActivityLogHandler,
	pengaturan handler.PengaturanHandler,
	home handler.HomeHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	home.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())
	upload.RegisterStaticRoutes(r)

	r.Route("/api", func(api chi.Router) {
		auth.RegisterPublicRoutes(api)
		layanan.RegisterPublicRoutes(api)
		portofolio.RegisterPublicRoutes(api)

		api.Group(func(pr chi.Router) {
			pr.Use(AuthMiddleware(cfg.JWTSecret))
			// customer-level (pengguna/admin)
			pr.Group(func(cr chi.Router) {
				cr.Use(RequireRole(domain.RoleAdmin, domain.RolePengguna))
				auth.RegisterRoutes(cr)
				pesanan.RegisterCustomerRoutes(cr)
				pembayaran.RegisterCustomerRoutes(cr)
				progres.RegisterCustomerRoutes(cr)
				keluhan.RegisterCustomerRoutes(cr)
				notifikasi.RegisterRoutes(cr)
				upload.RegisterRoutes(cr)
			})
			// admin-level
			pr.Group(func(ar chi.Router) {
				ar.Use(RequireRole(domain.RoleAdmin))
				pesanan.RegisterAdminRoutes(ar)
				pembayaran.RegisterAdminRoutes(ar)
				progres.RegisterAdminRoutes(ar)
				layanan.RegisterAdminRoutes(ar)
				portofolio.RegisterAdminRoutes(ar)
				pengguna.RegisterRoutes(ar)
				admins.RegisterRoutes(ar)
				laporan.RegisterRoutes(ar)
				keluhan.RegisterAdminRoutes(ar)
				dashboard.RegisterRoutes(ar)
				logs.RegisterRoutes(ar)
				pengaturan.RegisterRoutes(ar)
			})
		})
	})

	return r
}
