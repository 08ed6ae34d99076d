package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghstudios/mhgen-catalog/api/controllers"
	"github.com/ghstudios/mhgen-catalog/api/middleware"
	"github.com/ghstudios/mhgen-catalog/internal/catalog"
	"github.com/ghstudios/mhgen-catalog/internal/placement"
	"github.com/ghstudios/mhgen-catalog/internal/wishlist"
	"github.com/ghstudios/mhgen-catalog/pkg/config"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
	"github.com/ghstudios/mhgen-catalog/pkg/metrics"
	"github.com/ghstudios/mhgen-catalog/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	readiness map[string]controllers.Pinger,
	catalogService catalog.Service,
	wishlistService wishlist.Service,
	placementService controllers.PlacementWorkflow,
	placementGuard placement.Guard,
	placementMetrics *metrics.PlacementMetrics,
	idempotencyStore redis.IdempotencyStore,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	idempotent := middleware.Idempotency(idempotencyStore, cfg.Placement.IdempotencyTTL, logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items/{itemId}", func(r chi.Router) {
			r.Get("/", controllers.CatalogItem(catalogService, logg))
			r.Get("/paths", controllers.CatalogItemPaths(catalogService, logg))
		})
		r.Get("/armor-families/{familyId}", controllers.CatalogArmorFamily(catalogService, logg))

		r.Route("/wishlists", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(wishlistService, logg))
			r.With(idempotent).Post("/", controllers.WishlistCreate(wishlistService, logg))
			r.Get("/{wishlistId}", controllers.WishlistDetail(wishlistService, logg))
		})

		r.Route("/placements", func(r chi.Router) {
			r.Get("/options", controllers.PlacementOptions(placementService, logg))
			r.With(idempotent).Post("/", controllers.PlacementCommit(placementService, placementGuard, placementMetrics, logg))
		})
	})

	return r
}
