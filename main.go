package main

import (
	"net/http"
	"os"

	"leagues-api/internal"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()

	cfg, err := internal.ReadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("read config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	db := internal.MustDB(cfg.DatabaseURL)
	defer db.Close()

	store := internal.NewCredStore(cfg.UsersFile)
	clock := clockwork.NewRealClock()

	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/register", internal.Register(store))
	r.POST("/login", internal.Login(store, cfg.JWTSecret, clock))

	r.GET("/players", internal.ListPlayers(db))
	r.GET("/games", internal.ListGames(db))
	r.GET("/teams", internal.ListTeams(db))
	r.GET("/matches", internal.ListMatches(db))
	r.GET("/leagues", internal.ListLeagues(db))

	auth := internal.Auth(cfg.JWTSecret, clock)
	edit := internal.RequireRole("admin", "editor")
	admin := internal.RequireRole("admin")

	r.POST("/players", auth, edit, internal.CreatePlayer(db))
	r.PUT("/players/:id", auth, edit, internal.UpdatePlayer(db))
	r.DELETE("/players/:id", auth, admin, internal.DeletePlayer(db))

	r.POST("/games", auth, edit, internal.CreateGame(db))
	r.PUT("/games/:id", auth, edit, internal.UpdateGame(db))
	r.DELETE("/games/:id", auth, admin, internal.DeleteGame(db))

	r.POST("/teams", auth, edit, internal.CreateTeam(db))
	r.PUT("/teams/:id", auth, edit, internal.UpdateTeam(db))
	r.DELETE("/teams/:id", auth, admin, internal.DeleteTeam(db))

	r.POST("/matches", auth, edit, internal.CreateMatch(db))
	r.PUT("/matches/:id", auth, edit, internal.UpdateMatch(db))
	r.DELETE("/matches/:id", auth, admin, internal.DeleteMatch(db))

	r.POST("/leagues", auth, edit, internal.CreateLeague(db))
	r.PUT("/leagues/:id", auth, edit, internal.UpdateLeague(db))
	r.DELETE("/leagues/:id", auth, admin, internal.DeleteLeague(db))

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
