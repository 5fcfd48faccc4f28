package web

import (
	"time"

	"github.com/Eitve/RKL/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, admin AdminAuth) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Get("/standings/{division}", standingsHandler(ctrl, render))
	r.Get("/leaders", leadersHandler(ctrl, render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Get("/{teamID}", getTeamHandler(ctrl, render))
		r.Get("/{teamID}/players", teamPlayersHandler(ctrl, render))
		r.Get("/{teamID}/players/{playerKey}", playerProfileHandler(ctrl, render))
	})

	r.Route("/games", func(r chi.Router) {
		r.Get("/", listGamesHandler(ctrl, render))
		r.Get("/{gameID}", getGameHandler(ctrl, render))
		r.Get("/{gameID}/boxscore", boxScoreHandler(ctrl, render))
	})

	r.Get("/schedule/{division}", scheduleHandler(ctrl, render))

	r.Route("/news", func(r chi.Router) {
		r.Get("/", listNewsHandler(ctrl, render))
		r.Get("/{newsID:\\d+}", getNewsHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("rkl", map[string]string{admin.User: admin.Password}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/teams", importTeamHandler(ctrl, render))
		r.Post("/schedule", importScheduleHandler(ctrl, render))
		r.Post("/games/{gameID}/boxscore/{side}", importBoxScoreHandler(ctrl, render))
		r.Post("/refresh", refreshStatsHandler(ctrl, render))
	})

	return r
}
