package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Eitve/RKL/controller"
	"github.com/Eitve/RKL/db"
	"github.com/Eitve/RKL/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, errorResponse{Error: msg})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		division := model.ParseDivision(chi.URLParam(r, "division"))
		if !division.Valid() {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown division: %s", chi.URLParam(r, "division")))
			return
		}

		rows, err := ctrl.GetStandings(r.Context(), division)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, rows)
	}
}

func leadersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stat := model.ParseStatCategory(r.URL.Query().Get("stat"))
		if stat == model.StatUnknown {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown stat category: %s", r.URL.Query().Get("stat")))
			return
		}
		pos := r.URL.Query().Get("pos")

		entries, err := ctrl.GetLeaderboard(r.Context(), pos, stat)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, entries)
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		team, err := ctrl.GetTeam(r.Context(), teamID)
		if err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				renderError(render, w, http.StatusNotFound, "team not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func teamPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		players, err := ctrl.ListTeamPlayers(r.Context(), teamID)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func playerProfileHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		playerKey := chi.URLParam(r, "playerKey")

		profile, err := ctrl.GetPlayerProfile(r.Context(), teamID, playerKey)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				renderError(render, w, http.StatusNotFound, "player not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, profile)
	}
}

func listGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		division := model.ParseDivision(r.URL.Query().Get("division"))
		if !division.Valid() {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown division: %s", r.URL.Query().Get("division")))
			return
		}
		completed := r.URL.Query().Get("completed") != "false"

		games, err := ctrl.ListGames(r.Context(), division, completed)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		game, err := ctrl.GetGame(r.Context(), gameID)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, game)
	}
}

func boxScoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		box, err := ctrl.GetGameBoxScore(r.Context(), gameID)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, box)
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		division := model.ParseDivision(chi.URLParam(r, "division"))
		if !division.Valid() {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown division: %s", chi.URLParam(r, "division")))
			return
		}

		games, err := ctrl.ListScheduledGames(r.Context(), division)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func listNewsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		news, err := ctrl.ListNews(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, news)
	}
}

func getNewsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "newsID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing news id: %v", err))
			return
		}

		item, err := ctrl.GetNews(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrNewsNotFound) {
				renderError(render, w, http.StatusNotFound, "news item not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, item)
	}
}

func importTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := ctrl.ImportTeam(r.Context(), r.Body)
		if err != nil {
			if errors.Is(err, controller.ErrTeamExists) {
				renderError(render, w, http.StatusConflict, err.Error())
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusCreated, team)
	}
}

func importScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := ctrl.ImportSchedule(r.Context(), r.Body)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		render.JSON(w, http.StatusCreated, map[string]int{"imported": count})
	}
}

func importBoxScoreHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")

		var side model.GameSide
		switch chi.URLParam(r, "side") {
		case "home":
			side = model.SideHome
		case "away":
			side = model.SideAway
		default:
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown side: %s", chi.URLParam(r, "side")))
			return
		}

		if err := ctrl.ImportBoxScore(r.Context(), gameID, side, r.Body); err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
	}
}

func refreshStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RefreshPlayerAverages(r.Context()); err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
	}
}
