package internal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func ListTeams(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		teams := []Team{}
		err := db.SelectContext(c.Request.Context(), &teams,
			"SELECT team_id, team_name, league_id, created_by_player_id, date_created FROM teams ORDER BY team_id ASC",
		)
		if err != nil {
			log.Warn().Err(err).Msg("list teams")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, teams)
	}
}

func CreateTeam(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// league_id and created_by_player_id are optional so both legacy
		// team shapes round-trip; referenced rows are not validated.
		var req struct {
			TeamName          string `json:"team_name"`
			LeagueID          *int   `json:"league_id"`
			CreatedByPlayerID *int   `json:"created_by_player_id"`
			DateCreated       string `json:"date_created"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.TeamName == "" || req.DateCreated == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		var t Team
		err := db.GetContext(c.Request.Context(), &t,
			`INSERT INTO teams (team_name, league_id, created_by_player_id, date_created)
			 VALUES ($1,$2,$3,$4)
			 RETURNING team_id, team_name, league_id, created_by_player_id, date_created`,
			req.TeamName, req.LeagueID, req.CreatedByPlayerID, req.DateCreated,
		)
		if err != nil {
			log.Warn().Err(err).Msg("create team")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		logAction(db, username(c), "create_team", "team_id="+strconv.Itoa(t.TeamID))
		c.JSON(http.StatusCreated, t)
	}
}

func UpdateTeam(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var req struct {
			TeamName          *string `json:"team_name"`
			LeagueID          *int    `json:"league_id"`
			CreatedByPlayerID *int    `json:"created_by_player_id"`
			DateCreated       *string `json:"date_created"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		set := map[string]any{}
		if req.TeamName != nil {
			set["team_name"] = *req.TeamName
		}
		if req.LeagueID != nil {
			set["league_id"] = *req.LeagueID
		}
		if req.CreatedByPlayerID != nil {
			set["created_by_player_id"] = *req.CreatedByPlayerID
		}
		if req.DateCreated != nil {
			set["date_created"] = *req.DateCreated
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		query, args, err := buildUpdate("teams", "team_id", id, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query"})
			return
		}
		res, err := db.ExecContext(c.Request.Context(), query, args...)
		if err != nil {
			log.Warn().Err(err).Msg("update team")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}

		logAction(db, username(c), "update_team", "team_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "team updated"})
	}
}

func DeleteTeam(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		res, err := db.ExecContext(c.Request.Context(),
			"DELETE FROM teams WHERE team_id = $1", id,
		)
		if err != nil {
			log.Warn().Err(err).Msg("delete team")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}

		logAction(db, username(c), "delete_team", "team_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "team with ID " + strconv.Itoa(id) + " deleted"})
	}
}
