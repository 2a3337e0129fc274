package internal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func ListLeagues(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		leagues := []League{}
		err := db.SelectContext(c.Request.Context(), &leagues,
			"SELECT league_id, league_name, country FROM leagues ORDER BY league_id ASC",
		)
		if err != nil {
			log.Warn().Err(err).Msg("list leagues")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, leagues)
	}
}

func CreateLeague(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			LeagueName string `json:"league_name"`
			Country    string `json:"country"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.LeagueName == "" || req.Country == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		var l League
		err := db.GetContext(c.Request.Context(), &l,
			`INSERT INTO leagues (league_name, country)
			 VALUES ($1,$2)
			 RETURNING league_id, league_name, country`,
			req.LeagueName, req.Country,
		)
		if err != nil {
			log.Warn().Err(err).Msg("create league")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		logAction(db, username(c), "create_league", "league_id="+strconv.Itoa(l.LeagueID))
		c.JSON(http.StatusCreated, l)
	}
}

func UpdateLeague(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var req struct {
			LeagueName *string `json:"league_name"`
			Country    *string `json:"country"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		set := map[string]any{}
		if req.LeagueName != nil {
			set["league_name"] = *req.LeagueName
		}
		if req.Country != nil {
			set["country"] = *req.Country
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		query, args, err := buildUpdate("leagues", "league_id", id, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query"})
			return
		}
		res, err := db.ExecContext(c.Request.Context(), query, args...)
		if err != nil {
			log.Warn().Err(err).Msg("update league")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "league not found"})
			return
		}

		logAction(db, username(c), "update_league", "league_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "league updated"})
	}
}

func DeleteLeague(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		res, err := db.ExecContext(c.Request.Context(),
			"DELETE FROM leagues WHERE league_id = $1", id,
		)
		if err != nil {
			log.Warn().Err(err).Msg("delete league")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "league not found"})
			return
		}

		logAction(db, username(c), "delete_league", "league_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "league with ID " + strconv.Itoa(id) + " deleted"})
	}
}
