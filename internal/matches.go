package internal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func ListMatches(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		matches := []Match{}
		err := db.SelectContext(c.Request.Context(), &matches,
			"SELECT match_id, game_code, team_1_id, team_2_id, match_date, result FROM matches ORDER BY match_id ASC",
		)
		if err != nil {
			log.Warn().Err(err).Msg("list matches")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, matches)
	}
}

func CreateMatch(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Team and game references are taken as given, dangling ones
		// included, matching the legacy API.
		var req struct {
			GameCode  *int   `json:"game_code"`
			Team1ID   *int   `json:"team_1_id"`
			Team2ID   *int   `json:"team_2_id"`
			MatchDate string `json:"match_date"`
			Result    string `json:"result"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.GameCode == nil || req.Team1ID == nil || req.Team2ID == nil || req.MatchDate == "" || req.Result == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		var m Match
		err := db.GetContext(c.Request.Context(), &m,
			`INSERT INTO matches (game_code, team_1_id, team_2_id, match_date, result)
			 VALUES ($1,$2,$3,$4,$5)
			 RETURNING match_id, game_code, team_1_id, team_2_id, match_date, result`,
			*req.GameCode, *req.Team1ID, *req.Team2ID, req.MatchDate, req.Result,
		)
		if err != nil {
			log.Warn().Err(err).Msg("create match")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		logAction(db, username(c), "create_match", "match_id="+strconv.Itoa(m.MatchID))
		c.JSON(http.StatusCreated, m)
	}
}

func UpdateMatch(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var req struct {
			GameCode  *int    `json:"game_code"`
			Team1ID   *int    `json:"team_1_id"`
			Team2ID   *int    `json:"team_2_id"`
			MatchDate *string `json:"match_date"`
			Result    *string `json:"result"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		set := map[string]any{}
		if req.GameCode != nil {
			set["game_code"] = *req.GameCode
		}
		if req.Team1ID != nil {
			set["team_1_id"] = *req.Team1ID
		}
		if req.Team2ID != nil {
			set["team_2_id"] = *req.Team2ID
		}
		if req.MatchDate != nil {
			set["match_date"] = *req.MatchDate
		}
		if req.Result != nil {
			set["result"] = *req.Result
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		query, args, err := buildUpdate("matches", "match_id", id, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query"})
			return
		}
		res, err := db.ExecContext(c.Request.Context(), query, args...)
		if err != nil {
			log.Warn().Err(err).Msg("update match")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}

		logAction(db, username(c), "update_match", "match_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "match updated"})
	}
}

func DeleteMatch(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		res, err := db.ExecContext(c.Request.Context(),
			"DELETE FROM matches WHERE match_id = $1", id,
		)
		if err != nil {
			log.Warn().Err(err).Msg("delete match")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}

		logAction(db, username(c), "delete_match", "match_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "match with ID " + strconv.Itoa(id) + " deleted"})
	}
}
