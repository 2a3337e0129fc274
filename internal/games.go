package internal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func ListGames(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		games := []Game{}
		err := db.SelectContext(c.Request.Context(), &games,
			"SELECT game_code, game_name, game_description FROM games ORDER BY game_code ASC",
		)
		if err != nil {
			log.Warn().Err(err).Msg("list games")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

func CreateGame(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			GameName        string `json:"game_name"`
			GameDescription string `json:"game_description"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.GameName == "" || req.GameDescription == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		var g Game
		err := db.GetContext(c.Request.Context(), &g,
			`INSERT INTO games (game_name, game_description)
			 VALUES ($1,$2)
			 RETURNING game_code, game_name, game_description`,
			req.GameName, req.GameDescription,
		)
		if err != nil {
			log.Warn().Err(err).Msg("create game")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		logAction(db, username(c), "create_game", "game_code="+strconv.Itoa(g.GameCode))
		c.JSON(http.StatusCreated, g)
	}
}

func UpdateGame(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var req struct {
			GameName        *string `json:"game_name"`
			GameDescription *string `json:"game_description"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		set := map[string]any{}
		if req.GameName != nil {
			set["game_name"] = *req.GameName
		}
		if req.GameDescription != nil {
			set["game_description"] = *req.GameDescription
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		query, args, err := buildUpdate("games", "game_code", id, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query"})
			return
		}
		res, err := db.ExecContext(c.Request.Context(), query, args...)
		if err != nil {
			log.Warn().Err(err).Msg("update game")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}

		logAction(db, username(c), "update_game", "game_code="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "game updated"})
	}
}

func DeleteGame(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		res, err := db.ExecContext(c.Request.Context(),
			"DELETE FROM games WHERE game_code = $1", id,
		)
		if err != nil {
			log.Warn().Err(err).Msg("delete game")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}

		logAction(db, username(c), "delete_game", "game_code="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "game with code " + strconv.Itoa(id) + " deleted"})
	}
}
