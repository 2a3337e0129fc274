package internal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func ListPlayers(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		players := []Player{}
		err := db.SelectContext(c.Request.Context(), &players,
			"SELECT player_id, first_name, last_name, gender, address FROM players ORDER BY player_id ASC",
		)
		if err != nil {
			log.Warn().Err(err).Msg("list players")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, players)
	}
}

func CreatePlayer(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Gender    string `json:"gender"`
			Address   string `json:"address"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		if req.FirstName == "" || req.LastName == "" || req.Gender == "" || req.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		var p Player
		err := db.GetContext(c.Request.Context(), &p,
			`INSERT INTO players (first_name, last_name, gender, address)
			 VALUES ($1,$2,$3,$4)
			 RETURNING player_id, first_name, last_name, gender, address`,
			req.FirstName, req.LastName, req.Gender, req.Address,
		)
		if err != nil {
			log.Warn().Err(err).Msg("create player")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}

		logAction(db, username(c), "create_player", "player_id="+strconv.Itoa(p.PlayerID))
		c.JSON(http.StatusCreated, p)
	}
}

func UpdatePlayer(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		// Pointer fields: nil means the key was absent. A supplied empty
		// string is still an update.
		var req struct {
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
			Gender    *string `json:"gender"`
			Address   *string `json:"address"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}

		set := map[string]any{}
		if req.FirstName != nil {
			set["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			set["last_name"] = *req.LastName
		}
		if req.Gender != nil {
			set["gender"] = *req.Gender
		}
		if req.Address != nil {
			set["address"] = *req.Address
		}
		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		query, args, err := buildUpdate("players", "player_id", id, set)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query"})
			return
		}
		res, err := db.ExecContext(c.Request.Context(), query, args...)
		if err != nil {
			log.Warn().Err(err).Msg("update player")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}

		logAction(db, username(c), "update_player", "player_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "player updated"})
	}
}

func DeletePlayer(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		res, err := db.ExecContext(c.Request.Context(),
			"DELETE FROM players WHERE player_id = $1", id,
		)
		if err != nil {
			log.Warn().Err(err).Msg("delete player")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
			return
		}

		logAction(db, username(c), "delete_player", "player_id="+strconv.Itoa(id))
		c.JSON(http.StatusOK, gin.H{"message": "player with ID " + strconv.Itoa(id) + " deleted"})
	}
}
