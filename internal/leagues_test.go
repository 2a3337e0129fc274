package internal

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaguesRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/leagues", ListLeagues(db))
	r.POST("/leagues", CreateLeague(db))
	r.PUT("/leagues/:id", UpdateLeague(db))
	r.DELETE("/leagues/:id", DeleteLeague(db))
	return r, mock
}

func TestCreateLeague_Success(t *testing.T) {
	r, mock := leaguesRouter(t)

	mock.ExpectQuery("INSERT INTO leagues").
		WithArgs("Premier", "England").
		WillReturnRows(sqlmock.NewRows([]string{"league_id", "league_name", "country"}).
			AddRow(2, "Premier", "England"))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("", "create_league", "league_id=2").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doRequest(r, http.MethodPost, "/leagues", gin.H{
		"league_name": "Premier", "country": "England",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"league_id":2,"league_name":"Premier","country":"England"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLeague_Success(t *testing.T) {
	r, mock := leaguesRouter(t)

	mock.ExpectExec(`DELETE FROM leagues WHERE league_id = \$1`).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("", "delete_league", "league_id=2").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doRequest(r, http.MethodDelete, "/leagues/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "league with ID 2 deleted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLeague_NoFields(t *testing.T) {
	r, mock := leaguesRouter(t)

	w := doRequest(r, http.MethodPut, "/leagues/2", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no updates provided")
	assert.NoError(t, mock.ExpectationsWereMet())
}
