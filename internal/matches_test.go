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

func matchesRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/matches", ListMatches(db))
	r.POST("/matches", CreateMatch(db))
	r.PUT("/matches/:id", UpdateMatch(db))
	r.DELETE("/matches/:id", DeleteMatch(db))
	return r, mock
}

func TestCreateMatch_Success(t *testing.T) {
	r, mock := matchesRouter(t)

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs(3, 1, 2, "2024-05-10", "2-1").
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "game_code", "team_1_id", "team_2_id", "match_date", "result"}).
			AddRow(11, 3, 1, 2, "2024-05-10", "2-1"))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("", "create_match", "match_id=11").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doRequest(r, http.MethodPost, "/matches", gin.H{
		"game_code": 3, "team_1_id": 1, "team_2_id": 2,
		"match_date": "2024-05-10", "result": "2-1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"match_id":11,"game_code":3,"team_1_id":1,"team_2_id":2,"match_date":"2024-05-10","result":"2-1"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMatch_MissingTeam(t *testing.T) {
	r, mock := matchesRouter(t)

	w := doRequest(r, http.MethodPost, "/matches", gin.H{
		"game_code": 3, "team_1_id": 1,
		"match_date": "2024-05-10", "result": "2-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing required fields")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A zero id is a supplied value, not a missing one.
func TestCreateMatch_ZeroTeamIDAccepted(t *testing.T) {
	r, mock := matchesRouter(t)

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs(3, 0, 2, "2024-05-10", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"match_id", "game_code", "team_1_id", "team_2_id", "match_date", "result"}).
			AddRow(12, 3, 0, 2, "2024-05-10", "pending"))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("", "create_match", "match_id=12").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doRequest(r, http.MethodPost, "/matches", gin.H{
		"game_code": 3, "team_1_id": 0, "team_2_id": 2,
		"match_date": "2024-05-10", "result": "pending",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMatch_Result(t *testing.T) {
	r, mock := matchesRouter(t)

	mock.ExpectExec(`UPDATE matches SET result = \$1 WHERE match_id = \$2`).
		WithArgs("3-0", 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("", "update_match", "match_id=11").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doRequest(r, http.MethodPut, "/matches/11", gin.H{"result": "3-0"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "match updated")
	assert.NoError(t, mock.ExpectationsWereMet())
}
