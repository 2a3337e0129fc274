package internal

type Player struct {
	PlayerID  int    `db:"player_id" json:"player_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Gender    string `db:"gender" json:"gender"`
	Address   string `db:"address" json:"address"`
}

type Game struct {
	GameCode        int    `db:"game_code" json:"game_code"`
	GameName        string `db:"game_name" json:"game_name"`
	GameDescription string `db:"game_description" json:"game_description"`
}

type League struct {
	LeagueID   int    `db:"league_id" json:"league_id"`
	LeagueName string `db:"league_name" json:"league_name"`
	Country    string `db:"country" json:"country"`
}

type Team struct {
	TeamID            int    `db:"team_id" json:"team_id"`
	TeamName          string `db:"team_name" json:"team_name"`
	LeagueID          *int   `db:"league_id" json:"league_id,omitempty"`
	CreatedByPlayerID *int   `db:"created_by_player_id" json:"created_by_player_id,omitempty"`
	DateCreated       string `db:"date_created" json:"date_created"`
}

type Match struct {
	MatchID   int    `db:"match_id" json:"match_id"`
	GameCode  int    `db:"game_code" json:"game_code"`
	Team1ID   int    `db:"team_1_id" json:"team_1_id"`
	Team2ID   int    `db:"team_2_id" json:"team_2_id"`
	MatchDate string `db:"match_date" json:"match_date"`
	Result    string `db:"result" json:"result"`
}
