package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PlayerResponse struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Team     string         `json:"team"`
	Price    float64        `json:"price"`
	Extra    map[string]any `json:"extra,omitempty"`
}

type PlayerListResponse struct {
	Players []PlayerResponse `json:"players"`
	Total   int              `json:"total"`
}

type SlotResponse struct {
	Index    int             `json:"index"`
	Position string          `json:"position"`
	Player   *PlayerResponse `json:"player"`
}

type SquadResponse struct {
	SessionID string            `json:"session_id"`
	Formation string            `json:"formation"`
	Season    string            `json:"season"`
	Budget    float64           `json:"budget"`
	Lineup    []SlotResponse    `json:"lineup"`
	Bench     []*PlayerResponse `json:"bench"`
	Version   int               `json:"version"`
	CreatedAt *string           `json:"createdAt,omitempty"`
	UpdatedAt *string           `json:"updatedAt,omitempty"`
}

type CreateSquadRequest struct {
	Season    string   `json:"season"`
	Budget    *float64 `json:"budget"`
	Formation string   `json:"formation"`
}

type PlayerIDRequest struct {
	PlayerID int `json:"player_id"`
}

type ChangeFormationRequest struct {
	Formation string `json:"formation"`
	Mode      string `json:"mode"`
}

type ReshuffleResponse struct {
	Benched []PlayerResponse `json:"benched"`
	Dropped []PlayerResponse `json:"dropped"`
}

type ChangeFormationResponse struct {
	Squad     SquadResponse     `json:"squad"`
	Reshuffle ReshuffleResponse `json:"reshuffle"`
}

type SummaryResponse struct {
	Value             float64         `json:"value"`
	InBank            float64         `json:"in_bank"`
	Budget            float64         `json:"budget"`
	OverBudget        bool            `json:"over_budget"`
	PlayerCount       int             `json:"player_count"`
	ByPosition        map[string]int  `json:"by_position"`
	ClubCounts        map[string]int  `json:"club_counts"`
	ClubLimitBreaches []string        `json:"club_limit_breaches"`
	MVP               *PlayerResponse `json:"mvp,omitempty"`
}

type OptimizeRequest struct {
	Horizon        int   `json:"horizon"`
	FreeTransfers  int   `json:"free_transfers"`
	Candidate      int   `json:"candidate"`
	ExcludePlayers []int `json:"exclude_players"`
	LockPlayers    []int `json:"lock_players"`
}

type OptimizeResponse struct {
	Squad      SquadResponse `json:"squad"`
	Candidate  int           `json:"candidate"`
	Candidates int           `json:"candidates"`
	TotalCost  float64       `json:"total_cost"`
	TotalScore float64       `json:"total_score"`
}

type SampleResponse struct {
	Squad    SquadResponse `json:"squad"`
	Assigned int           `json:"assigned"`
	Benched  int           `json:"benched"`
	Skipped  int           `json:"skipped"`
}

type FormationResponse struct {
	ID  string `json:"id"`
	DEF int    `json:"def"`
	MID int    `json:"mid"`
	FWD int    `json:"fwd"`
}

type SelectionStatResponse struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Count    int    `json:"count"`
}

type FormationStatResponse struct {
	Formation string `json:"formation"`
	Count     int    `json:"count"`
}

type SelectionStatsResponse struct {
	Season     string                  `json:"season"`
	Selections []SelectionStatResponse `json:"selections"`
}

type FormationStatsResponse struct {
	Season     string                  `json:"season"`
	Formations []FormationStatResponse `json:"formations"`
}
