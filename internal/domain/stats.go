package domain

// SelectionStat - сколько сохраненных составов сезона содержат игрока
type SelectionStat struct {
	PlayerID int      `json:"player_id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Count    int      `json:"count"`
}

type FormationStat struct {
	Formation string `json:"formation"`
	Count     int    `json:"count"`
}
