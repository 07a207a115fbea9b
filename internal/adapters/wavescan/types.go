package wavescan

// --- Match check ---
// Todo es opcional en el wire: punteros para distinguir "no vino" de cero.
type MatchCheck struct {
	Success             bool                 `json:"success"`
	GameServiceResponse *GameServiceResponse `json:"game_service_response"`
}

type GameServiceResponse struct {
	SpectreMatch     *SpectreMatch `json:"spectre_match"`
	SpectreMatchTeam []SpectreTeam `json:"spectre_match_team"`
}

type SpectreMatch struct {
	QueueGameMode string `json:"queue_game_mode"`
	QueueGameMap  string `json:"queue_game_map"`
	Region        string `json:"region"`
}

type SpectreTeam struct {
	Players []SpectrePlayer `json:"players"`
}

type SpectrePlayer struct {
	SavedPlayerName string `json:"saved_player_name"`
	NumKills        *int   `json:"num_kills"`
	NumDeaths       *int   `json:"num_deaths"`
}
