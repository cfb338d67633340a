package fortnite

// PlayerStats is the normalized snapshot of one player's aggregate
// Battle Royale statistics. Instances are created only by a successful
// lookup and are immutable afterwards. The JSON tags match the shape the
// snapshots are persisted in.
type PlayerStats struct {
	Username      string  `json:"username"`
	Level         int     `json:"level"`
	Kills         int     `json:"kills"`
	Wins          int     `json:"wins"`
	KD            float64 `json:"kd"`
	MatchesPlayed int     `json:"matchesPlayed"`
	WinRate       float64 `json:"winRate"`
}

// statsResponse mirrors the relevant parts of the fortnite-api.com
// /v2/stats/br/v2 payload. Every numeric field is optional upstream; the
// zero value is the documented default for absent stats.
type statsResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Data   *struct {
		Account struct {
			Name string `json:"name"`
		} `json:"account"`
		BattlePass *struct {
			Level int `json:"level"`
		} `json:"battlePass"`
		Stats struct {
			All struct {
				Overall struct {
					Kills   int     `json:"kills"`
					Wins    int     `json:"wins"`
					KD      float64 `json:"kd"`
					Matches int     `json:"matches"`
					WinRate float64 `json:"winRate"`
				} `json:"overall"`
			} `json:"all"`
		} `json:"stats"`
	} `json:"data"`
}
