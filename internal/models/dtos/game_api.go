package dtos

// Character is one in-game persona as returned by the game-world API.
type Character struct {
	CharacterID   int    `json:"character_id"`
	CharacterName string `json:"character_name"`
	Rank          int    `json:"rank"`
	RankName      string `json:"rank_name"`
	LastOnline    string `json:"last_online"`
	LastDuty      string `json:"last_duty"`
}

// FactionRosterResponse is the payload of GET /faction/{id}
type FactionRosterResponse struct {
	Data struct {
		Members []Character `json:"members"`
	} `json:"data"`
}

// AbasRecord is one per-character weekly activity score.
// Scores arrive as decimal strings and are kept that way end to end.
type AbasRecord struct {
	CharacterID int    `json:"character_id"`
	FactionID   int    `json:"faction_id"`
	Score       string `json:"score"`
	TotalScore  string `json:"total_score"`
}

// AbasResponse is the payload of GET /faction/{id}/abas
type AbasResponse struct {
	Data []AbasRecord `json:"data"`
}
