package constants

const (
	ListExclusionNames = `
	SELECT character_name FROM exclusion_entries WHERE category_type = $1 AND category_id = $2
	`

	ListExclusions = `
	SELECT category_type, category_id, character_name FROM exclusion_entries
	WHERE category_type = $1 AND category_id = $2
	`

	InsertExclusion = `
	INSERT INTO exclusion_entries (category_type, category_id, character_name)
	VALUES ($1, $2, $3)
	ON CONFLICT (category_type, category_id, character_name) DO NOTHING
	`

	DeleteExclusion = `
	DELETE FROM exclusion_entries WHERE category_type = $1 AND category_id = $2 AND character_name = $3
	`
)
