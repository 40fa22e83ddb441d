package models

// Achievement is a stable badge code stored on a player profile.
// Display names and icons live in the catalog, never in the database.
type Achievement string

const (
	AchievementOneShotWonder Achievement = "one_shot_wonder"
	AchievementHotStreak     Achievement = "hot_streak"
	AchievementVeteran       Achievement = "veteran"
)

// AchievementInfo is the static display config for a badge.
type AchievementInfo struct {
	Code        Achievement `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

var AchievementCatalog = []AchievementInfo{
	{
		Code:        AchievementOneShotWonder,
		Name:        "One-Shot Wonder",
		Description: "Won a game on the very first guess",
		Icon:        "🎯",
	},
	{
		Code:        AchievementHotStreak,
		Name:        "Hot Streak",
		Description: "Won 3 games in a row",
		Icon:        "🔥",
	},
	{
		Code:        AchievementVeteran,
		Name:        "Veteran",
		Description: "Won 10 games",
		Icon:        "🏆",
	},
}

// Info returns the catalog entry for a, or a bare entry for unknown codes
// so stale rows still render.
func (a Achievement) Info() AchievementInfo {
	for _, info := range AchievementCatalog {
		if info.Code == a {
			return info
		}
	}
	return AchievementInfo{Code: a, Name: string(a)}
}

// AchievementList is the set of badges earned by a profile, persisted as a
// JSON column. Order is insertion order; duplicates are never stored.
type AchievementList []Achievement

func (l AchievementList) Has(a Achievement) bool {
	for _, earned := range l {
		if earned == a {
			return true
		}
	}
	return false
}

// Award adds a to the set if absent. Returns true only when newly earned,
// so callers can log or notify exactly once.
func (l *AchievementList) Award(a Achievement) bool {
	if l.Has(a) {
		return false
	}
	*l = append(*l, a)
	return true
}
