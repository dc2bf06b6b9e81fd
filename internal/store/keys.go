package store

// Persisted keys
const (
	KeyName       = "hippoName"
	KeyGender     = "hippoGender"
	KeyAge        = "hippoAge"
	KeyStats      = "hippoStats"
	KeyOutfit     = "hippoOutfit"
	KeyCoins      = "hippoCoins"
	KeyUnlocked   = "unlockedItems"
	KeyCreated    = "hasCreatedHippo"
	KeyFeedCount  = "hippoFeedCount"
	KeyCleanCount = "hippoCleanCount"
	KeyPlayCount  = "hippoPlayCount"
	KeySleepCount = "hippoSleepCount"
	KeyWaterCount = "hippoWaterCount"
	KeyGameCount  = "hippoGameCount"
	KeyID         = "hippoId"
	KeyCreatedAt  = "hippoCreatedAt"
	createdMarker = "true"
)

// AllKeys lists every key the store writes. Reset removes all of them.
var AllKeys = []string{
	KeyName,
	KeyGender,
	KeyAge,
	KeyStats,
	KeyOutfit,
	KeyCoins,
	KeyUnlocked,
	KeyCreated,
	KeyFeedCount,
	KeyCleanCount,
	KeyPlayCount,
	KeySleepCount,
	KeyWaterCount,
	KeyGameCount,
	KeyID,
	KeyCreatedAt,
}
