package consts

const (
	PointsBalanceKey = "points:balance:"
	RewardCatalogKey = "reward:catalog"
)

const (
	ClaimLockKey = "social:claim:lock:"
)
