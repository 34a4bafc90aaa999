package progression

// PointsPerCoin is the exchange rate from points to Crumble Coins.
const PointsPerCoin = 150

// CrumbleCoins converts points to coins, truncating: 149 points is 0 coins.
func CrumbleCoins(points int) int {
	return nonNegative(points) / PointsPerCoin
}
