package redis

import "fmt"

const ns = "rifago:v1"

func KeyRaffleSummary(raffleID string) string {
	return fmt.Sprintf("%s:raffle:%s:summary", ns, raffleID)
}

func KeyDashboard() string {
	return ns + ":dashboard"
}

func KeyPendingSale(saleID string) string {
	return fmt.Sprintf("%s:pending:%s", ns, saleID)
}

// KeyRateLimit is the limiter prefix for one scope; the limiter appends
// the caller id.
func KeyRateLimit(scope string) string {
	return fmt.Sprintf("%s:rl:%s", ns, scope)
}

func ChannelRaffleEvents() string {
	return ns + ":raffles:events"
}
