package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	day := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))

	assert.Equal(t, "analytics:trending:h-a", TrendingKey("h-a"))
	assert.Equal(t, "analytics:daily:2024-03-10:h-a", DailyKey(day, "h-a"))
	assert.Equal(t, "dashboard:h-a", DashboardKey("h-a"))
}
