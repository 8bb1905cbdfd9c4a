package ids

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ULIDGen_Monotonic(t *testing.T) {
	g := NewULIDGen()
	prev := ""
	for i := 0; i < 1000; i++ {
		id, err := g.New()
		require.NoError(t, err)
		_, err = ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func Test_FixedClock(t *testing.T) {
	c := &FixedClock{T: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	c.Advance(time.Minute)
	assert.Equal(t, time.Date(2026, 4, 1, 9, 1, 0, 0, time.UTC), c.Now())
}
