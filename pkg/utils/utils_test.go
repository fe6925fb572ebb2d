package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida", func(t *testing.T) {
		date, err := ParseDate("2024-03-02")

		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("Vazia", func(t *testing.T) {
		date, err := ParseDate("  ")

		require.NoError(t, err)
		assert.Nil(t, date)
	})

	for _, input := range []string{"2024-02-30", "02/03/2024", "2024-03-02T10:00:00Z", "ontem"} {
		t.Run("Inválida "+input, func(t *testing.T) {
			date, err := ParseDate(input)

			assert.Error(t, err)
			assert.Nil(t, date)
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	got := StartOfDay(time.Date(2024, 3, 2, 23, 59, 1, 5, loc))

	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, loc), got)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)

		assert.Len(t, id, IDLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(characters, r))
		}
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 50)
}
