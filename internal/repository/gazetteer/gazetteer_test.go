package gazetteer_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korea-weather-service/internal/domain"
	"github.com/korea-weather-service/internal/repository/gazetteer"
)

func TestGazetteer_Lookup(t *testing.T) {
	g := gazetteer.New()

	t.Run("exact match returns mapped value", func(t *testing.T) {
		canonical, ok := g.Lookup("강남구")
		require.True(t, ok)
		assert.Equal(t, "Gangnam-gu, Seoul", canonical)

		canonical, ok = g.Lookup("서울")
		require.True(t, ok)
		assert.Equal(t, "Seoul", canonical)

		canonical, ok = g.Lookup("홍대")
		require.True(t, ok)
		assert.Equal(t, "Hongdae, Mapo-gu, Seoul", canonical)
	})

	t.Run("duplicated key resolves to last merged table", func(t *testing.T) {
		// 중구 exists in Seoul, Busan and Incheon; Incheon is merged
		// last and overwrites the others in the union.
		canonical, ok := g.Lookup("중구")
		require.True(t, ok)
		assert.Equal(t, "Jung-gu, Incheon", canonical)
	})

	t.Run("substring of a single key", func(t *testing.T) {
		canonical, ok := g.Lookup("해운대")
		require.True(t, ok)
		assert.Equal(t, "Haeundae-gu, Busan", canonical)
	})

	t.Run("substring of multiple keys prefers shortest", func(t *testing.T) {
		// 울 is contained in 서울 (2 runes), 서울특별시 (5), 울산 (2)
		// and 울산광역시 (5); the shortest key wins and ties keep table
		// order, so 서울 is the match.
		canonical, ok := g.Lookup("울")
		require.True(t, ok)
		assert.Equal(t, "Seoul", canonical)

		// 구 is contained in every gu-level district key (강남구, 중구,
		// ...) and in 2-rune city keys; a 2-rune key must beat 강남구,
		// and the first 2-rune key in merge order is 구리.
		canonical, ok = g.Lookup("구")
		require.True(t, ok)
		assert.Equal(t, "Guri", canonical)
	})

	t.Run("no match returns false, not an error", func(t *testing.T) {
		_, ok := g.Lookup("doesnotexist123")
		assert.False(t, ok)
	})
}

func TestGazetteer_Suggest(t *testing.T) {
	g := gazetteer.New()

	t.Run("korean substring match, shortest first", func(t *testing.T) {
		results := g.Suggest("강남", 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "강남구", results[0].KoreanName)
		assert.Equal(t, "Gangnam-gu, Seoul", results[0].Canonical)
		assert.Equal(t, domain.OriginSeoulDistrict, results[0].Origin)
	})

	t.Run("latin substring match is case-insensitive", func(t *testing.T) {
		results := g.Suggest("gangnam", 20)
		require.NotEmpty(t, results)
		for _, e := range results {
			assert.Contains(t, e.Canonical, "Gangnam")
		}
	})

	t.Run("ordered by ascending korean name length", func(t *testing.T) {
		results := g.Suggest("구", 50)
		require.NotEmpty(t, results)
		for i := 1; i < len(results); i++ {
			prev := utf8.RuneCountInString(results[i-1].KoreanName)
			cur := utf8.RuneCountInString(results[i].KoreanName)
			assert.LessOrEqual(t, prev, cur)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		results := g.Suggest("구", 3)
		assert.Len(t, results, 3)
	})

	t.Run("deterministic for a fixed snapshot", func(t *testing.T) {
		first := g.Suggest("동", 25)
		second := g.Suggest("동", 25)
		assert.Equal(t, first, second)
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		assert.Empty(t, g.Suggest("", 10))
	})
}

func TestGazetteer_Popular(t *testing.T) {
	g := gazetteer.New()

	popular := g.Popular()
	require.Len(t, popular, 20)
	assert.Equal(t, "서울", popular[0])

	// The returned slice is a copy; mutating it must not leak into the
	// shared snapshot.
	popular[0] = "mutated"
	assert.Equal(t, "서울", g.Popular()[0])
}
