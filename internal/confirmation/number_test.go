package confirmation

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestNumber_Format(t *testing.T) {
	gen := NewGenerator()

	number := gen.Number()

	assert.Regexp(t, regexp.MustCompile(`^KS-[0-9a-z]+-[0-9a-z]{5}$`), number)
}

func TestNumber_EncodesMillisBase36(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	gen := NewGeneratorWithDeps(&fixedTimeProvider{now: now}, 1)

	number := gen.Number()

	expected := "KS-" + strconv.FormatInt(now.UnixMilli(), 36) + "-"
	assert.Contains(t, number, expected)
	assert.Len(t, number, len(expected)+5)
}

func TestNumber_SuffixVariesBetweenCalls(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	gen := NewGeneratorWithDeps(&fixedTimeProvider{now: now}, 42)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[gen.Number()] = struct{}{}
	}

	// При фиксированном времени различие дает только случайный суффикс
	assert.Greater(t, len(seen), 1)
}

func TestNumber_DeterministicWithSameSeed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	gen1 := NewGeneratorWithDeps(&fixedTimeProvider{now: now}, 7)
	gen2 := NewGeneratorWithDeps(&fixedTimeProvider{now: now}, 7)

	assert.Equal(t, gen1.Number(), gen2.Number())
}
