package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knows-studios/KNS-BookingService/internal/domain"
	"github.com/knows-studios/KNS-BookingService/pkg/types"
)

func TestDefault_ContainsDefaultPackage(t *testing.T) {
	c := Default()

	pkg, ok := c.PackageByID(domain.DefaultPackageID)
	require.True(t, ok)
	assert.Equal(t, "Full-Day Session", pkg.Name)
	assert.Equal(t, int64(450), pkg.BasePrice)
}

func TestDefault_Lookups(t *testing.T) {
	c := Default()

	addOn, ok := c.AddOnByID("premium-lighting")
	require.True(t, ok)
	assert.Equal(t, int64(75), addOn.Price)

	start, _ := types.NewTimeStringFromString("14:00")
	slot, ok := c.SlotByStartTime(start)
	require.True(t, ok)
	assert.True(t, slot.Available)

	_, ok = c.PackageByID("no-such-package")
	assert.False(t, ok)
}

func TestDefault_MatchesShippedCatalogFile(t *testing.T) {
	fromFile, err := LoadFile("../../catalog.toml")
	require.NoError(t, err)

	compiled := Default()

	require.Len(t, compiled.Packages(), len(fromFile.Packages()))
	for _, pkg := range fromFile.Packages() {
		got, ok := compiled.PackageByID(pkg.ID)
		require.True(t, ok, "package %s missing from Default()", pkg.ID)
		assert.Equal(t, pkg.Name, got.Name)
		assert.Equal(t, pkg.Duration, got.Duration)
		assert.Equal(t, pkg.BasePrice, got.BasePrice)
	}

	require.Len(t, compiled.AddOns(), len(fromFile.AddOns()))
	for _, addOn := range fromFile.AddOns() {
		got, ok := compiled.AddOnByID(addOn.ID)
		require.True(t, ok, "add-on %s missing from Default()", addOn.ID)
		assert.Equal(t, addOn.Name, got.Name)
		assert.Equal(t, addOn.Price, got.Price)
	}
}

func TestDefault_SlotAvailabilityMix(t *testing.T) {
	c := Default()

	available := 0
	for _, slot := range c.TimeSlots() {
		if slot.Available {
			available++
		}
	}

	assert.Equal(t, 6, len(c.TimeSlots()))
	assert.Equal(t, 4, available)
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeCatalogFile(t, `
[[packages]]
id = "full-day"
name = "Full-Day Session"
duration = "8 hours"
base_price = 450

[[packages]]
id = "2-hour"
name = "2-Hour Session"
duration = "2 hours"
base_price = 150

[[addons]]
id = "backdrop-pack"
name = "Backdrop Pack"
price = 45

[[timeslots]]
start = "10:00"
available = true
`)

	c, err := LoadFile(path)
	require.NoError(t, err)

	assert.Len(t, c.Packages(), 2)
	assert.Len(t, c.AddOns(), 1)
	assert.Len(t, c.TimeSlots(), 1)
}

func TestLoadFile_MissingDefaultPackage(t *testing.T) {
	path := writeCatalogFile(t, `
[[packages]]
id = "2-hour"
name = "2-Hour Session"
base_price = 150
`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile_DuplicatePackageID(t *testing.T) {
	path := writeCatalogFile(t, `
[[packages]]
id = "full-day"
name = "Full-Day Session"
base_price = 450

[[packages]]
id = "full-day"
name = "Copy"
base_price = 500
`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile_NegativePrice(t *testing.T) {
	path := writeCatalogFile(t, `
[[packages]]
id = "full-day"
name = "Full-Day Session"
base_price = -1
`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile_InvalidSlotTime(t *testing.T) {
	path := writeCatalogFile(t, `
[[packages]]
id = "full-day"
name = "Full-Day Session"
base_price = 450

[[timeslots]]
start = "25:99"
available = true
`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrLoadFile)
}
