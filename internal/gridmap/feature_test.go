package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolboxCoversEveryType(t *testing.T) {
	floors := map[FloorType]bool{}
	walls := map[WallType]bool{}
	objects := map[ObjectType]bool{}
	for _, f := range Toolbox() {
		switch f := f.(type) {
		case FloorFeature:
			floors[f.Type] = true
		case WallFeature:
			walls[f.Type] = true
		case ObjectFeature:
			objects[f.Type] = true
		}
	}
	assert.Len(t, floors, len(FloorTypes()))
	assert.Len(t, walls, len(WallTypes()))
	assert.Len(t, objects, len(ObjectTypes()))
	assert.Equal(t, FloorFeature{FloorOpen}, Toolbox()[0])
}

func TestParseFeatureRoundTrip(t *testing.T) {
	for _, f := range Toolbox() {
		got, err := ParseFeature(f.String())
		require.NoError(t, err, f.String())
		assert.Equal(t, f, got)
	}
}

func TestParseFeature(t *testing.T) {
	got, err := ParseFeature("  Wall:Secret-Door ")
	require.NoError(t, err)
	assert.Equal(t, WallFeature{WallSecretDoor}, got)

	for _, bad := range []string{"", "water", "floor:lava", "roof:open", "object:"} {
		_, err := ParseFeature(bad)
		assert.Error(t, err, bad)
	}
}
