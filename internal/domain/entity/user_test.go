package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.Nil(t, u.Region)
}

func TestUser_AwaitImageAndReset(t *testing.T) {
	u := NewUser(1, 10)
	u.AwaitImage(RegionDescriptor{Name: "mdb001", CenterX: 10, CenterY: 20, Radius: 5})
	require.Equal(t, StateAwaitingImage, u.State)
	require.NotNil(t, u.Region)
	require.Equal(t, 20, u.Region.CenterY)

	u.SetState(StateMainMenu)
	require.Nil(t, u.Region)
}

func TestParseRegionDescriptor(t *testing.T) {
	d, err := ParseRegionDescriptor(" 535 425  197\n")
	require.NoError(t, err)
	require.Equal(t, RegionDescriptor{CenterX: 535, CenterY: 425, Radius: 197}, d)

	d, err = ParseRegionDescriptor("10,20,3")
	require.NoError(t, err)
	require.Equal(t, 3, d.Radius)

	for _, bad := range []string{"", "1 2", "1 2 3 4", "a 2 3", "1 2 -3"} {
		_, err := ParseRegionDescriptor(bad)
		require.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
}
