package services_test

import (
	"testing"
	"time"

	"api/services"
	"api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRsvpAssignsGeneratedFields(t *testing.T) {
	testutil.SetupTestDB(t)

	start := time.Now().Add(-time.Second)
	rsvp, err := services.CreateRsvp("Ocean", 4)
	end := time.Now().Add(time.Second)

	require.NoError(t, err)
	assert.NotEmpty(t, rsvp.ID)
	assert.Equal(t, "Ocean", rsvp.Name)
	assert.Equal(t, 4, rsvp.Attendees)
	assert.True(t, rsvp.CreatedAt.After(start) && rsvp.CreatedAt.Before(end))
}

func TestListRsvpsReturnsAllRecords(t *testing.T) {
	testutil.SetupTestDB(t)

	first, err := services.CreateRsvp("Ocean", 4)
	require.NoError(t, err)
	second, err := services.CreateRsvp("River", 1)
	require.NoError(t, err)

	rsvps, err := services.ListRsvps()
	require.NoError(t, err)
	require.Len(t, rsvps, 2)

	ids := []string{rsvps[0].ID, rsvps[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestAppSettingsRoundTrip(t *testing.T) {
	testutil.SetupTestDB(t)

	_, ok, err := services.GetAppSetting("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, services.SetAppSetting("greeting", "hello"))

	value, ok, err := services.GetAppSetting("greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", value)

	// Overwrites are last-writer-wins
	require.NoError(t, services.SetAppSetting("greeting", "howdy"))
	value, _, err = services.GetAppSetting("greeting")
	require.NoError(t, err)
	assert.Equal(t, "howdy", value)
}
