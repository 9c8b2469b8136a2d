package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
)

type fakeCanvasRegistry struct {
	current    *models.Canvas
	currentErr error
}

func (fc *fakeCanvasRegistry) Create(canvas *models.Canvas) (*models.Canvas, error) {
	return canvas, nil
}

func (fc *fakeCanvasRegistry) Update(canvas *models.Canvas) (*models.Canvas, error) {
	return canvas, nil
}

func (fc *fakeCanvasRegistry) GetByID(id uint) (*models.Canvas, error) {
	return fc.current, fc.currentErr
}

func (fc *fakeCanvasRegistry) GetCurrent() (*models.Canvas, error) {
	return fc.current, fc.currentErr
}

type fakeUserStore struct {
	users map[uint]*models.User
}

func (fu *fakeUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := fu.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

func (fu *fakeUserStore) GetByDiscordID(discordID string) (*models.User, error) {
	for _, user := range fu.users {
		if user.DiscordID == discordID {
			return user, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (fu *fakeUserStore) Create(user *models.User) (*models.User, error) {
	return user, nil
}

func (fu *fakeUserStore) Update(user *models.User) error {
	return nil
}

func (fu *fakeUserStore) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, error) {
	return &models.GetUsersResponse{}, nil
}

type fakeBroadcaster struct {
	events       []*models.PlacementEvent
	discordUsers []string
	err          error
}

func (fb *fakeBroadcaster) BroadcastPlacement(event *models.PlacementEvent, discordUser string) error {
	fb.events = append(fb.events, event)
	fb.discordUsers = append(fb.discordUsers, discordUser)
	return fb.err
}

func testCanvas() *models.Canvas {
	canvas := &models.Canvas{
		Width:      300,
		Height:     300,
		DateExpire: time.Now().Add(time.Hour),
	}
	canvas.ID = 1
	return canvas
}

func newTestUser(id uint, moderator, banned bool) *models.User {
	user := &models.User{
		DiscordID: "discord-1",
		Moderator: moderator,
		Banned:    banned,
	}
	user.ID = id
	return user
}

func newPixelServiceForTest(ledger *fakeLedger, users *fakeUserStore, broadcaster *fakeBroadcaster) *PixelService {
	canvasRepo := &fakeCanvasRegistry{current: testCanvas()}
	return NewPixelService(ledger, canvasRepo, users, NewRateLimiterService(ledger, time.Minute), broadcaster)
}

func TestPlacePixelAppendsAndBroadcasts(t *testing.T) {
	ledger := &fakeLedger{}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, false)}}
	broadcaster := &fakeBroadcaster{}
	service := newPixelServiceForTest(ledger, users, broadcaster)

	event, retryAfter, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 5, Y: 7, Color: "#ff0000"})
	require.Empty(t, errors)
	assert.Zero(t, retryAfter)

	require.NotNil(t, event)
	assert.Equal(t, 5, event.X)
	assert.Equal(t, 7, event.Y)
	assert.Equal(t, 0xff0000, event.Color)
	assert.Equal(t, models.ColorWhite, event.PriorColor)

	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, event, broadcaster.events[0])
	assert.Equal(t, "discord-1", broadcaster.discordUsers[0])
}

func TestPlacePixelPriorColorChainsPerCell(t *testing.T) {
	ledger := &fakeLedger{}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, true, false)}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	colors := []string{"ff0000", "00ff00", "0000ff"}
	events := make([]*models.PlacementEvent, 0, len(colors))
	for _, color := range colors {
		event, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 4, Y: 4, Color: color})
		require.Empty(t, errors)
		events = append(events, event)
	}

	// Each placement records exactly the color the cell showed before it.
	assert.Equal(t, models.ColorWhite, events[0].PriorColor)
	assert.Equal(t, events[0].Color, events[1].PriorColor)
	assert.Equal(t, events[1].Color, events[2].PriorColor)

	cells, err := ledger.CurrentCells(1)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 0x0000ff, cells[0].Color)
}

func TestPlacePixelBannedUserWritesNothing(t *testing.T) {
	ledger := &fakeLedger{}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, true)}}
	broadcaster := &fakeBroadcaster{}
	service := newPixelServiceForTest(ledger, users, broadcaster)

	event, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 0, Y: 0, Color: "ff0000"})
	assert.Nil(t, event)
	assert.Contains(t, errors, errs.ErrUserBanned)
	assert.Empty(t, ledger.appended)
	assert.Empty(t, broadcaster.events)
}

func TestPlacePixelRejectsInvalidColorBeforeCooldown(t *testing.T) {
	last := time.Now()
	ledger := &fakeLedger{lastPlacement: &last}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, false)}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	// A malformed color never burns the user's cooldown slot.
	_, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 0, Y: 0, Color: "nope"})
	assert.Contains(t, errors, errs.ErrInvalidHexColor)
	assert.Empty(t, ledger.appended)
}

func TestPlacePixelRateLimitedReturnsRetryAfter(t *testing.T) {
	last := time.Now().Add(-10 * time.Second)
	ledger := &fakeLedger{lastPlacement: &last}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, false)}}
	broadcaster := &fakeBroadcaster{}
	service := newPixelServiceForTest(ledger, users, broadcaster)

	event, retryAfter, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 0, Y: 0, Color: "ff0000"})
	assert.Nil(t, event)
	assert.Contains(t, errors, errs.ErrRateLimited)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.Empty(t, ledger.appended)
	assert.Empty(t, broadcaster.events)
}

func TestPlacePixelModeratorIgnoresCooldown(t *testing.T) {
	last := time.Now()
	ledger := &fakeLedger{lastPlacement: &last}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, true, false)}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	_, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 1, Y: 1, Color: "00ff00"})
	assert.Empty(t, errors)
	assert.Len(t, ledger.appended, 1)
}

func TestPlacePixelOutOfBounds(t *testing.T) {
	ledger := &fakeLedger{}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, false)}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	for _, point := range []struct{ x, y int }{{-1, 0}, {0, -1}, {300, 0}, {0, 300}} {
		_, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: point.x, Y: point.y, Color: "ff0000"})
		assert.Contains(t, errors, errs.ErrPixelOutOfBounds)
	}
	assert.Empty(t, ledger.appended)
}

func TestPlacePixelBroadcastFailureDoesNotFailWrite(t *testing.T) {
	ledger := &fakeLedger{}
	users := &fakeUserStore{users: map[uint]*models.User{1: newTestUser(1, false, false)}}
	broadcaster := &fakeBroadcaster{err: errs.ErrDuplicateConnection}
	service := newPixelServiceForTest(ledger, users, broadcaster)

	event, _, errors := service.PlacePixel(1, &models.SetPixelRequestBody{X: 2, Y: 3, Color: "0000ff"})
	assert.Empty(t, errors)
	assert.NotNil(t, event)
	assert.Len(t, ledger.appended, 1)
}

func TestGetPixelDefaultsToWhite(t *testing.T) {
	ledger := &fakeLedger{currentCellErr: errs.ErrPixelNotFound}
	users := &fakeUserStore{users: map[uint]*models.User{}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	pixel, errors := service.GetPixel(10, 20)
	require.Empty(t, errors)
	assert.Equal(t, 10, pixel.X)
	assert.Equal(t, 20, pixel.Y)
	assert.Equal(t, "#ffffff", pixel.Color)
}

func TestGetPixelReturnsProjectedColor(t *testing.T) {
	ledger := &fakeLedger{currentCell: &models.CellState{CanvasID: 1, X: 10, Y: 20, Color: 0x123456}}
	users := &fakeUserStore{users: map[uint]*models.User{}}
	service := newPixelServiceForTest(ledger, users, &fakeBroadcaster{})

	pixel, errors := service.GetPixel(10, 20)
	require.Empty(t, errors)
	assert.Equal(t, "#123456", pixel.Color)
}

func TestGetPixelOutOfBounds(t *testing.T) {
	service := newPixelServiceForTest(&fakeLedger{}, &fakeUserStore{}, &fakeBroadcaster{})

	_, errors := service.GetPixel(300, 0)
	assert.Contains(t, errors, errs.ErrPixelOutOfBounds)
}
