package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalski/cycling-events-api/internal/models"
	"github.com/mkowalski/cycling-events-api/internal/testutil"
)

func TestAvailability(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		count int
		want  int
	}{
		{name: "open spots", limit: 5, count: 2, want: 3},
		{name: "full", limit: 2, count: 2, want: 0},
		{name: "over limit clamps to zero", limit: 1, count: 3, want: 0},
		{name: "zero limit", limit: 0, count: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &models.Event{ID: uuid.New(), Limit: tt.limit}
			assert.Equal(t, tt.want, Availability(event, tt.count))
		})
	}
}

func TestSignUpFillsToLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "sunday race", 2)

	u1, p1 := testutil.CreateUser(t, db, "rider1")
	u2, p2 := testutil.CreateUser(t, db, "rider2")
	u3, _ := testutil.CreateUser(t, db, "rider3")

	require.NoError(t, reg.SignUp(ctx, event.ID, u1.ID))
	count, err := reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, Availability(event, count))

	require.NoError(t, reg.SignUp(ctx, event.ID, u2.ID))
	count, err = reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, Availability(event, count))

	err = reg.SignUp(ctx, event.ID, u3.ID)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	participants, err := reg.Participants(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	ids := []uuid.UUID{participants[0].ID, participants[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{p1.ID, p2.ID}, ids)
}

func TestSignUpDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "morning training", 1)

	u1, _ := testutil.CreateUser(t, db, "rider1")
	require.NoError(t, reg.SignUp(ctx, event.ID, u1.ID))

	err := reg.SignUp(ctx, event.ID, u1.ID)
	assert.ErrorIs(t, err, ErrAlreadySignedUp)

	count, err := reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSignUpEventNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)

	u1, _ := testutil.CreateUser(t, db, "rider1")

	err := reg.SignUp(context.Background(), uuid.New(), u1.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSignUpProfileNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "coffee ride", 5)

	err := reg.SignUp(ctx, event.ID, uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestResignIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "gravel weekend", 5)

	u1, _ := testutil.CreateUser(t, db, "rider1")
	require.NoError(t, reg.SignUp(ctx, event.ID, u1.ID))

	require.NoError(t, reg.Resign(ctx, event.ID, u1.ID))
	count, err := reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Removing an absent member is not an error.
	require.NoError(t, reg.Resign(ctx, event.ID, u1.ID))
	count, err = reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSignUpResignRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "spring classic", 10)

	u1, _ := testutil.CreateUser(t, db, "rider1")
	u2, _ := testutil.CreateUser(t, db, "rider2")
	require.NoError(t, reg.SignUp(ctx, event.ID, u1.ID))

	before, err := reg.Participants(ctx, event.ID)
	require.NoError(t, err)

	require.NoError(t, reg.SignUp(ctx, event.ID, u2.ID))
	require.NoError(t, reg.Resign(ctx, event.ID, u2.ID))

	after, err := reg.Participants(ctx, event.ID)
	require.NoError(t, err)

	beforeIDs := make([]uuid.UUID, 0, len(before))
	for _, p := range before {
		beforeIDs = append(beforeIDs, p.ID)
	}
	afterIDs := make([]uuid.UUID, 0, len(after))
	for _, p := range after {
		afterIDs = append(afterIDs, p.ID)
	}
	assert.ElementsMatch(t, beforeIDs, afterIDs)
}

func TestListEventsOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	testutil.CreateEvent(t, db, creator.ID, "testb", 5)
	testutil.CreateEvent(t, db, creator.ID, "testa", 5)

	events, err := reg.ListEvents(ctx, EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "testa", events[0].EventName)
	assert.Equal(t, "testb", events[1].EventName)
}

func TestListEventsFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	road := testutil.CreateEvent(t, db, creator.ID, "road race", 5)

	gravel := testutil.CreateEvent(t, db, creator.ID, "gravel ride", 5)
	gravel.Category = models.CategoryGravel
	gravel.Region = models.RegionPomorskie
	gravel.EventType = models.EventTypeTraining
	require.NoError(t, db.Save(gravel).Error)

	region := models.RegionPomorskie
	events, err := reg.ListEvents(ctx, EventFilter{Region: &region})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, gravel.ID, events[0].ID)

	category := models.CategoryRoad
	eventType := models.EventTypeRace
	regionAll := models.RegionMalopolskie
	events, err = reg.ListEvents(ctx, EventFilter{Region: &regionAll, Category: &category, EventType: &eventType})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, road.ID, events[0].ID)

	events, err = reg.ListEvents(ctx, EventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestListMyEvents(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	u1, _ := testutil.CreateUser(t, db, "rider1")
	u2, _ := testutil.CreateUser(t, db, "rider2")

	mine := testutil.CreateEvent(t, db, u1.ID, "my own event", 5)
	other := testutil.CreateEvent(t, db, u2.ID, "someone elses event", 5)
	require.NoError(t, reg.SignUp(ctx, other.ID, u1.ID))

	created, signedUp, err := reg.ListMyEvents(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, mine.ID, created[0].ID)
	require.Len(t, signedUp, 1)
	assert.Equal(t, other.ID, signedUp[0].ID)
}

func TestConcurrentSignUpSingleSlot(t *testing.T) {
	db := testutil.NewTestDB(t)
	reg := New(db)
	ctx := context.Background()

	creator, _ := testutil.CreateUser(t, db, "creator")
	event := testutil.CreateEvent(t, db, creator.ID, "last slot race", 1)

	const riders = 8
	userIDs := make([]uuid.UUID, riders)
	for i := 0; i < riders; i++ {
		user, _ := testutil.CreateUser(t, db, "rider"+string(rune('a'+i)))
		userIDs[i] = user.ID
	}

	var wg sync.WaitGroup
	results := make(chan error, riders)
	for i := 0; i < riders; i++ {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			results <- reg.SignUp(ctx, event.ID, userID)
		}(userIDs[i])
	}
	wg.Wait()
	close(results)

	successes, rejections := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case err == ErrCapacityExceeded:
			rejections++
		default:
			t.Fatalf("unexpected signup error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, riders-1, rejections)

	count, err := reg.ParticipantCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
