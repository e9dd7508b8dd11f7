package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/matchday"
	matchdaymock "github.com/riskibarqy/fantasy-waterpolo/internal/mocks/domain/matchday"
	rosterhistorymock "github.com/riskibarqy/fantasy-waterpolo/internal/mocks/domain/rosterhistory"
)

func TestMatchDayService_StartAnyPolicySkipsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	matchDayRepo := matchdaymock.NewRepository(t)
	historyRepo := rosterhistorymock.NewRepository(t)
	item := matchday.MatchDay{ID: "md1", Title: "Round 1", StartTime: testBase, EndTime: testBase.Add(time.Hour)}

	matchDayRepo.
		On("GetByID", mock.Anything, "md1").
		Return(item, true, nil).
		Once()
	historyRepo.
		On("ListTeamIDsByMatchDay", mock.Anything, "md1").
		Return([]string{"t1"}, nil).
		Once()

	service := NewMatchDayService(matchDayRepo, historyRepo, nil, nil, SnapshotPolicyAny, nil)
	service.now = func() time.Time { return testBase.Add(time.Minute) }

	started, err := service.StartMatchDay(ctx, "md1")
	require.NoError(t, err)
	require.False(t, started)
}

func TestMatchDayService_CreatePropagatesStorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	matchDayRepo := matchdaymock.NewRepository(t)
	historyRepo := rosterhistorymock.NewRepository(t)
	storageErr := errors.New("connection reset")

	matchDayRepo.
		On("GetByID", mock.Anything, "md9").
		Return(matchday.MatchDay{}, false, nil).
		Once()
	matchDayRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(md matchday.MatchDay) bool { return md.ID == "md9" && md.Title == "Final" })).
		Return(storageErr).
		Once()

	service := NewMatchDayService(matchDayRepo, historyRepo, nil, nil, SnapshotPolicyPerTeam, nil)
	_, err := service.CreateMatchDay(ctx, CreateMatchDayInput{
		ID:        " md9 ",
		Title:     "Final",
		StartTime: testBase,
		EndTime:   testBase.Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, storageErr)
}

func TestMatchDayService_StartIgnoresCallerCancellationUsingMockery(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	matchDayRepo := matchdaymock.NewRepository(t)
	historyRepo := rosterhistorymock.NewRepository(t)
	item := matchday.MatchDay{ID: "md1", Title: "Round 1", StartTime: testBase, EndTime: testBase.Add(time.Hour)}

	matchDayRepo.
		On("GetByID", mock.Anything, "md1").
		Return(item, true, nil).
		Once()
	historyRepo.
		On("ListTeamIDsByMatchDay", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), "md1").
		Return([]string{"t1"}, nil).
		Once()

	service := NewMatchDayService(matchDayRepo, historyRepo, nil, nil, SnapshotPolicyAny, nil)
	service.now = func() time.Time { return testBase.Add(time.Minute) }

	started, err := service.StartMatchDay(ctx, "md1")
	require.NoError(t, err)
	require.False(t, started)
}
