package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-waterpolo/internal/domain/rosterhistory"
)

func TestRosterHistoryRepository_ReplaceSemantics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterHistoryRepository()
	capturedAt := time.Date(2025, 10, 4, 17, 0, 0, 0, time.UTC)

	if _, err := repo.Replace(ctx, "t1", "md1", []rosterhistory.EntryInput{
		{PlayerID: "p1", IsCaptain: true},
		{PlayerID: "p2"},
	}, capturedAt); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if _, err := repo.Replace(ctx, "t1", "md1", []rosterhistory.EntryInput{
		{PlayerID: "p3", IsCaptain: true},
	}, capturedAt); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := repo.ListByTeamAndMatchDay(ctx, "t1", "md1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "p3" || !got[0].IsCaptain {
		t.Fatalf("expected only p3 as captain, got %+v", got)
	}
}

func TestRosterHistoryRepository_ReplaceRejectsTwoCaptains(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterHistoryRepository()
	_, err := repo.Replace(ctx, "t1", "md1", []rosterhistory.EntryInput{
		{PlayerID: "p1", IsCaptain: true},
		{PlayerID: "p2", IsCaptain: true},
	}, time.Now())
	if !errors.Is(err, rosterhistory.ErrMultipleCaptains) {
		t.Fatalf("expected ErrMultipleCaptains, got %v", err)
	}

	exists, err := repo.Exists(ctx, "t1", "md1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("rejected replace must not write anything")
	}
}

func TestRosterHistoryRepository_ReadersNeverSeeEmptyDuringReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterHistoryRepository()
	sets := [][]rosterhistory.EntryInput{
		{{PlayerID: "p1", IsCaptain: true}, {PlayerID: "p2"}},
		{{PlayerID: "p3"}, {PlayerID: "p4", IsCaptain: true}, {PlayerID: "p5"}},
	}
	if _, err := repo.Replace(ctx, "t1", "md1", sets[0], time.Now()); err != nil {
		t.Fatalf("seed replace: %v", err)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			_, _ = repo.Replace(ctx, "t1", "md1", sets[i%2], time.Now())
		}
	}()

	for i := 0; i < 2000; i++ {
		got, err := repo.ListByTeamAndMatchDay(ctx, "t1", "md1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 && len(got) != 3 {
			close(stop)
			wg.Wait()
			t.Fatalf("observed partial roster of %d entries", len(got))
		}
	}
	close(stop)
	wg.Wait()
}

func TestRosterHistoryRepository_Queries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRosterHistoryRepository()
	now := time.Now()
	mustReplace := func(teamID, matchDayID string, players ...string) {
		t.Helper()
		entries := make([]rosterhistory.EntryInput, 0, len(players))
		for _, id := range players {
			entries = append(entries, rosterhistory.EntryInput{PlayerID: id})
		}
		if _, err := repo.Replace(ctx, teamID, matchDayID, entries, now); err != nil {
			t.Fatalf("replace %s/%s: %v", teamID, matchDayID, err)
		}
	}
	mustReplace("t1", "md1", "p1", "p2")
	mustReplace("t1", "md2", "p1")
	mustReplace("t2", "md1", "p9")

	byTeam, _ := repo.ListByTeam(ctx, "t1")
	if len(byTeam) != 3 {
		t.Fatalf("expected 3 rows for t1, got %d", len(byTeam))
	}
	byMatchDay, _ := repo.ListByMatchDay(ctx, "md1")
	if len(byMatchDay) != 3 {
		t.Fatalf("expected 3 rows for md1, got %d", len(byMatchDay))
	}
	teamIDs, _ := repo.ListTeamIDsByMatchDay(ctx, "md1")
	if len(teamIDs) != 2 || teamIDs[0] != "t1" || teamIDs[1] != "t2" {
		t.Fatalf("unexpected team ids: %v", teamIDs)
	}

	if err := repo.Delete(ctx, "t1", "md1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := repo.Exists(ctx, "t1", "md1"); ok {
		t.Fatalf("expected t1/md1 deleted")
	}
	if ok, _ := repo.Exists(ctx, "t1", "md2"); !ok {
		t.Fatalf("expected t1/md2 kept")
	}
}
