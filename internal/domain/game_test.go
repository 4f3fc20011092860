package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nums-lab/backend/internal/model"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/errorx"
	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

const sampleRow = "600\t2014.05.31\t15\t901,798,725원\t41\t54,987,728원\t1,518\t1,485,176원\t77,138\t50,000원\t1,258,677\t5,000원\t5\t11\t14\t27\t29\t36\t44"

func rowOfRound(round int, drawDate string) string {
	fields := strings.Split(sampleRow, "\t")
	fields[0] = fmt.Sprint(round)
	fields[1] = drawDate
	return strings.Join(fields, "\t")
}

func newGameDomain(now time.Time) *gameDomain {
	domain := NewGameDomain(repository.NewGameRepository()).(*gameDomain)
	domain.now = func() time.Time { return now }
	return domain
}

func Test_gameDomain_Upload(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newGameDomain(time.Now())

	_, err := testutil.SampleGame(ctx, 600, time.Date(2014, time.May, 31, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	data := strings.Join([]string{
		sampleRow,
		rowOfRound(601, "2014.06.07"),
		rowOfRound(602, "2014.06.14"),
	}, "\n")

	resp, err := domain.Upload(ctx, &model.UploadGamesRequest{Data: data})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, 3, resp.Total)
	require.Equal(t, 3, resp.SuccessCount)
	require.Equal(t, 0, resp.ErrorCount)
	require.Empty(t, resp.Errors)
	require.Equal(t, []string{model.UploadStatusUpdated, model.UploadStatusCreated, model.UploadStatusCreated},
		[]string{resp.Results[0].Status, resp.Results[1].Status, resp.Results[2].Status})

	game, err := repository.NewGameRepository().GetByRound(ctx, 600)
	require.NoError(t, err)
	require.Equal(t, 15, game.FirstPrizeWinners)
	require.Equal(t, int64(901798725), game.FirstPrizeAmount)
	require.Equal(t, []int{5, 11, 14, 27, 29, 36}, game.Numbers())
	require.Equal(t, 44, game.BonusNumber)

	count, err := repository.NewGameRepository().Count(ctx, repository.GetListGameFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	// Uploading the same text again only updates.
	resp, err = domain.Upload(ctx, &model.UploadGamesRequest{Data: data})
	require.NoError(t, err)
	for _, result := range resp.Results {
		require.Equal(t, model.UploadStatusUpdated, result.Status)
	}

	count, err = repository.NewGameRepository().Count(ctx, repository.GetListGameFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func Test_gameDomain_Upload_PerRecordError(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newGameDomain(time.Now())

	// Round 0 violates the round check of the store, not the parser.
	data := rowOfRound(0, "2014.06.07") + "\n" + rowOfRound(601, "2014.06.07")

	resp, err := domain.Upload(ctx, &model.UploadGamesRequest{Data: data})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, 1, resp.SuccessCount)
	require.Equal(t, 1, resp.ErrorCount)
	require.Equal(t, 0, resp.Errors[0].Round)
	require.NotEmpty(t, resp.Errors[0].Error)
	require.Equal(t, 601, resp.Results[0].Round)
}

func Test_gameDomain_Upload_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newGameDomain(time.Now())

	testCases := []struct {
		name   string
		data   string
		reason string
	}{
		{name: "empty data", data: "", reason: errorx.ReasonInvalidRequestBody},
		{name: "blank data", data: "  \n ", reason: errorx.ReasonParsedDataEmpty},
		{name: "malformed row", data: sampleRow + "\n600\t2014.05.31", reason: errorx.ReasonInvalidGameData},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Upload(ctx, &model.UploadGamesRequest{Data: tt.data})
			requireErrorReason(t, err, errorx.BadRequest, tt.reason)
		})
	}

	_, err := domain.Upload(ctx, &model.UploadGamesRequest{Data: sampleRow + "\n600\t2014.05.31"})
	require.EqualError(t, err, "row 2: invalid data format: expected 19 columns, got 2")

	// A failed parse stores nothing.
	count, err := repository.NewGameRepository().Count(ctx, repository.GetListGameFilter{})
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_gameDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newGameDomain(time.Now())

	start := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.Local)
	for round := 1; round <= 25; round++ {
		_, err := testutil.SampleGame(ctx, round, start.AddDate(0, 0, 7*(round-1)))
		require.NoError(t, err)
	}

	resp, err := domain.GetList(ctx, &model.GetGamesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Games, 10)
	require.Equal(t, 25, resp.Games[0].Round)
	require.Equal(t, 16, resp.Games[9].Round)
	require.Nil(t, resp.TotalItems)
	require.Equal(t, model.Pagination{
		CurrentPage:  1,
		TotalPages:   3,
		TotalItems:   25,
		ItemsPerPage: 10,
	}, *resp.Pagination)

	resp, err = domain.GetList(ctx, &model.GetGamesRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Games, 5)
	require.Equal(t, 5, resp.Games[0].Round)

	resp, err = domain.GetList(ctx, &model.GetGamesRequest{Limit: 1000})
	require.NoError(t, err)
	require.Len(t, resp.Games, 25)
	require.Equal(t, 100, resp.Pagination.ItemsPerPage)

	resp, err = domain.GetList(ctx, &model.GetGamesRequest{All: "true"})
	require.NoError(t, err)
	require.Len(t, resp.Games, 25)
	require.Nil(t, resp.Pagination)
	require.Equal(t, int64(25), *resp.TotalItems)

	resp, err = domain.GetList(ctx, &model.GetGamesRequest{Round: ptr(7), All: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Games, 1)
	require.Equal(t, 7, resp.Games[0].Round)
	require.Equal(t, "2024-02-17", resp.Games[0].DrawDate)
}

func Test_gameDomain_GetByRound(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newGameDomain(time.Now())

	_, err := domain.GetRecent(ctx, &model.GetRecentGameRequest{})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonGameNotFound)

	_, err = testutil.SampleGame(ctx, 1100, time.Date(2024, time.January, 6, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	_, err = testutil.SampleGame(ctx, 1101, time.Date(2024, time.January, 13, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	resp, err := domain.GetByRound(ctx, &model.GetGameByRoundRequest{Round: 1100})
	require.NoError(t, err)
	require.Equal(t, 1100, resp.Data.Round)
	require.Equal(t, "2024-01-06", resp.Data.DrawDate)

	_, err = domain.GetByRound(ctx, &model.GetGameByRoundRequest{Round: 999})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonGameNotFound)

	recent, err := domain.GetRecent(ctx, &model.GetRecentGameRequest{})
	require.NoError(t, err)
	require.Equal(t, 1101, recent.Data.Round)
}

func Test_gameDomain_GetRecentStatus(t *testing.T) {
	ctx := testutil.MockContext()
	drawDate := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	_, err := newGameDomain(time.Now()).GetRecentStatus(ctx, &model.GetRecentGameStatusRequest{})
	requireErrorReason(t, err, errorx.NotFound, errorx.ReasonGameNotFound)

	_, err = testutil.SampleGame(ctx, 1161, drawDate)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		now         time.Time
		daysElapsed int
		isUpToDate  bool
	}{
		{name: "draw day", now: drawDate.Add(20 * time.Hour), daysElapsed: 0, isUpToDate: true},
		{name: "at threshold", now: drawDate.AddDate(0, 0, 7).Add(time.Hour), daysElapsed: 7, isUpToDate: true},
		{name: "past threshold", now: drawDate.AddDate(0, 0, 8).Add(time.Hour), daysElapsed: 8, isUpToDate: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newGameDomain(tt.now).GetRecentStatus(ctx, &model.GetRecentGameStatusRequest{})
			require.NoError(t, err)
			require.Equal(t, 1161, resp.Data.Round)
			require.Equal(t, "2025-03-01", resp.Data.DrawDate)
			require.Equal(t, 7, resp.Data.ThresholdDays)
			require.Equal(t, tt.daysElapsed, resp.Data.DaysElapsed)
			require.Equal(t, tt.isUpToDate, resp.Data.IsUpToDate)
			require.Equal(t, tt.now.Format(model.DefaultTimeLayout), resp.Data.ServerNow)
		})
	}
}
