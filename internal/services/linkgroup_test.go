package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func TestLinkGroupService_List_PassesParams(t *testing.T) {
	fc := &fakeClient{ListRet: &models.LinkGroupList{
		Data: []models.LinkGroup{{ID: 1, Name: "Work"}, {ID: 2, Name: "Home"}},
		Total: 2, Page: 1, PageSize: 30, TotalPages: 1,
	}}
	svc := NewLinkGroupService(fc, testLogger())

	list := svc.List(context.Background(), models.ListParams{Page: 1, PageSize: 30, Name: "wo"})
	require.Equal(t, "wo", fc.LastListParams.Name)
	require.Len(t, list.Data, 2)
}

func TestLinkGroupService_List_DegradesToEmptyOnError(t *testing.T) {
	fc := &fakeClient{ListErr: errors.New("boom")}
	svc := NewLinkGroupService(fc, testLogger())

	list := svc.List(context.Background(), models.ListParams{PageSize: 10})
	require.NotNil(t, list.Data)
	require.Empty(t, list.Data)
	require.Equal(t, 0, list.Total)
	require.Equal(t, 1, list.Page)
	require.Equal(t, 10, list.PageSize)
	require.Equal(t, 0, list.TotalPages)
}

func TestLinkGroupService_List_DegradedDefaultPageSize(t *testing.T) {
	fc := &fakeClient{ListErr: errors.New("boom")}
	svc := NewLinkGroupService(fc, testLogger())

	list := svc.List(context.Background(), models.ListParams{})
	require.Equal(t, DefaultPageSize, list.PageSize)
}

func TestLinkGroupService_CRUDPassThrough(t *testing.T) {
	created := &models.LinkGroup{ID: 42, Name: "Work"}
	fc := &fakeClient{CreateRet: created, UpdateRet: created, GetRet: created}
	svc := NewLinkGroupService(fc, testLogger())
	ctx := context.Background()

	got, err := svc.Create(ctx, models.LinkGroupCreate{Name: "Work"})
	require.NoError(t, err)
	require.Equal(t, 42, got.ID)
	require.Equal(t, "Work", fc.LastCreate.Name)

	_, err = svc.Update(ctx, models.LinkGroupUpdate{ID: 42, Name: "Work 2"})
	require.NoError(t, err)
	require.Equal(t, 42, fc.LastUpdate.ID)

	require.NoError(t, svc.Delete(ctx, 42))
	require.Equal(t, 42, fc.LastDeleteID)

	_, err = svc.GetByID(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, 42, fc.LastGetID)
}
