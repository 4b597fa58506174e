package services

import (
	"context"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
)

// DefaultPageSize is used when the caller does not request a page size.
const DefaultPageSize = 30

// LinkGroupService maps one to one onto the link-group endpoints.
//
// List has a degraded contract: on any failure it returns a well-formed
// empty listing instead of an error, so consumers always receive a valid
// (possibly empty) slice and never need a nil check.
type LinkGroupService interface {
	Create(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error)
	Update(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params models.ListParams) *models.LinkGroupList
	GetByID(ctx context.Context, id int) (*models.LinkGroup, error)
}

type linkGroupService struct {
	client api.Client
	log    logging.Logger
}

func NewLinkGroupService(client api.Client, log logging.Logger) LinkGroupService {
	return &linkGroupService{client: client, log: log.With("component", "linkgroups")}
}

func (s *linkGroupService) Create(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error) {
	return s.client.CreateGroup(ctx, req)
}

func (s *linkGroupService) Update(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error) {
	return s.client.UpdateGroup(ctx, req)
}

func (s *linkGroupService) Delete(ctx context.Context, id int) error {
	return s.client.DeleteGroup(ctx, id)
}

// List never fails: a broken fetch degrades to an empty first page sized to
// the request, and the cause is only logged.
func (s *linkGroupService) List(ctx context.Context, params models.ListParams) *models.LinkGroupList {
	list, err := s.client.ListGroups(ctx, params)
	if err != nil {
		s.log.Error(ctx, "listing link groups", "error", err)

		pageSize := params.PageSize
		if pageSize <= 0 {
			pageSize = DefaultPageSize
		}
		return &models.LinkGroupList{
			Data:       []models.LinkGroup{},
			Total:      0,
			Page:       1,
			PageSize:   pageSize,
			TotalPages: 0,
		}
	}
	return list
}

func (s *linkGroupService) GetByID(ctx context.Context, id int) (*models.LinkGroup, error) {
	return s.client.GetGroup(ctx, id)
}
