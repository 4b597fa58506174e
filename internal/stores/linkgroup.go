package stores

import (
	"context"
	"sync"

	"github.com/avasiljevs/linkstorage/internal/api"
	"github.com/avasiljevs/linkstorage/internal/logging"
	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/avasiljevs/linkstorage/internal/services"
)

const (
	msgCreateGroupFailed = "failed to create link group"
	msgUpdateGroupFailed = "failed to update link group"
	msgDeleteGroupFailed = "failed to delete link group"
	msgFetchGroupFailed  = "failed to load link group"
)

// LinkGroupStore is the in-memory projection of the user's link-group
// collection. The groups slice is never nil, even after a failed fetch.
type LinkGroupStore struct {
	svc services.LinkGroupService
	log logging.Logger

	mu         sync.Mutex
	groups     []models.LinkGroup
	current    *models.LinkGroup
	pagination models.Pagination
	isLoading  bool
	lastErr    string
}

func NewLinkGroupStore(svc services.LinkGroupService, log logging.Logger) *LinkGroupStore {
	return &LinkGroupStore{
		svc:        svc,
		log:        log.With("store", "linkgroups"),
		groups:     []models.LinkGroup{},
		pagination: models.Pagination{Page: 1, PageSize: services.DefaultPageSize},
	}
}

// FetchGroups replaces the collection wholesale with the requested page.
// Missing paging parameters default to the current pagination state. The
// listing service degrades failures into an empty page, so the collection
// is valid afterwards either way.
func (s *LinkGroupStore) FetchGroups(ctx context.Context, params models.ListParams) {
	s.begin()
	defer s.finish()

	s.mu.Lock()
	if params.Page <= 0 {
		params.Page = s.pagination.Page
	}
	if params.PageSize <= 0 {
		params.PageSize = s.pagination.PageSize
	}
	s.mu.Unlock()

	list := s.svc.List(ctx, params)

	s.mu.Lock()
	s.groups = list.Data
	if s.groups == nil {
		s.groups = []models.LinkGroup{}
	}
	s.pagination = models.Pagination{
		Page:       list.Page,
		PageSize:   list.PageSize,
		Total:      list.Total,
		TotalPages: list.TotalPages,
	}
	s.mu.Unlock()
}

// CreateGroup inserts the server-confirmed group at the head of the list.
func (s *LinkGroupStore) CreateGroup(ctx context.Context, req models.LinkGroupCreate) (*models.LinkGroup, error) {
	s.begin()
	defer s.finish()

	group, err := s.svc.Create(ctx, req)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgCreateGroupFailed))
		return nil, err
	}

	s.mu.Lock()
	s.groups = append([]models.LinkGroup{*group}, s.groups...)
	s.mu.Unlock()
	return group, nil
}

// UpdateGroup replaces the matching list entry in place. A confirmed update
// of a group not present locally succeeds without inserting it.
func (s *LinkGroupStore) UpdateGroup(ctx context.Context, req models.LinkGroupUpdate) (*models.LinkGroup, error) {
	s.begin()
	defer s.finish()

	group, err := s.svc.Update(ctx, req)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgUpdateGroupFailed))
		return nil, err
	}

	s.mu.Lock()
	for i := range s.groups {
		if s.groups[i].ID == req.ID {
			s.groups[i] = *group
			break
		}
	}
	s.mu.Unlock()
	return group, nil
}

// DeleteGroup removes the entry with the given id from the list.
func (s *LinkGroupStore) DeleteGroup(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(api.ErrorMessage(err, msgDeleteGroupFailed))
		return err
	}

	s.mu.Lock()
	kept := s.groups[:0]
	for _, g := range s.groups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.groups = kept
	s.mu.Unlock()
	return nil
}

// FetchGroupByID loads one group into the current-group slot.
func (s *LinkGroupStore) FetchGroupByID(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	group, err := s.svc.GetByID(ctx, id)
	if err != nil {
		s.fail(api.ErrorMessage(err, msgFetchGroupFailed))
		return err
	}

	s.mu.Lock()
	s.current = group
	s.mu.Unlock()
	return nil
}

func (s *LinkGroupStore) SetCurrentGroup(group *models.LinkGroup) {
	s.mu.Lock()
	s.current = group
	s.mu.Unlock()
}

// Groups returns a copy of the collection. Never nil.
func (s *LinkGroupStore) Groups() []models.LinkGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LinkGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

func (s *LinkGroupStore) CurrentGroup() *models.LinkGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	g := *s.current
	return &g
}

func (s *LinkGroupStore) Pagination() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

func (s *LinkGroupStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *LinkGroupStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *LinkGroupStore) begin() {
	s.mu.Lock()
	s.isLoading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *LinkGroupStore) finish() {
	s.mu.Lock()
	s.isLoading = false
	s.mu.Unlock()
}

func (s *LinkGroupStore) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
