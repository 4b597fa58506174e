package models

import "time"

// LinkGroup is a named group of links owned by a single user.
type LinkGroup struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LinkGroupCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

type LinkGroupUpdate struct {
	ID          int    `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ListParams are the optional query parameters of the listing endpoint.
// Zero values are omitted from the query string.
type ListParams struct {
	Page     int
	PageSize int
	Name     string
}

// Pagination mirrors the paging metadata returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// LinkGroupList is the payload of the listing endpoint. Data is never nil.
type LinkGroupList struct {
	Data       []LinkGroup `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
