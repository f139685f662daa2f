package dto

import "devfolio_backend/internal/themes"

// PublicPageResponse is a fully rendered public portfolio page: the
// visitor-safe profile, the theme that rendered it and the page tree.
type PublicPageResponse struct {
	Profile *themes.Profile `json:"profile"`
	Theme   string          `json:"theme"`
	Page    *themes.Node    `json:"page"`
}

// AdminUserResponse is one row of the admin user listing.
type AdminUserResponse struct {
	*ProfileResponse
	IsSuperAdmin bool  `json:"isSuperAdmin"`
	ItemCount    int64 `json:"itemCount"`
}

// AdminUserListResponse is a paginated admin listing.
type AdminUserListResponse struct {
	Users   []AdminUserResponse `json:"users"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"perPage"`
}

// AdminDeleteResponse reports what an account removal cascaded over.
type AdminDeleteResponse struct {
	DeletedItems int64 `json:"deletedItems"`
	DeletedBlobs int   `json:"deletedBlobs"`
}
