package repository

import "github.com/eventdesk/eventdesk-api/internal/repository/dao"

// ListQuery carries pagination, sorting, search and column filters down to
// the DAO layer unchanged.
type ListQuery struct {
	Limit   int
	Offset  int
	SortBy  string
	Order   string
	Search  string
	Filters map[string]interface{}
}

func (q ListQuery) toDAO() dao.ListOptions {
	return dao.ListOptions{
		Limit:  q.Limit,
		Offset: q.Offset,
		SortBy: q.SortBy,
		Order:  q.Order,
		Search: q.Search,
		Conds:  q.Filters,
	}
}
