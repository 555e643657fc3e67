package todo

import (
	"math"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// Query parameter names recognized by the list endpoint.
const (
	ParamCompleted = "completed"
	ParamSearch    = "search"
	ParamSort      = "sort"
	ParamOrder     = "order"
	ParamPage      = "page"
	ParamPerPage   = "per_page"
)

// Pagination defaults and bounds.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// SortField is the key a list is ordered by.
type SortField string

const (
	SortByID    SortField = "id"
	SortByTitle SortField = "title"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

var (
	errCompletedParam = domain.NewError(domain.ErrQueryParam, ParamCompleted, "completed must be true or false")
	errSortParam      = domain.NewError(domain.ErrQueryParam, ParamSort, "sort must be 'id' or 'title'")
	errOrderParam     = domain.NewError(domain.ErrQueryParam, ParamOrder, "order must be 'asc' or 'desc'")
	errPageParam      = domain.NewError(domain.ErrQueryParam, ParamPage, "page must be a positive integer")
	errPerPageParam   = domain.NewError(domain.ErrQueryParam, ParamPerPage,
		"per_page must be an integer between 1 and "+strconv.Itoa(MaxPerPage))
)

// Query is the typed list descriptor. A nil Completed and an empty Search
// mean "no filter" for that dimension.
type Query struct {
	Completed *bool
	Search    string
	Sort      SortField
	Order     SortOrder
	Page      int
	PerPage   int

	// Paginated is true when at least one recognized parameter key was sent,
	// even with an empty value. It selects the envelope response and turns
	// on the LIMIT/OFFSET slice.
	Paginated bool
}

// DefaultQuery returns the descriptor used when no parameter is supplied:
// every todo, newest first.
func DefaultQuery() Query {
	return Query{
		Sort:    SortByID,
		Order:   OrderDesc,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// ParseQuery validates and normalizes the list parameters. Parameters are
// checked in a fixed order and the first invalid one is returned.
func ParseQuery(params url.Values) (Query, error) {
	q := DefaultQuery()

	for _, name := range []string{ParamCompleted, ParamSearch, ParamSort, ParamOrder, ParamPage, ParamPerPage} {
		if _, ok := params[name]; ok {
			q.Paginated = true
			break
		}
	}

	if raw, ok := lookup(params, ParamCompleted); ok {
		switch raw {
		case "true":
			v := true
			q.Completed = &v
		case "false":
			v := false
			q.Completed = &v
		default:
			return Query{}, errCompletedParam
		}
	}

	if raw, ok := lookup(params, ParamSearch); ok {
		q.Search = raw
	}

	if raw, ok := lookup(params, ParamSort); ok {
		switch SortField(raw) {
		case SortByID, SortByTitle:
			q.Sort = SortField(raw)
		default:
			return Query{}, errSortParam
		}
	}

	if raw, ok := lookup(params, ParamOrder); ok {
		switch SortOrder(raw) {
		case OrderAsc, OrderDesc:
			q.Order = SortOrder(raw)
		default:
			return Query{}, errOrderParam
		}
	}

	if raw, ok := lookup(params, ParamPage); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Query{}, errPageParam
		}
		q.Page = n
	}

	if raw, ok := lookup(params, ParamPerPage); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPerPage {
			return Query{}, errPerPageParam
		}
		q.PerPage = n
	}

	return q, nil
}

// Offset returns the number of rows skipped before the requested page. It
// saturates at math.MaxInt64 instead of overflowing on absurd page numbers.
func (q Query) Offset() int64 {
	if q.Page <= 1 || q.PerPage <= 0 {
		return 0
	}
	pages := int64(q.Page - 1)
	per := int64(q.PerPage)
	if pages > math.MaxInt64/per {
		return math.MaxInt64
	}
	return pages * per
}

// Page is one slice of a filtered, sorted list. Total counts every match
// before pagination.
type Page struct {
	Items   []Todo
	Total   int64
	Page    int
	PerPage int
}

func lookup(params url.Values, name string) (string, bool) {
	vals, ok := params[name]
	if !ok {
		return "", false
	}
	if len(vals) == 0 {
		return "", true
	}
	return vals[0], true
}
