package sheetson

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions controls pagination, ordering and field selection for ListRows
// and SearchRows. Zero values omit the corresponding query parameter, leaving
// the service defaults in effect.
type ListOptions struct {
	Skip    int      // number of rows to skip
	Limit   int      // maximum number of rows to return
	OrderBy string   // column to order by
	Desc    bool     // descending order (only meaningful with OrderBy)
	Keys    []string // columns to include in the result
}

func (o *ListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Skip > 0 {
		query.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.OrderBy != "" {
		order := o.OrderBy
		if o.Desc {
			order = "-" + order
		}
		query.Set("order", order)
	}
	if len(o.Keys) > 0 {
		query.Set("keys", strings.Join(o.Keys, ","))
	}
	return query
}

// ListResult is the shape of collection responses.
type ListResult struct {
	Results []Row `json:"results"`
}
