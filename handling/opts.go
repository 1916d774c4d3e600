package handling

import (
	"fmt"
	"net/http"
	"strings"
)

// OrderListOptions are the query parameters of the order board: which tab is
// showing and the free-text search applied on top of it.
type OrderListOptions struct {
	Tab    string // "active" (new/preparing), "ready", or "all"
	Search string
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) (*OrderListOptions, error) {
	query := r.URL.Query()

	opts := &OrderListOptions{Tab: "all"}

	if tab := query.Get("status"); tab != "" {
		tab = strings.ToLower(tab)
		switch tab {
		case "active", "ready", "all":
			opts.Tab = tab
		default:
			return nil, fmt.Errorf("invalid status filter %q", tab)
		}
	}

	opts.Search = strings.TrimSpace(query.Get("q"))

	return opts, nil
}
