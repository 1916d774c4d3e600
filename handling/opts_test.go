package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParseOrderListOptions(t *testing.T) {
	tests := []struct {
		url        string
		wantTab    string
		wantSearch string
		wantErr    bool
	}{
		{"/orders", "all", "", false},
		{"/orders?status=active", "active", "", false},
		{"/orders?status=READY", "ready", "", false},
		{"/orders?status=all&q=anna", "all", "anna", false},
		{"/orders?q=%20boba%20", "all", "boba", false},
		{"/orders?status=paid", "", "", true},
	}

	for _, tt := range tests {
		opts, err := ParseOrderListOptions(httptest.NewRequest("GET", tt.url, nil))
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.url, err)
			continue
		}
		if opts.Tab != tt.wantTab || opts.Search != tt.wantSearch {
			t.Errorf("%s: got (%q, %q), want (%q, %q)", tt.url, opts.Tab, opts.Search, tt.wantTab, tt.wantSearch)
		}
	}
}
