package schema

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		want     ListQuery
		wantErr  string
		favorite *bool
	}{
		{name: "defaults", query: "", want: ListQuery{Page: 1, Limit: 7}},
		{name: "explicit page and limit", query: "page=3&limit=20", want: ListQuery{Page: 3, Limit: 20}},
		{name: "favorite true", query: "favorite=true", want: ListQuery{Page: 1, Limit: 7}, favorite: boolPtr(true)},
		{name: "favorite false", query: "favorite=false", want: ListQuery{Page: 1, Limit: 7}, favorite: boolPtr(false)},
		{name: "page not a number", query: "page=abc", wantErr: `"page" must be a number`},
		{name: "page zero", query: "page=0", wantErr: `"page" must be greater than or equal to 1`},
		{name: "limit too large", query: "limit=101", wantErr: `"limit" must be less than or equal to 100`},
		{name: "limit zero", query: "limit=0", wantErr: `"limit" must be greater than or equal to 1`},
		{name: "favorite not boolean", query: "favorite=yes", wantErr: `"favorite" must be a boolean`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseListQuery(values)
			if tt.wantErr != "" {
				var qe *QueryError
				require.ErrorAs(t, err, &qe)
				assert.Equal(t, tt.wantErr, qe.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Page, got.Page)
			assert.Equal(t, tt.want.Limit, got.Limit)
			assert.Equal(t, tt.favorite, got.Favorite)
		})
	}
}
