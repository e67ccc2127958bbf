package groups

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreExistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.SetObject(ctx, "group:Existing", map[string]string{"name": "Existing"}))
	require.NoError(t, st.SetObjectField(ctx, "groupslug:groupname", "slugged", "Slugged"))
	require.NoError(t, st.SetObjectField(ctx, "userslug:uid", "alice", "3"))

	checker := NewStoreExistence(st, DefaultNames)

	tests := []struct {
		name string
		want bool
	}{
		{name: "Existing", want: true},
		{name: "existing"},
		{name: "Slugged", want: true},
		{name: "Alice", want: true},
		{name: "guests", want: true},
		{name: "spiders", want: true},
		{name: "Fresh"},
		{name: "!!!"},
	}

	for _, tt := range tests {
		got, err := checker.Exists(ctx, tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
