package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListAcceptsArrayAndCSV(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`["Go","SQL"]`, []string{"Go", "SQL"}},
		{`"Go, SQL"`, []string{"Go", "SQL"}},
		{`"Go,,  SQL , "`, []string{"Go", "SQL"}},
		{`""`, nil},
		{`[]`, []string{}},
	}

	for _, tc := range cases {
		var got StringList
		require.NoError(t, json.Unmarshal([]byte(tc.in), &got), "input %s", tc.in)
		assert.Equal(t, StringList(tc.want), got, "input %s", tc.in)
	}
}

func TestStringListRejectsOtherTypes(t *testing.T) {
	var got StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}
