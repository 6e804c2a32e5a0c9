package ajax

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsStringsAndNumbers(t *testing.T) {
	cases := []struct {
		payload string
		want    ID
	}{
		{`{"id":42}`, "42"},
		{`{"id":"42"}`, "42"},
		{`{"id":12345678901234567890}`, "12345678901234567890"},
		{`{"id":null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var dto Dto
		require.NoError(t, json.Unmarshal([]byte(tc.payload), &dto), tc.payload)
		assert.Equal(t, tc.want, dto.ID, tc.payload)
	}
}

func TestIDRejectsCompositeValues(t *testing.T) {
	for _, payload := range []string{`{"id":[1]}`, `{"id":{"id":1}}`, `{"id":true}`} {
		var dto Dto
		assert.Error(t, json.Unmarshal([]byte(payload), &dto), payload)
	}
}
