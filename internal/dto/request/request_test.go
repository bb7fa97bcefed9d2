package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	return fields
}

func TestHasExactBusinessFields(t *testing.T) {
	t.Parallel()

	complete := `{"owner_id":1,"name":"Cafe","street_address":"1 Main St","city":"Corvallis","state":"OR","zip_code":"97330"}`
	assert.True(t, HasExactBusinessFields(fieldsOf(t, complete)))

	missing := `{"owner_id":1,"name":"Cafe","street_address":"1 Main St","city":"Corvallis","state":"OR"}`
	assert.False(t, HasExactBusinessFields(fieldsOf(t, missing)))

	extra := `{"owner_id":1,"name":"Cafe","street_address":"1 Main St","city":"Corvallis","state":"OR","zip_code":"97330","phone":"555"}`
	assert.False(t, HasExactBusinessFields(fieldsOf(t, extra)))

	renamed := `{"owner_id":1,"name":"Cafe","street_address":"1 Main St","city":"Corvallis","state":"OR","zip":"97330"}`
	assert.False(t, HasExactBusinessFields(fieldsOf(t, renamed)))
}

func TestOffsetRequest_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OffsetRequest{Offset: 0, Limit: 3}, NewOffsetRequest(-1, 0))
	assert.Equal(t, OffsetRequest{Offset: 5, Limit: 10}, NewOffsetRequest(5, 10))
	assert.Equal(t, OffsetRequest{Offset: 0, Limit: MaxLimit}, NewOffsetRequest(0, 1000))
}
