package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFieldDrafts_TypeKeys(t *testing.T) {
	body := `{"custom_fields":[
		{"field_type":"poll","label":"Day","options":["Fri","Sat"]},
		{"type":"signup","label":"Bring","options":["Chips","Salsa"]},
		{"field_type":"text","type":"poll","label":"Notes"}
	]}`

	var req ValidateFieldsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	drafts := ToFieldDrafts(req.Fields)

	require.Len(t, drafts, 3)
	assert.Equal(t, "poll", drafts[0].Type)
	assert.Equal(t, "signup", drafts[1].Type)
	assert.Equal(t, "text", drafts[2].Type)
}
