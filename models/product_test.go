package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleKey(t *testing.T) {
	assert.Equal(t, "apple", TitleKey("  Apple "))
	assert.Equal(t, "apple", TitleKey("APPLE"))
	assert.Equal(t, "a.b*c", TitleKey(" A.b*C"))
	assert.Equal(t, "", TitleKey("   "))
}

func TestProduct_ForbiddenFor(t *testing.T) {
	p := Product{Title: "Pork"}
	p.SetForbidden(BloodTypeA, true)
	p.SetForbidden(BloodTypeAB, true)

	assert.False(t, p.ForbiddenFor(BloodTypeO))
	assert.True(t, p.ForbiddenFor(BloodTypeA))
	assert.False(t, p.ForbiddenFor(BloodTypeB))
	assert.True(t, p.ForbiddenFor(BloodTypeAB))
	assert.False(t, p.ForbiddenFor(BloodType(9)))
	assert.Equal(t, [4]bool{false, true, false, true}, p.GroupBloodNotAllowed())
}

func TestBloodType_ForbiddenColumn(t *testing.T) {
	col, err := BloodTypeB.ForbiddenColumn()
	require.NoError(t, err)
	assert.Equal(t, "blood_3_forbidden", col)

	_, err = BloodType(0).ForbiddenColumn()
	assert.Error(t, err)
	assert.False(t, BloodType(5).Valid())
	assert.True(t, BloodTypeO.Valid())
}

func TestProduct_MarshalJSON(t *testing.T) {
	p := Product{ID: 7, Title: "Banana", Categories: "fruits", Weight: 100, Calories: 89}
	p.SetForbidden(BloodTypeO, true)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Banana", out["title"])
	assert.Equal(t, []any{true, false, false, false}, out["groupBloodNotAllowed"])
}
