package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Toggle(t *testing.T) {
	var s Set

	assert.True(t, s.Toggle("LBL001"))
	assert.True(t, s.Contains("LBL001"))
	assert.False(t, s.Toggle("LBL001"))
	assert.False(t, s.Contains("LBL001"))
	assert.Equal(t, 0, s.Len())
}

func TestSet_AddIsUnion(t *testing.T) {
	s := New("LBL003", "LBL001")
	s.Add("LBL001", "LBL002")

	assert.Equal(t, []string{"LBL001", "LBL002", "LBL003"}, s.IDs())
}

func TestSet_ReplaceIsNotUnion(t *testing.T) {
	s := New("LBL001", "LBL002")
	s.Replace([]string{"BTN001", "BTN002", "BTN001"})

	assert.Equal(t, []string{"BTN001", "BTN002"}, s.IDs())
	assert.False(t, s.Contains("LBL001"))
}

func TestSet_Clear(t *testing.T) {
	s := New("A", "B")
	s.Replace([]string{"C", "D", "E"})
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
	assert.NotNil(t, s.IDs())

	s.Add("F")
	assert.Equal(t, 1, s.Len())
}
