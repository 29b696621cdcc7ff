package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/skeletonne/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestPolicy() *Policy {
	return NewPolicy(NewSequenceGenerator())
}

func TestPolicy_AddVertical(t *testing.T) {
	p := newTestPolicy()
	start := []model.Element{vertical("a")}

	out := p.Add(start, model.OrientationVertical)
	require.Len(t, out, 2)
	assert.Equal(t, model.OrientationVertical, out[1].Orientation)
	assert.Empty(t, out[1].RowID)
	assert.Equal(t, model.DefaultWidth, out[1].Width)
	assert.Equal(t, model.DefaultHeight, out[1].Height)
	assert.Equal(t, model.DefaultRadius, out[1].BorderRadius)
	assert.NotEqual(t, "a", out[1].ID)
	assert.Len(t, start, 1, "input list must not grow")
}

func TestPolicy_AddHorizontalToEmptyList(t *testing.T) {
	out := newTestPolicy().Add(nil, model.OrientationHorizontal)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsHorizontal())
	assert.NotEmpty(t, out[0].RowID)
	assert.Equal(t, "100.0000%", out[0].Width)
}

// Scenario: a lone vertical element followed by an added horizontal one
func TestPolicy_AddHorizontalAfterVertical(t *testing.T) {
	start := []model.Element{vertical("a")}
	start[0].Width = "100%"

	out := newTestPolicy().Add(start, model.OrientationHorizontal)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsHorizontal())
	assert.True(t, out[1].IsHorizontal())
	assert.NotEmpty(t, out[0].RowID)
	assert.Equal(t, out[0].RowID, out[1].RowID)
	assert.Equal(t, "50.0000%", out[0].Width)
	assert.Equal(t, "50.0000%", out[1].Width)

	// original value untouched
	assert.Equal(t, model.OrientationVertical, start[0].Orientation)
	assert.Empty(t, start[0].RowID)
}

func TestPolicy_AddHorizontalJoinsLastRow(t *testing.T) {
	start := []model.Element{vertical("a"), horizontal("b", "r1"), horizontal("c", "r1")}

	out := newTestPolicy().Add(start, model.OrientationHorizontal)
	require.Len(t, out, 4)
	assert.Equal(t, "r1", out[3].RowID)
	for _, e := range out[1:] {
		assert.Equal(t, "33.3333%", e.Width)
	}
	assert.Equal(t, model.DefaultWidth, out[0].Width)
}

func TestPolicy_AddHorizontalUsesLastElementNotLatestRow(t *testing.T) {
	// r2 was created last but r1 owns the tail of the list
	start := []model.Element{horizontal("a", "r2"), horizontal("b", "r1")}

	out := newTestPolicy().Add(start, model.OrientationHorizontal)
	assert.Equal(t, "r1", out[2].RowID)
	assert.Equal(t, "50.0000%", out[1].Width)
	assert.Equal(t, model.DefaultWidth, out[0].Width)
}

func TestPolicy_AddHorizontalAfterRowlessHorizontal(t *testing.T) {
	start := []model.Element{horizontal("a", "")}

	out := newTestPolicy().Add(start, model.OrientationHorizontal)
	require.Len(t, out, 2)
	assert.NotEmpty(t, out[0].RowID)
	assert.Equal(t, out[0].RowID, out[1].RowID)
	assert.Equal(t, "50.0000%", out[1].Width)
}

// Scenario: removing one member of a three-element row
func TestPolicy_RemoveRedistributesSurvivors(t *testing.T) {
	start := Redistribute([]model.Element{
		horizontal("a", "r1"),
		horizontal("b", "r1"),
		horizontal("c", "r1"),
	})
	require.Equal(t, "33.3333%", start[0].Width)

	out := newTestPolicy().Remove(start, "b")
	require.Len(t, out, 2)
	assert.Equal(t, []string{"a", "c"}, elementIDs(out))
	assert.Equal(t, "50.0000%", out[0].Width)
	assert.Equal(t, "50.0000%", out[1].Width)
	assert.Len(t, start, 3)
}

func TestPolicy_RemoveLastRowMemberIsNoop(t *testing.T) {
	start := []model.Element{vertical("a"), horizontal("b", "r1")}
	out := newTestPolicy().Remove(start, "b")
	assert.Equal(t, []model.Element{vertical("a")}, out)
}

func TestPolicy_RemoveVerticalKeepsRows(t *testing.T) {
	start := []model.Element{vertical("a"), horizontal("b", "r1")}
	start[1].Width = "70%"

	out := newTestPolicy().Remove(start, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "70%", out[0].Width)
}

func TestPolicy_RemoveUnknownID(t *testing.T) {
	start := []model.Element{vertical("a")}
	assert.Equal(t, start, newTestPolicy().Remove(start, "zzz"))
}

// Scenario: a single vertical element toggled to horizontal
func TestPolicy_VerticalToHorizontalCreatesSingletonRow(t *testing.T) {
	start := []model.Element{vertical("a"), vertical("b")}
	start[0].Width = "80%"

	out := newTestPolicy().ChangeOrientation(start, "a", model.OrientationHorizontal)
	assert.True(t, out[0].IsHorizontal())
	assert.NotEmpty(t, out[0].RowID)
	assert.Equal(t, "100.0000%", out[0].Width)
	assert.Equal(t, model.OrientationVertical, out[1].Orientation)
}

func TestPolicy_HorizontalToVerticalRedistributesOldRow(t *testing.T) {
	start := Redistribute([]model.Element{
		horizontal("a", "r1"),
		horizontal("b", "r1"),
		horizontal("c", "r1"),
	})

	out := newTestPolicy().ChangeOrientation(start, "b", model.OrientationVertical)
	assert.Equal(t, model.OrientationVertical, out[1].Orientation)
	assert.Empty(t, out[1].RowID)
	assert.Equal(t, "33.3333%", out[1].Width, "the converted element keeps its width")
	assert.Equal(t, "50.0000%", out[0].Width)
	assert.Equal(t, "50.0000%", out[2].Width)
}

func TestPolicy_HorizontalToVerticalLastMember(t *testing.T) {
	start := []model.Element{horizontal("a", "r1")}
	out := newTestPolicy().ChangeOrientation(start, "a", model.OrientationVertical)
	assert.Equal(t, model.OrientationVertical, out[0].Orientation)
	assert.Empty(t, out[0].RowID)
}

func TestPolicy_UpdateFieldsOnly(t *testing.T) {
	start := Redistribute([]model.Element{horizontal("a", "r1"), horizontal("b", "r1")})

	out := newTestPolicy().Update(start, "a", Patch{
		Width:        ptr("70%"),
		Height:       ptr("48px"),
		BorderRadius: ptr(model.RadiusFull),
		Color:        ptr("#eeeeee"),
		Orientation:  ptr(model.OrientationHorizontal),
	})

	// raw width edit may break the row sum until the next structural change
	assert.Equal(t, "70%", out[0].Width)
	assert.Equal(t, "50.0000%", out[1].Width)
	assert.Equal(t, "48px", out[0].Height)
	assert.Equal(t, model.RadiusFull, out[0].BorderRadius)
	assert.Equal(t, "#eeeeee", out[0].Color)
	assert.Equal(t, "r1", out[0].RowID)

	cleared := newTestPolicy().Update(out, "a", Patch{Color: ptr("")})
	assert.Empty(t, cleared[0].Color)
}

func TestPolicy_UpdateMergesBeforeOrientationChange(t *testing.T) {
	start := []model.Element{vertical("a")}

	out := newTestPolicy().Update(start, "a", Patch{
		Width:       ptr("30%"),
		Orientation: ptr(model.OrientationHorizontal),
	})
	assert.Equal(t, "100.0000%", out[0].Width)
	assert.True(t, out[0].HasRow())
}

func TestPolicy_UpdateUnknownID(t *testing.T) {
	start := []model.Element{vertical("a")}
	out := newTestPolicy().Update(start, "nope", Patch{Width: ptr("1%")})
	assert.Equal(t, start, out)
}

func TestPolicy_StructuralMutationRestoresRowSum(t *testing.T) {
	p := newTestPolicy()
	list := p.Add(nil, model.OrientationHorizontal)
	list = p.Add(list, model.OrientationHorizontal)
	list = p.Update(list, list[0].ID, Patch{Width: ptr("90%")})
	assert.Equal(t, "90%", list[0].Width)

	list = p.Add(list, model.OrientationHorizontal)
	for _, e := range list {
		assert.Equal(t, "33.3333%", e.Width)
	}
}

func TestPolicy_InvariantsHoldAcrossOperations(t *testing.T) {
	p := newTestPolicy()
	list := model.DefaultElements("a", "b", "c")

	ops := []func([]model.Element) []model.Element{
		func(l []model.Element) []model.Element { return p.Add(l, model.OrientationHorizontal) },
		func(l []model.Element) []model.Element { return p.Add(l, model.OrientationHorizontal) },
		func(l []model.Element) []model.Element { return p.Add(l, model.OrientationVertical) },
		func(l []model.Element) []model.Element { return p.ChangeOrientation(l, "a", model.OrientationHorizontal) },
		func(l []model.Element) []model.Element { return p.Add(l, model.OrientationHorizontal) },
		func(l []model.Element) []model.Element { return p.ChangeOrientation(l, "c", model.OrientationVertical) },
		func(l []model.Element) []model.Element { return p.Remove(l, l[len(l)-1].ID) },
	}

	for i, op := range ops {
		list = op(list)
		for _, e := range list {
			if e.Orientation == model.OrientationVertical {
				require.Empty(t, e.RowID, "step %d: vertical element %s has a row", i, e.ID)
			}
		}
		for _, rowID := range RowIDs(list) {
			members := RowMembers(list, rowID)
			for _, m := range members {
				require.Equal(t, EqualShare(len(members)), m.Width, "step %d: row %s", i, rowID)
			}
		}
	}
}

func TestPolicy_Apply(t *testing.T) {
	ids := NewSequenceGenerator()
	list := Reduce(nil, Add(model.OrientationVertical), ids)
	list = Reduce(list, Add(model.OrientationHorizontal), ids)
	require.Len(t, list, 2)
	assert.Equal(t, "50.0000%", list[1].Width)

	list = Reduce(list, Update(list[0].ID, Patch{Height: ptr("24px")}), ids)
	assert.Equal(t, "24px", list[0].Height)

	list = Reduce(list, Remove(list[0].ID), ids)
	require.Len(t, list, 1)
	assert.Equal(t, "100.0000%", list[0].Width)

	same := Reduce(list, Operation{Kind: "bogus"}, ids)
	assert.Equal(t, list, same)
}

func TestPolicy_DefaultsApplyToNewElements(t *testing.T) {
	p := newTestPolicy()
	p.Defaults = model.Element{Width: "50%", Height: "32px", BorderRadius: model.RadiusLG, Color: "#ddd", RowID: "leak"}

	out := p.Add(nil, model.OrientationVertical)
	require.Len(t, out, 1)
	assert.Equal(t, "50%", out[0].Width)
	assert.Equal(t, "32px", out[0].Height)
	assert.Equal(t, model.RadiusLG, out[0].BorderRadius)
	assert.Equal(t, "#ddd", out[0].Color)
	assert.Empty(t, out[0].RowID)
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator()
	assert.Equal(t, "el-1", g.NewElementID())
	assert.Equal(t, "row-2", g.NewRowID())
	assert.Equal(t, "el-3", g.NewElementID())
}

func TestUUIDGenerator(t *testing.T) {
	g := UUIDGenerator{}
	a, b := g.NewElementID(), g.NewElementID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len(ElementIDPrefix)+36)
	assert.Len(t, g.NewRowID(), len(RowIDPrefix)+36)
}

func TestPolicy_MintsIDsNotInList(t *testing.T) {
	start := []model.Element{vertical("el-1"), horizontal("el-2", "row-4"), vertical("el-4")}

	out := newTestPolicy().Add(start, model.OrientationHorizontal)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"el-1", "el-2", "el-4", "el-3"}, elementIDs(out))
	assert.Equal(t, "row-5", out[2].RowID)
	assert.Equal(t, "row-5", out[3].RowID)
	assert.Equal(t, "row-4", out[1].RowID)
	assert.Equal(t, "100%", out[1].Width, "unrelated row untouched")
}

func TestPolicy_VerticalToHorizontalMintsUnusedRow(t *testing.T) {
	start := []model.Element{horizontal("a", "row-1"), vertical("b")}

	out := newTestPolicy().ChangeOrientation(start, "b", model.OrientationHorizontal)
	require.Len(t, out, 2)
	assert.NotEqual(t, "row-1", out[1].RowID)
	assert.Equal(t, "100.0000%", out[1].Width)
	assert.Len(t, Group(out), 2)
}
