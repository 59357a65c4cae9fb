package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRowsInterleavesFiscalYears(t *testing.T) {
	root := sampleTree(t)

	rows := root.ToRows()
	require.Len(t, rows, 4)

	assert.Equal(t, "MINISTRY", rows[0]["budget_type"])
	assert.Equal(t, "กระทรวงการคลัง", rows[0]["name_1"])
	assert.Nil(t, rows[0]["amount"])

	assert.Equal(t, "BUDGET_PLAN", rows[1]["budget_type"])
	assert.Equal(t, "แผนงานพื้นฐาน", rows[1]["name_2"])

	assert.Equal(t, "BUDGET_DETAIL", rows[2]["budget_type"])
	assert.Equal(t, "รายการงบ 1", rows[2]["name_3"])

	// The fiscal-year row follows its owner directly, before any child row,
	// and carries the owner's depth.
	assert.Equal(t, RowTypeFiscalYear, rows[3]["budget_type"])
	assert.Equal(t, "ปี 2563-2564 ตั้งงบประมาณ 300 บาท", rows[3]["name_3"])
	assert.Equal(t, 2563, rows[3]["fiscal_year"])
	assert.Equal(t, 2564, rows[3]["fiscal_year_end"])
	assert.Equal(t, 300.0, rows[3]["amount"])
}

func TestToRowsCarriesDiagnostic(t *testing.T) {
	parent, _ := NewBudgetItem("BUDGET_DETAIL", "parent", Amount(1000), "doc", 1)
	for i := 0; i < 2; i++ {
		child, _ := NewBudgetItem("BUDGET_DETAIL", "child", Amount(1000), "doc", 1)
		parent.AddChild(child)
	}

	rows := parent.ToRows()
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0]["error_message"], "sum of children is 2000")
	assert.Empty(t, rows[1]["error_message"])
}

func TestBuildTreeByRowsRoundTrip(t *testing.T) {
	original := sampleTree(t)

	rebuilt, err := BuildTreeByRows(original.ToRows())
	require.NoError(t, err)
	assert.Equal(t, original, rebuilt)
}

func TestBuildTreeByRowsCollapsesSingletonRoot(t *testing.T) {
	rows := []Row{
		{"budget_type": "MINISTRY", "name_1": "only", "amount": nil, "document": "d", "page": 0},
	}
	root, err := BuildTreeByRows(rows)
	require.NoError(t, err)
	// The synthetic ROOT has one child, so the child itself comes back.
	assert.Equal(t, TypeMinistry, root.Type)
	assert.Equal(t, "only", root.Name)
}

func TestBuildTreeByRowsKeepsRootWithSiblings(t *testing.T) {
	rows := []Row{
		{"budget_type": "MINISTRY", "name_1": "a", "amount": nil, "document": "d", "page": 0},
		{"budget_type": "MINISTRY", "name_1": "b", "amount": nil, "document": "d", "page": 0},
	}
	root, err := BuildTreeByRows(rows)
	require.NoError(t, err)
	assert.Equal(t, TypeRoot, root.Type)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].Name)
	assert.Equal(t, "b", root.Children[1].Name)
}

func TestBuildTreeByRowsFiscalYearNeedsParent(t *testing.T) {
	rows := []Row{
		{
			"budget_type": RowTypeFiscalYear, "name_1": "ปี 2563",
			"fiscal_year": 2563, "fiscal_year_end": 2563, "amount": 10.0,
		},
	}
	_, err := BuildTreeByRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parent")
}

func TestBuildTreeByRowsFiscalYearRequiresYearFields(t *testing.T) {
	rows := []Row{
		{"budget_type": "MINISTRY", "name_1": "m", "amount": nil, "document": "d", "page": 0},
		{"budget_type": RowTypeFiscalYear, "name_1": "ปี 2563", "amount": 10.0},
	}
	_, err := BuildTreeByRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fiscal_year")
}

func TestBuildTreeByRowsEmptyInput(t *testing.T) {
	_, err := BuildTreeByRows(nil)
	assert.Error(t, err)
}

func TestBuildTreeByRowsRowWithoutDepthKey(t *testing.T) {
	rows := []Row{
		{"budget_type": "MINISTRY", "amount": nil, "document": "d", "page": 0},
	}
	_, err := BuildTreeByRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth key")
}

func TestBuildTreeByRowsSiblingAtSameDepthPopsAncestry(t *testing.T) {
	rows := []Row{
		{"budget_type": "BUDGET_PLAN", "name_1": "plan", "amount": nil, "document": "d", "page": 0},
		{"budget_type": "BUDGET_DETAIL", "name_2": "a", "amount": 1.0, "document": "d", "page": 0},
		{"budget_type": "BUDGET_DETAIL", "name_3": "a.1", "amount": 1.0, "document": "d", "page": 0},
		{"budget_type": "BUDGET_DETAIL", "name_2": "b", "amount": 2.0, "document": "d", "page": 0},
	}
	root, err := BuildTreeByRows(rows)
	require.NoError(t, err)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].Name)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "a.1", root.Children[0].Children[0].Name)
	assert.Equal(t, "b", root.Children[1].Name)
	assert.Empty(t, root.Children[1].Children)
}
