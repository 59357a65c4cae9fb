package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvFixtureTree(t *testing.T) *BudgetItem {
	t.Helper()

	ministry, _ := NewBudgetItem("MINISTRY", "กระทรวงการคลัง", Amount(0), "2563.3.1", 0)
	unit, _ := NewBudgetItem("BUDGETARY_UNIT", "หน่วยรับงบ", Amount(0), "2563.3.1", 10)
	plan, _ := NewBudgetItem("BUDGET_PLAN", "แผนงาน", Amount(0), "2563.3.1", 11)
	group, _ := NewBudgetItem("BUDGET_DETAIL", "รายการงบ 1", Amount(300), "2563.3.1", 12)
	leafA, _ := NewBudgetItem("BUDGET_DETAIL", "รายการงบ 2", Amount(100), "2563.3.1", 12)
	leafB, _ := NewBudgetItem("BUDGET_DETAIL", "รายการงบ 3", Amount(200), "2563.3.1", 12)

	group.AddChild(leafA)
	group.AddChild(leafB)
	plan.AddChild(group)
	unit.AddChild(plan)
	ministry.AddChild(unit)
	return ministry
}

func TestBuildCSVRowsLeavesOnly(t *testing.T) {
	rows := BuildCSVRows(csvFixtureTree(t))
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "2563.3.1", first["REF_DOC"])
	assert.Equal(t, 12, first["REF_PAGE_NO"])
	assert.Equal(t, "กระทรวงการคลัง", first["MINISTRY"])
	assert.Equal(t, "หน่วยรับงบ", first["BUDGETARY_UNIT"])
	assert.Equal(t, "แผนงาน", first["BUDGET_PLAN"])
	assert.Equal(t, false, first["CROSS_FUNC?"])
	assert.Equal(t, "", first["OUTPUT"])
	assert.Equal(t, "", first["PROJECT"])
	assert.Equal(t, "รายการงบ 1", first["CATEGORY_LV1"])
	assert.Equal(t, "รายการงบ 2", first["ITEM_DESCRIPTION"])
	assert.Equal(t, 100.0, first["AMOUNT"])
	assert.Equal(t, false, first["OBLIGED?"])
	assert.Nil(t, first["FISCAL_YEAR"])

	assert.Equal(t, "รายการงบ 3", rows[1]["ITEM_DESCRIPTION"])
	assert.Equal(t, 200.0, rows[1]["AMOUNT"])
}

func TestBuildCSVRowsFiscalYearFanOut(t *testing.T) {
	tree := csvFixtureTree(t)
	leaf := tree.Children[0].Children[0].Children[0].Children[0]
	leaf.AddFiscalYearBudget(NewFiscalYearBudget("ปี 2563-2564 50 บาท", 2563, 2564, 50))

	rows := BuildCSVRows(tree)
	require.Len(t, rows, 3)

	assert.Equal(t, 2563, rows[0]["FISCAL_YEAR"])
	assert.Equal(t, 50.0, rows[0]["AMOUNT"])
	assert.Equal(t, true, rows[0]["OBLIGED?"])

	assert.Equal(t, 2564, rows[1]["FISCAL_YEAR"])
	assert.Equal(t, 50.0, rows[1]["AMOUNT"])

	// The sibling without allocations keeps its own amount.
	assert.Nil(t, rows[2]["FISCAL_YEAR"])
	assert.Equal(t, 200.0, rows[2]["AMOUNT"])
}

func TestBuildCSVRowsCrossFunctionalPlan(t *testing.T) {
	plan, _ := NewBudgetItem("BUDGET_PLAN", "แผนงานบูรณาการพัฒนาเมือง", nil, "doc", 1)
	leaf, _ := NewBudgetItem("BUDGET_DETAIL", "รายการ", nil, "doc", 2)
	plan.AddChild(leaf)

	rows := BuildCSVRows(plan)
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0]["CROSS_FUNC?"])
}

func TestBuildCSVRowsOutputColumn(t *testing.T) {
	output, _ := NewBudgetItem("OUTPUT", "ผลผลิตหลัก", nil, "doc", 1)
	leaf, _ := NewBudgetItem("BUDGET_DETAIL", "รายการ", Amount(9), "doc", 2)
	output.AddChild(leaf)

	rows := BuildCSVRows(output)
	require.Len(t, rows, 1)
	assert.Equal(t, "ผลผลิตหลัก", rows[0]["OUTPUT"])
	assert.Equal(t, "", rows[0]["PROJECT"])
}
