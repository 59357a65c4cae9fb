package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetType(t *testing.T) {
	for _, valid := range []string{
		"ROOT", "MINISTRY", "BUDGETARY_UNIT", "BUDGET_PLAN",
		"PROJECT", "OUTPUT", "BUDGET_DETAIL",
	} {
		got, err := ParseBudgetType(valid)
		require.NoError(t, err)
		assert.Equal(t, BudgetType(valid), got)
	}

	_, err := ParseBudgetType("MONASTERY")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MONASTERY")
}

func TestNewBudgetItemRejectsUnknownType(t *testing.T) {
	_, err := NewBudgetItem("NOT_A_TYPE", "x", nil, "doc", 1)
	assert.Error(t, err)
}

func TestCheckSumConsistent(t *testing.T) {
	parent, err := NewBudgetItem("BUDGET_DETAIL", "parent", Amount(300), "doc", 1)
	require.NoError(t, err)
	for _, v := range []float64{100, 200} {
		child, err := NewBudgetItem("BUDGET_DETAIL", "child", Amount(v), "doc", 1)
		require.NoError(t, err)
		parent.AddChild(child)
	}

	assert.NoError(t, parent.CheckSum())
	assert.Empty(t, parent.Diagnostic())
}

func TestCheckSumMismatchCitesChildrenSum(t *testing.T) {
	parent, _ := NewBudgetItem("BUDGET_DETAIL", "parent", Amount(1000), "doc", 1)
	for i := 0; i < 2; i++ {
		child, _ := NewBudgetItem("BUDGET_DETAIL", "child", Amount(1000), "doc", 1)
		parent.AddChild(child)
	}

	err := parent.CheckSum()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum of children is 2000")

	msg := parent.Diagnostic()
	assert.True(t, strings.HasPrefix(msg, "While checking sum:"))
	assert.Contains(t, msg, "sum of children is 2000")
}

func TestCheckSumStatedParentAbsentChild(t *testing.T) {
	parent, _ := NewBudgetItem("BUDGET_DETAIL", "parent", Amount(1000), "doc", 1)
	absent, _ := NewBudgetItem("BUDGET_DETAIL", "no-amount", nil, "doc", 1)
	parent.AddChild(absent)

	err := parent.CheckSum()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-amount")
	assert.Contains(t, err.Error(), "no stated amount")
}

func TestCheckSumAbsentParentStatedChild(t *testing.T) {
	parent, _ := NewBudgetItem("BUDGET_DETAIL", "parent", nil, "doc", 1)
	child, _ := NewBudgetItem("BUDGET_DETAIL", "child", Amount(5), "doc", 1)
	parent.AddChild(child)

	err := parent.CheckSum()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not stated")
	assert.Contains(t, err.Error(), "child")
}

func TestCheckSumLeafNeverFails(t *testing.T) {
	stated, _ := NewBudgetItem("BUDGET_DETAIL", "leaf", Amount(7), "doc", 1)
	assert.NoError(t, stated.CheckSum())

	absent, _ := NewBudgetItem("BUDGET_DETAIL", "leaf", nil, "doc", 1)
	assert.NoError(t, absent.CheckSum())
}

func TestZeroAmountIsDistinctFromAbsent(t *testing.T) {
	zero, _ := NewBudgetItem("BUDGET_DETAIL", "zero", Amount(0), "doc", 1)
	absent, _ := NewBudgetItem("BUDGET_DETAIL", "absent", nil, "doc", 1)

	require.NotNil(t, zero.Amount)
	assert.Equal(t, 0.0, *zero.Amount)
	assert.Nil(t, absent.Amount)
}

func TestFiscalYearBudgetString(t *testing.T) {
	single := NewFiscalYearBudget("ปี 2563", 2563, 0, 100)
	assert.Equal(t, 2563, single.YearEnd)
	assert.Equal(t, "2563", single.String())

	ranged := NewFiscalYearBudget("ปี 2563-2564", 2563, 2564, 100)
	assert.Equal(t, "2563 - 2564", ranged.String())
}

func TestWalkPreOrderWithAncestors(t *testing.T) {
	root, _ := NewBudgetItem("BUDGET_PLAN", "plan", nil, "doc", 1)
	a, _ := NewBudgetItem("BUDGET_DETAIL", "a", nil, "doc", 1)
	b, _ := NewBudgetItem("BUDGET_DETAIL", "b", nil, "doc", 1)
	aa, _ := NewBudgetItem("BUDGET_DETAIL", "aa", nil, "doc", 1)
	a.AddChild(aa)
	root.AddChild(a)
	root.AddChild(b)

	var order []string
	var aaAncestors []string
	root.Walk(func(node *BudgetItem, ancestors []*BudgetItem) bool {
		order = append(order, node.Name)
		if node.Name == "aa" {
			for _, anc := range ancestors {
				aaAncestors = append(aaAncestors, anc.Name)
			}
		}
		return true
	})

	assert.Equal(t, []string{"plan", "a", "aa", "b"}, order)
	assert.Equal(t, []string{"plan", "a"}, aaAncestors)
}
