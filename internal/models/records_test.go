package models_test

import (
	"time"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeTrimAndCurrency() {
	income := suite.createTestIncome(models.Income{
		Name:          "  Main job ",
		Currency:      " eur",
		MonthlyAmount: decimal.NewFromInt(100000),
	})

	var stored models.Income
	suite.Require().Nil(models.DB.First(&stored, income.ID).Error)
	suite.Assert().Equal("Main job", stored.Name)
	suite.Assert().Equal("EUR", stored.Currency)
	suite.Assert().True(stored.MonthlyAmount.Equal(decimal.NewFromInt(100000)))

	f := stored.Finance()
	suite.Assert().Equal(income.ID, f.ID)
	suite.Require().NotNil(f.Salary)
	suite.Assert().Equal(25, f.Salary.AdvanceDay)
	suite.Assert().Equal(10, f.Salary.SalaryDay)
	suite.Assert().True(f.TotalMonthlyIncome().Equal(decimal.NewFromInt(100000)))
}

func (suite *TestSuiteStandard) TestBonusFinance() {
	start := types.NewDate(2025, time.March, 31)
	bonus := models.Bonus{
		Name:   " Quarterly ",
		Amount: decimal.NewFromInt(5000),
		Type:   finance.BonusRecurring,
		Period: finance.BonusQuarterly,
		Start:  &start,
	}
	suite.Require().Nil(models.DB.Create(&bonus).Error)

	var stored models.Bonus
	suite.Require().Nil(models.DB.First(&stored, bonus.ID).Error)
	suite.Assert().Equal("Quarterly", stored.Name)

	f := stored.Finance()
	suite.Assert().Equal(finance.BonusQuarterly, f.Period)
	suite.Assert().Equal(start, *f.Start)
	suite.Assert().Nil(f.End)
}

func (suite *TestSuiteStandard) TestExpenseFinance() {
	expense := suite.createTestExpense(models.Expense{
		Name:   "Household",
		Wallet: decimal.NewFromInt(31000),
		Items: []models.ExpenseItem{
			{Name: " Rent ", Amount: decimal.NewFromInt(40000), Day: ptr(3)},
			{Name: "Groceries", Amount: decimal.NewFromInt(15000)},
			{Name: "Gift", Amount: decimal.NewFromInt(3000), Additional: true, Comment: " Birthday "},
		},
	})

	var stored models.Expense
	suite.Require().Nil(models.DB.Preload("Items").First(&stored, expense.ID).Error)
	suite.Require().Len(stored.Items, 3)

	f := stored.Finance()
	suite.Assert().Len(f.Categories, 2)
	suite.Assert().Len(f.Additional, 1)
	suite.Assert().Equal("Birthday", f.Additional[0].Comment)
	suite.Assert().True(f.TotalMonthlyExpense().Equal(decimal.NewFromInt(89000)), "Total is %s", f.TotalMonthlyExpense())
}

func (suite *TestSuiteStandard) TestExpenseDeleteCascades() {
	expense := suite.createTestExpense(models.Expense{
		Name:  "Household",
		Items: []models.ExpenseItem{{Name: "Rent", Amount: decimal.NewFromInt(40000), Day: ptr(3)}},
	})

	suite.Require().Nil(models.DB.Delete(&expense).Error)

	var count int64
	models.DB.Model(&models.ExpenseItem{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGoalTravelSubgoals() {
	goal := models.Goal{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(90000),
		TargetDate:   types.NewDate(2025, time.July, 1),
		Priority:     finance.PriorityImportant,
		Type:         finance.GoalTravel,
	}
	goal.SetTravelSubgoals(types.NewDate(2025, time.January, 1))
	suite.Require().Len(goal.TravelSubgoals, 3)
	suite.Require().Nil(models.DB.Create(&goal).Error)

	var stored models.Goal
	suite.Require().Nil(models.DB.First(&stored, goal.ID).Error)
	suite.Require().Len(stored.TravelSubgoals, 3)
	suite.Assert().Equal(finance.SubgoalTickets, stored.TravelSubgoals[0].Name)
	suite.Assert().Equal(types.NewDate(2025, time.April, 2), stored.TravelSubgoals[0].TargetDate)
	suite.Assert().True(stored.TravelSubgoals[2].Amount.Equal(decimal.NewFromInt(30000)))

	stored.Type = finance.GoalRegular
	stored.SetTravelSubgoals(types.NewDate(2025, time.January, 1))
	suite.Assert().Nil(stored.TravelSubgoals)
}

func (suite *TestSuiteStandard) TestGoalTrim() {
	goal := suite.createTestGoal(models.Goal{
		Name:         " Laptop  ",
		Note:         " For work ",
		TargetAmount: decimal.NewFromInt(1000),
	})

	var stored models.Goal
	suite.Require().Nil(models.DB.First(&stored, goal.ID).Error)
	suite.Assert().Equal("Laptop", stored.Name)
	suite.Assert().Equal("For work", stored.Note)
	suite.Assert().Nil(stored.ForecastDate)
}

func (suite *TestSuiteStandard) TestWishlistItemFinance() {
	item := suite.createTestWishlistItem(models.WishlistItem{
		Name:   " Headphones ",
		Amount: decimal.NewFromInt(10000),
		Saved:  decimal.NewFromInt(2500),
	})

	var stored models.WishlistItem
	suite.Require().Nil(models.DB.First(&stored, item.ID).Error)

	f := stored.Finance()
	suite.Assert().Equal("Headphones", f.Name)
	suite.Assert().True(f.Remaining().Equal(decimal.NewFromInt(7500)))
	suite.Assert().False(f.IsFunded())
}
