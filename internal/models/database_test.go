package models_test

import (
	"time"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestNotFound() {
	var goal models.Goal
	err := models.DB.First(&goal, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no goal matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestNotFoundPluralIes() {
	var item models.WishlistItem
	err := models.DB.First(&item, uuid.New()).Error

	suite.Assert().Equal("there is no wishlist item matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	var incomes []models.Income
	err := models.DB.Find(&incomes).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = models.DB.Create(&models.Credit{Name: "Car", MonthlyAmount: decimal.NewFromInt(100), Day: 1}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestUniqueNames() {
	suite.createTestGoal(models.Goal{Name: "Laptop", TargetAmount: decimal.NewFromInt(1000)})
	suite.createTestIncome(models.Income{Name: "Main job"})

	err := models.DB.Create(&models.Goal{
		Name:         "Laptop",
		TargetAmount: decimal.NewFromInt(1000),
		TargetDate:   types.NewDate(2026, time.June, 1),
		Priority:     finance.PriorityCritical,
		Type:         finance.GoalRegular,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrGoalNameNotUnique)

	err = models.DB.Create(&models.Income{
		Name:              "Main job",
		AdvanceDay:        1,
		AdvancePercentage: decimal.NewFromInt(100),
		SalaryDay:         15,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeNameNotUnique)
}

func (suite *TestSuiteStandard) TestExpenseItemWithoutExpense() {
	err := models.DB.Create(&models.ExpenseItem{
		ExpenseID: uuid.New(),
		Name:      "Rent",
		Amount:    decimal.NewFromInt(40000),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestValidationErrorRollsBack() {
	err := models.DB.Create(&models.Credit{Name: "Car", Day: 5}).Error
	suite.Assert().ErrorIs(err, models.ErrCreditAmountNotPositive)

	var count int64
	models.DB.Model(&models.Credit{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}
