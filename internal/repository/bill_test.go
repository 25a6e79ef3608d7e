package repository_test

import (
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBillSaveAssignsID() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1, Amount: decimal.NewFromFloat(42.5)})
	assert.NotZero(suite.T(), bill.ID)

	reloaded, ok := suite.bills.FindByID(bill.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), bill.OwnerID, reloaded.OwnerID)
	assert.True(suite.T(), reloaded.Amount.Equal(decimal.NewFromFloat(42.5)))
}

func (suite *TestSuiteStandard) TestBillFindByIDInvalid() {
	_, ok := suite.bills.FindByID(0)
	assert.False(suite.T(), ok)

	_, ok = suite.bills.FindByID(-3)
	assert.False(suite.T(), ok)

	_, ok = suite.bills.FindByID(1234)
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestBillFindByIDEmbedsEvent() {
	event := suite.createTestEvent(models.Event{Name: "Dining"})
	bill := suite.createTestBill(models.Bill{OwnerID: 1, EventID: event.ID})

	reloaded, ok := suite.bills.FindByID(bill.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), event.ID, reloaded.Event.ID)
	assert.Equal(suite.T(), "Dining", reloaded.Event.Name)
}

func (suite *TestSuiteStandard) TestBillFindByIDDanglingEvent() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1, EventID: 854})

	// A vanished event must not fail the lookup
	reloaded, ok := suite.bills.FindByID(bill.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), models.Event{}, reloaded.Event)
}

func (suite *TestSuiteStandard) TestBillFindByIDEmbedsNewestAnnotation() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1})

	_ = suite.createTestAnnotation(models.Annotation{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(1)},
		BillID:       bill.ID,
		Content:      "old",
	})
	newest := suite.createTestAnnotation(models.Annotation{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(2)},
		BillID:       bill.ID,
		Content:      "new",
	})

	bill.HasAnnotation = true
	require.True(suite.T(), suite.bills.Save(&bill))

	reloaded, ok := suite.bills.FindByID(bill.ID)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), newest.ID, reloaded.Annotation.ID)
	assert.Equal(suite.T(), "new", reloaded.Annotation.Content)
}

func (suite *TestSuiteStandard) TestBillQueryByOwnerAndEvent() {
	event := suite.createTestEvent(models.Event{Name: "Dining"})
	other := suite.createTestEvent(models.Event{Name: "Transport"})

	match := suite.createTestBill(models.Bill{OwnerID: 1, EventID: event.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: 1, EventID: other.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: 2, EventID: event.ID})

	found := suite.bills.QueryByOwnerAndEvent(1, event.ID)
	assert.Len(suite.T(), found, 1)
	assert.Equal(suite.T(), match.ID, found[0].ID)
}

func (suite *TestSuiteStandard) TestBillQueryByEventName() {
	event := suite.createTestEvent(models.Event{Name: "Dining"})

	_ = suite.createTestBill(models.Bill{OwnerID: 1, EventID: event.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: 2, EventID: event.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: 2})

	assert.Len(suite.T(), suite.bills.QueryByEventName("Dining"), 2)
	assert.Len(suite.T(), suite.bills.QueryByEventName("Unknown"), 0)
	assert.Len(suite.T(), suite.bills.QueryByEventName(""), 0)
}

func (suite *TestSuiteStandard) TestBillQueryByTimeInclusiveBounds() {
	early := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(1)},
		OwnerID:      1,
	})
	late := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(5)},
		OwnerID:      1,
	})
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(9)},
		OwnerID:      1,
	})
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(3)},
		OwnerID:      2,
	})

	// Both range ends are inclusive
	found := suite.bills.QueryByTime(1, testDate(1), testDate(5))
	assert.Len(suite.T(), found, 2)
	ids := []int64{found[0].ID, found[1].ID}
	assert.Contains(suite.T(), ids, early.ID)
	assert.Contains(suite.T(), ids, late.ID)
}

func (suite *TestSuiteStandard) TestBillQueryByTimeNonUTCCreation() {
	shanghai := time.FixedZone("CST", 8*60*60)

	// 20:00 +08:00 is 12:00 UTC, exactly on both range ends
	bill := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: time.Date(2024, 3, 5, 20, 0, 0, 0, shanghai)},
		OwnerID:      1,
	})

	found := suite.bills.QueryByTime(1, testDate(5), testDate(5))
	require.Len(suite.T(), found, 1)
	assert.Equal(suite.T(), bill.ID, found[0].ID)
}

func (suite *TestSuiteStandard) TestBillQueryByTimeRangeAllOwners() {
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(1)},
		OwnerID:      1,
	})
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(2)},
		OwnerID:      2,
	})

	assert.Len(suite.T(), suite.bills.QueryByTimeRange(testDate(1), testDate(2)), 2)
	assert.Len(suite.T(), suite.bills.QueryByTimeRange(testDate(3), testDate(4)), 0)
}

func (suite *TestSuiteStandard) TestBillQueryByTimeInOrder() {
	third := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(8)},
		OwnerID:      1,
	})
	first := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(2)},
		OwnerID:      1,
	})
	second := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(4)},
		OwnerID:      1,
	})

	found := suite.bills.QueryByTimeInOrder(testDate(1), testDate(9))
	assert.Len(suite.T(), found, 3)
	assert.Equal(suite.T(), first.ID, found[0].ID)
	assert.Equal(suite.T(), second.ID, found[1].ID)
	assert.Equal(suite.T(), third.ID, found[2].ID)
}

func (suite *TestSuiteStandard) TestBillQueryByTimeAndEventInOrderTieBreak() {
	// All bills share the same timestamp, ordering falls back to event id
	high := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(4)},
		OwnerID:      1,
		EventID:      30,
	})
	low := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(4)},
		OwnerID:      1,
		EventID:      10,
	})
	mid := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(4)},
		OwnerID:      1,
		EventID:      20,
	})
	earlier := suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(2)},
		OwnerID:      1,
		EventID:      99,
	})

	found := suite.bills.QueryByTimeAndEventInOrder(testDate(1), testDate(9))
	assert.Len(suite.T(), found, 4)
	assert.Equal(suite.T(), earlier.ID, found[0].ID)
	assert.Equal(suite.T(), low.ID, found[1].ID)
	assert.Equal(suite.T(), mid.ID, found[2].ID)
	assert.Equal(suite.T(), high.ID, found[3].ID)
}

func (suite *TestSuiteStandard) TestBillQueryByPhone() {
	owner := suite.createTestUser(models.User{Phone: "13800000001"})
	_ = suite.createTestBill(models.Bill{OwnerID: owner.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: owner.ID})
	_ = suite.createTestBill(models.Bill{OwnerID: owner.ID + 1})

	assert.Len(suite.T(), suite.bills.QueryByPhone("13800000001"), 2)
	assert.Len(suite.T(), suite.bills.QueryByPhone("10000000000"), 0)
	assert.Len(suite.T(), suite.bills.QueryByPhone(""), 0)
}

func (suite *TestSuiteStandard) TestBillSumByTime() {
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(1)},
		OwnerID:      1,
		Amount:       decimal.NewFromFloat(10.5),
	})
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(2)},
		OwnerID:      2,
		Amount:       decimal.NewFromFloat(4.5),
	})
	_ = suite.createTestBill(models.Bill{
		DefaultModel: models.DefaultModel{CreatedAt: testDate(9)},
		OwnerID:      1,
		Amount:       decimal.NewFromFloat(100),
	})

	sum := suite.bills.SumByTime(testDate(1), testDate(2))
	assert.True(suite.T(), sum.Equal(decimal.NewFromFloat(15)), "sum is %s", sum)

	sum = suite.bills.SumByTime(testDate(20), testDate(25))
	assert.True(suite.T(), sum.Equal(decimal.Zero), "empty range sum is %s", sum)
}

func (suite *TestSuiteStandard) TestBillSaveAnnotated() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1})
	annotation := models.Annotation{BillID: bill.ID, Content: "note", AuthorID: 3}

	assert.True(suite.T(), suite.bills.SaveAnnotated(&bill, &annotation))
	assert.NotZero(suite.T(), annotation.ID)
	assert.True(suite.T(), bill.HasAnnotation)

	reloaded, ok := suite.bills.FindByID(bill.ID)
	assert.True(suite.T(), ok)
	assert.True(suite.T(), reloaded.HasAnnotation)
	assert.Equal(suite.T(), "note", reloaded.Annotation.Content)
	assert.Equal(suite.T(), annotation.ID, reloaded.Annotation.ID)
}

func (suite *TestSuiteStandard) TestBillSaveAnnotatedClosedDB() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1})
	annotation := models.Annotation{BillID: bill.ID, Content: "note"}

	suite.CloseDB()
	assert.False(suite.T(), suite.bills.SaveAnnotated(&bill, &annotation))
}

func (suite *TestSuiteStandard) TestBillSaveAnnotatedRollsBackAnnotation() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1})
	annotation := models.Annotation{BillID: bill.ID, Content: "note"}

	// Fail only the bill update, after the annotation insert succeeded
	// inside the transaction
	require.Nil(suite.T(), suite.db.Migrator().DropTable(&models.Bill{}))

	assert.False(suite.T(), suite.bills.SaveAnnotated(&bill, &annotation))
	assert.Len(suite.T(), suite.annotations.FindByBillID(bill.ID), 0,
		"annotation must not survive a failed bill update")
}

func (suite *TestSuiteStandard) TestBillRemoveCascadesAnnotations() {
	bill := suite.createTestBill(models.Bill{OwnerID: 1})
	annotation := models.Annotation{BillID: bill.ID, Content: "note"}
	require.True(suite.T(), suite.bills.SaveAnnotated(&bill, &annotation))

	assert.True(suite.T(), suite.bills.Remove(bill.ID))

	_, ok := suite.bills.FindByID(bill.ID)
	assert.False(suite.T(), ok)
	assert.Len(suite.T(), suite.annotations.FindByBillID(bill.ID), 0, "annotations must cascade with their bill")
}

func (suite *TestSuiteStandard) TestBillRemoveIdempotent() {
	// A missing row counts as success
	assert.True(suite.T(), suite.bills.Remove(4913))
	assert.True(suite.T(), suite.bills.Remove(0))
}
