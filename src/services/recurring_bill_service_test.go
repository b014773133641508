package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

// fakeBillRepo is an in-memory BillRepository.
type fakeBillRepo struct {
	bills  []models.Bill
	nextID int64
}

func (r *fakeBillRepo) FindByUserID(userID int64) ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range r.bills {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) FindByID(id int64) (*models.Bill, error) {
	for i := range r.bills {
		if r.bills[i].ID == id {
			b := r.bills[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) Save(bill *models.Bill) error {
	r.nextID++
	bill.ID = r.nextID
	r.bills = append(r.bills, *bill)
	return nil
}

func (r *fakeBillRepo) Update(bill *models.Bill) error {
	for i := range r.bills {
		if r.bills[i].ID == bill.ID {
			r.bills[i] = *bill
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeBillRepo) DeleteByID(id int64) error {
	for i := range r.bills {
		if r.bills[i].ID == id {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestAutoPopulateNextCycleBills(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{
		UserID:      1,
		Name:        "Internet",
		Amount:      "599",
		Category:    "Utilities",
		DueDate:     "2024-12-25",
		Status:      models.BillStatusPending,
		IsRecurring: true,
	}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	bills, _ := repo.FindByUserID(1)
	require.Len(t, bills, 2)
	rolled := bills[1]
	assert.Equal(t, "2025-01-25", rolled.DueDate)
	assert.Equal(t, models.BillStatusPending, rolled.Status)
	assert.True(t, rolled.IsRecurring)
	assert.Equal(t, "Internet", rolled.Name)
	assert.Equal(t, "599", rolled.Amount)
}

func TestAutoPopulateIsIdempotentPerCycle(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{
		UserID:      1,
		Name:        "Internet",
		Amount:      "599",
		Category:    "Utilities",
		DueDate:     "2024-12-25",
		IsRecurring: true,
	}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	// The second run rolls the 2025-01-25 instance into February but must
	// not duplicate the January one.
	bills, _ := repo.FindByUserID(1)
	var januaryCount int
	for _, b := range bills {
		if b.DueDate == "2025-01-25" {
			januaryCount++
		}
	}
	assert.Equal(t, 1, januaryCount)
}

func TestAutoPopulateAutoPayMarksPaid(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{
		UserID:         1,
		Name:           "Streaming",
		Amount:         "199",
		DueDate:        "2024-06-10",
		IsRecurring:    true,
		AutoPayEnabled: true,
	}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	bills, _ := repo.FindByUserID(1)
	require.Len(t, bills, 2)
	assert.Equal(t, models.BillStatusPaid, bills[1].Status)
	assert.True(t, bills[1].AutoPayEnabled)
}

func TestAutoPopulateClampsMonthEnd(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{
		UserID:      1,
		Name:        "Rent",
		Amount:      "15000",
		DueDate:     "2025-01-31",
		IsRecurring: true,
	}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	bills, _ := repo.FindByUserID(1)
	require.Len(t, bills, 2)
	assert.Equal(t, "2025-02-28", bills[1].DueDate)
}

func TestAutoPopulateSkipsNonRecurringAndUnparsable(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{UserID: 1, Name: "One-off", Amount: "50", DueDate: "2024-06-10"}))
	require.NoError(t, repo.Save(&models.Bill{UserID: 1, Name: "Broken", Amount: "75", DueDate: "someday", IsRecurring: true}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	bills, _ := repo.FindByUserID(1)
	assert.Len(t, bills, 2)
}

func TestAutoPopulateScopedToUser(t *testing.T) {
	repo := &fakeBillRepo{}
	require.NoError(t, repo.Save(&models.Bill{UserID: 1, Name: "Internet", Amount: "599", DueDate: "2024-06-10", IsRecurring: true}))
	require.NoError(t, repo.Save(&models.Bill{UserID: 2, Name: "Internet", Amount: "599", DueDate: "2024-06-10", IsRecurring: true}))

	svc := NewRecurringBillService(repo)
	require.NoError(t, svc.AutoPopulateNextCycleBills(1))

	user2Bills, _ := repo.FindByUserID(2)
	assert.Len(t, user2Bills, 1)
}
