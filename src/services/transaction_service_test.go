package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/processors"
)

// fakeTxRepo is an in-memory TransactionRepository.
type fakeTxRepo struct {
	transactions []models.Transaction
	nextID       int64
}

func (r *fakeTxRepo) FindByUserID(userID int64) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) FindByID(id int64) (*models.Transaction, error) {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			tx := r.transactions[i]
			return &tx, nil
		}
	}
	return nil, nil
}

func (r *fakeTxRepo) Save(tx *models.Transaction) error {
	r.nextID++
	tx.ID = r.nextID
	r.transactions = append(r.transactions, *tx)
	return nil
}

func (r *fakeTxRepo) Update(tx *models.Transaction) error {
	for i := range r.transactions {
		if r.transactions[i].ID == tx.ID {
			r.transactions[i] = *tx
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeTxRepo) DeleteByID(id int64) error {
	for i := range r.transactions {
		if r.transactions[i].ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeInsights records cache invalidations.
type fakeInsights struct {
	InsightService
	invalidated []int64
}

func (f *fakeInsights) InvalidateUserCache(userID int64) {
	f.invalidated = append(f.invalidated, userID)
}

func newTestTransactionService(repo *fakeTxRepo, insights InsightService) TransactionService {
	return NewTransactionService(repo, processors.NewEnricher(), processors.NewExpander(6), insights)
}

func TestCreateEnrichesTransaction(t *testing.T) {
	repo := &fakeTxRepo{}
	insights := &fakeInsights{}
	svc := newTestTransactionService(repo, insights)

	created, err := svc.Create(1, &models.Transaction{
		Description: "Hospital Visit",
		Amount:      "200",
		Type:        models.TypeExpense,
		Date:        "2024-06-12",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.NotZero(t, created.ID)
	assert.Equal(t, processors.CategoryHealthcare, created.Category)
	assert.Equal(t, processors.IntentNecessary, created.IntentTag)
	assert.NotEmpty(t, created.GoalImpact)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, []int64{1}, insights.invalidated)
}

func TestCreateExpandsRecurringTransaction(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	created, err := svc.Create(1, &models.Transaction{
		Description:   "Monthly Rent",
		Amount:        "15000",
		Type:          models.TypeExpense,
		Date:          "2024-01-15",
		RepeatPattern: "monthly",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.RecurringGroupID)

	all, _ := repo.FindByUserID(1)
	require.Len(t, all, 7) // the source plus six future instances

	// The persisted source carries the group key generated during expansion.
	stored, _ := repo.FindByID(created.ID)
	assert.Equal(t, created.RecurringGroupID, stored.RecurringGroupID)

	for _, tx := range all[1:] {
		assert.Equal(t, created.ID, tx.ParentID)
		assert.Equal(t, created.RecurringGroupID, tx.RecurringGroupID)
	}
}

func TestCreateSanitizesDescription(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	created, err := svc.Create(1, &models.Transaction{
		Description: "Lunch <script>alert(1)</script>",
		Amount:      "100",
		Type:        models.TypeExpense,
		Date:        "2024-06-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lunch", created.Description)
}

func TestUpdateAppliesPatchAndReEnriches(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	created, err := svc.Create(1, &models.Transaction{
		Description: "Misc Purchase",
		Amount:      "100",
		Type:        models.TypeExpense,
		Date:        "2024-06-12",
	})
	require.NoError(t, err)

	newDesc := "Hospital Visit"
	emptyCategory := ""
	updated, err := svc.Update(1, created.ID, models.TransactionPatch{
		Description: &newDesc,
		Category:    &emptyCategory,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hospital Visit", updated.Description)
	assert.Equal(t, processors.CategoryHealthcare, updated.Category)
}

func TestUpdateOwnership(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	created, err := svc.Create(1, &models.Transaction{
		Description: "Misc Purchase", Amount: "100", Type: models.TypeExpense, Date: "2024-06-12",
	})
	require.NoError(t, err)

	_, err = svc.Update(2, created.ID, models.TransactionPatch{})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(1, 9999, models.TransactionPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	created, err := svc.Create(1, &models.Transaction{
		Description: "Misc Purchase", Amount: "100", Type: models.TypeExpense, Date: "2024-06-12",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, created.ID), ErrForbidden)
	require.NoError(t, svc.Delete(1, created.ID))

	remaining, _ := repo.FindByUserID(1)
	assert.Empty(t, remaining)
}

func TestImportRows(t *testing.T) {
	repo := &fakeTxRepo{}
	svc := newTestTransactionService(repo, &fakeInsights{})

	rows := []models.Transaction{
		{Description: "Cafe Mocha", Amount: "120", Type: models.TypeExpense, Date: "2024-06-10"},
		{Description: "Salary Credit", Amount: "50000", Type: models.TypeIncome, Date: "2024-06-01"},
	}
	imported, err := svc.ImportRows(1, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	stored, _ := repo.FindByUserID(1)
	require.Len(t, stored, 2)
	assert.Equal(t, processors.CategoryFoodAndDining, stored[0].Category)
	assert.Equal(t, processors.CategoryIncome, stored[1].Category)
}
