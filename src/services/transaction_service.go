package services

import (
	"time"

	"github.com/0pain01/Financial-Foresight/src/logger"
	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/processors"
	"github.com/0pain01/Financial-Foresight/src/security/validation"
)

type transactionServiceImpl struct {
	txRepo   TransactionRepository
	enricher *processors.Enricher
	expander *processors.Expander
	insights InsightService
}

// NewTransactionService wires the write-side pipeline: sanitation, metadata
// enrichment and recurrence expansion around the transaction repository.
// insights may be nil (tests); when present its cache is invalidated on
// every write.
func NewTransactionService(
	txRepo TransactionRepository,
	enricher *processors.Enricher,
	expander *processors.Expander,
	insights InsightService,
) TransactionService {
	return &transactionServiceImpl{
		txRepo:   txRepo,
		enricher: enricher,
		expander: expander,
		insights: insights,
	}
}

func (s *transactionServiceImpl) List(userID int64) ([]models.Transaction, error) {
	return s.txRepo.FindByUserID(userID)
}

// Create stores a new transaction for userID. Free-text fields are sanitized,
// empty derived tags are filled by the enricher, and qualifying recurring
// transactions are expanded into future instances sharing one recurring
// group key.
func (s *transactionServiceImpl) Create(userID int64, tx *models.Transaction) (*models.Transaction, error) {
	tx.UserID = userID
	tx.Description = validation.SanitizeText(tx.Description)
	tx.CreatedAt = time.Now()
	s.enricher.Enrich(tx)

	if err := s.txRepo.Save(tx); err != nil {
		return nil, err
	}

	if instances := s.expander.Expand(tx); len(instances) > 0 {
		for i := range instances {
			if err := s.txRepo.Save(&instances[i]); err != nil {
				return nil, err
			}
		}
		// Persist the group key generated during expansion onto the source.
		if err := s.txRepo.Update(tx); err != nil {
			return nil, err
		}
		logger.L.Info("Expanded recurring transaction",
			"transactionID", tx.ID, "groupID", tx.RecurringGroupID, "instances", len(instances))
	}

	s.invalidate(userID)
	return tx, nil
}

// Update applies a partial patch to an existing transaction after verifying
// ownership, then re-runs enrichment so derived tags cleared by the patch are
// refilled consistently.
func (s *transactionServiceImpl) Update(userID, id int64, patch models.TransactionPatch) (*models.Transaction, error) {
	existing, err := s.ownedTransaction(userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(existing)
	existing.Description = validation.SanitizeText(existing.Description)
	s.enricher.Enrich(existing)

	if err := s.txRepo.Update(existing); err != nil {
		return nil, err
	}
	s.invalidate(userID)
	return existing, nil
}

func (s *transactionServiceImpl) Delete(userID, id int64) error {
	if _, err := s.ownedTransaction(userID, id); err != nil {
		return err
	}
	if err := s.txRepo.DeleteByID(id); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

// ImportRows stores pre-parsed statement rows. Each row runs through the same
// enrichment as a manual entry; rows that fail to save are skipped so one bad
// row cannot abort the import.
func (s *transactionServiceImpl) ImportRows(userID int64, rows []models.Transaction) (int, error) {
	imported := 0
	for i := range rows {
		row := rows[i]
		row.UserID = userID
		row.Description = validation.SanitizeText(row.Description)
		row.CreatedAt = time.Now()
		s.enricher.Enrich(&row)
		if err := s.txRepo.Save(&row); err != nil {
			logger.L.Warn("Skipping unimportable statement row", "userID", userID, "error", err)
			continue
		}
		imported++
	}
	s.invalidate(userID)
	return imported, nil
}

func (s *transactionServiceImpl) ownedTransaction(userID, id int64) (*models.Transaction, error) {
	existing, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	return existing, nil
}

func (s *transactionServiceImpl) invalidate(userID int64) {
	if s.insights != nil {
		s.insights.InvalidateUserCache(userID)
	}
}
