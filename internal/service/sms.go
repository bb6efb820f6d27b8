package service

import (
	"context"

	"github.com/budgetbuddy/backend/internal/model"
	"github.com/budgetbuddy/backend/internal/sms"
)

// ParseSMS runs the bank-SMS parser over a message and annotates the result
// with the detected bank and a suggested category. Returns nil when the
// message is not a recognizable bank transaction.
func (s *FinanceService) ParseSMS(ctx context.Context, body, sender string) (*model.SMSTransaction, string, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, "", err
	}
	if body == "" {
		return nil, "", invalidArgument("message body is required")
	}
	if !sms.IsBankMessage(body) {
		return nil, "", nil
	}
	tx := sms.ParseTransaction(body, sender)
	if tx == nil {
		return nil, "", nil
	}
	tx.BankName = sms.BankName(sender, body)
	suggested := sms.SuggestCategory(tx.Merchant, body)
	return tx, suggested, nil
}

// ConfirmSMSTransaction turns a parsed SMS candidate into a stored
// transaction under the given category. The merchant name is cleaned for
// display before persisting.
func (s *FinanceService) ConfirmSMSTransaction(ctx context.Context, tx *model.SMSTransaction, categoryID string) (*model.Transaction, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, invalidArgument("sms transaction is required")
	}
	if categoryID == "" {
		return nil, invalidArgument("category is required to confirm an sms transaction")
	}

	merchant := FormatMerchantName(tx.Merchant)
	description := merchant
	if description == "" {
		description = "Bank transaction"
	}

	return s.AddTransaction(ctx, &model.Transaction{
		Type:          tx.Type,
		Amount:        tx.Amount,
		CategoryID:    categoryID,
		Description:   description,
		Merchant:      merchant,
		BankAccountID: tx.BankName,
		Date:          tx.Timestamp,
		AutoDetected:  true,
	})
}
