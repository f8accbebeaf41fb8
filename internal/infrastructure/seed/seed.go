package seed

import (
	"fmt"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/domain/user"
)

// Validate rejects malformed records before they can reach an aggregate:
// unknown status strings, negative amounts, duplicate or dangling ids.
func Validate(ds Dataset) error {
	userIDs := map[string]bool{}
	for _, u := range ds.Users {
		if u.UserID == "" || userIDs[u.UserID] {
			return fmt.Errorf("seed: duplicate or empty user id %q", u.UserID)
		}
		userIDs[u.UserID] = true
		if !u.Role.Valid() {
			return fmt.Errorf("seed: user %s: unknown role %q", u.UserID, u.Role)
		}
		if !u.Status.Valid() {
			return fmt.Errorf("seed: user %s: unknown status %q", u.UserID, u.Status)
		}
	}

	loanIDs := map[string]bool{}
	for _, l := range ds.Loans {
		if l.LoanID == "" || loanIDs[l.LoanID] {
			return fmt.Errorf("seed: duplicate or empty loan id %q", l.LoanID)
		}
		loanIDs[l.LoanID] = true
		if !l.Status.Valid() {
			return fmt.Errorf("seed: loan %s: %w: %q", l.LoanID, loan.ErrInvalidStatus, l.Status)
		}
		if l.RiskLevel != "" && !l.RiskLevel.Valid() {
			return fmt.Errorf("seed: loan %s: %w: %q", l.LoanID, loan.ErrInvalidRisk, l.RiskLevel)
		}
		if l.Amount <= 0 {
			return fmt.Errorf("seed: loan %s: non-positive amount %v", l.LoanID, l.Amount)
		}
		if l.InterestRate < 0 {
			return fmt.Errorf("seed: loan %s: negative interest rate %v", l.LoanID, l.InterestRate)
		}
		if l.TermMonths <= 0 {
			return fmt.Errorf("seed: loan %s: non-positive term %d", l.LoanID, l.TermMonths)
		}
		if l.PaidAmount < 0 || l.RemainingAmount < 0 || l.TotalRepayment < l.Amount {
			return fmt.Errorf("seed: loan %s: inconsistent repayment figures", l.LoanID)
		}
		if !userIDs[l.BorrowerID] || !userIDs[l.LenderID] {
			return fmt.Errorf("seed: loan %s: unknown borrower or lender", l.LoanID)
		}
	}

	payIDs := map[string]bool{}
	for _, p := range ds.Payments {
		if p.PaymentID == "" || payIDs[p.PaymentID] {
			return fmt.Errorf("seed: duplicate or empty payment id %q", p.PaymentID)
		}
		payIDs[p.PaymentID] = true
		if !p.Status.Valid() {
			return fmt.Errorf("seed: payment %s: %w: %q", p.PaymentID, payment.ErrInvalidStatus, p.Status)
		}
		if !loanIDs[p.LoanID] {
			return fmt.Errorf("seed: payment %s: unknown loan %q", p.PaymentID, p.LoanID)
		}
		if p.Amount < 0 {
			return fmt.Errorf("seed: payment %s: negative amount %v", p.PaymentID, p.Amount)
		}
		if p.Status == payment.StatusPaid && p.Principal+p.Interest != p.Amount {
			return fmt.Errorf("seed: payment %s: principal+interest != amount", p.PaymentID)
		}
	}

	txnIDs := map[string]bool{}
	for _, t := range ds.Transactions {
		if t.TransactionID == "" || txnIDs[t.TransactionID] {
			return fmt.Errorf("seed: duplicate or empty transaction id %q", t.TransactionID)
		}
		txnIDs[t.TransactionID] = true
		if !t.Type.Valid() {
			return fmt.Errorf("seed: transaction %s: %w: %q", t.TransactionID, transaction.ErrInvalidType, t.Type)
		}
		if !t.Status.Valid() {
			return fmt.Errorf("seed: transaction %s: %w: %q", t.TransactionID, transaction.ErrInvalidStatus, t.Status)
		}
		if !loanIDs[t.LoanID] {
			return fmt.Errorf("seed: transaction %s: unknown loan %q", t.TransactionID, t.LoanID)
		}
		if t.Amount < 0 {
			return fmt.Errorf("seed: transaction %s: negative amount %v", t.TransactionID, t.Amount)
		}
	}
	return nil
}

// Apply migrates the schema and inserts the dataset in declaration order,
// so primary-key order is dataset order.
func Apply(db *gorm.DB, ds Dataset) error {
	if err := Validate(ds); err != nil {
		return err
	}
	if err := db.AutoMigrate(&user.User{}, &loan.Loan{}, &payment.Payment{}, &transaction.Transaction{}); err != nil {
		return fmt.Errorf("seed: migrate: %w", err)
	}
	if len(ds.Users) > 0 {
		if err := db.Create(&ds.Users).Error; err != nil {
			return fmt.Errorf("seed: users: %w", err)
		}
	}
	if len(ds.Loans) > 0 {
		if err := db.Create(&ds.Loans).Error; err != nil {
			return fmt.Errorf("seed: loans: %w", err)
		}
	}
	if len(ds.Payments) > 0 {
		if err := db.Create(&ds.Payments).Error; err != nil {
			return fmt.Errorf("seed: payments: %w", err)
		}
	}
	if len(ds.Transactions) > 0 {
		if err := db.Create(&ds.Transactions).Error; err != nil {
			return fmt.Errorf("seed: transactions: %w", err)
		}
	}
	return nil
}
