package seed

import (
	"time"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/domain/user"
)

// Dataset is the complete in-memory ledger the service runs on. It is
// seeded once at startup and never written to again.
type Dataset struct {
	Users        []user.User
	Loans        []loan.Loan
	Payments     []payment.Payment
	Transactions []transaction.Transaction
}

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dp(s string) *time.Time {
	t := d(s)
	return &t
}

func score(n int) *int { return &n }

// Fixture returns the reference dataset: 8 users, 6 loans, 21 scheduled
// payments and 22 ledger transactions.
func Fixture() Dataset {
	return Dataset{
		Users: []user.User{
			{UserID: "U001", Name: "Admin User", Email: "admin@loanapp.com", Role: user.RoleAdmin, Status: user.StatusActive, CreatedAt: d("2024-01-01")},
			{UserID: "U002", Name: "Sarah Johnson", Email: "sarah.j@email.com", Role: user.RoleLender, Status: user.StatusActive, CreatedAt: d("2024-02-15")},
			{UserID: "U003", Name: "Michael Chen", Email: "michael.c@email.com", Role: user.RoleBorrower, Status: user.StatusActive, CreatedAt: d("2024-03-10")},
			{UserID: "U004", Name: "Emma Davis", Email: "emma.d@email.com", Role: user.RoleLender, Status: user.StatusActive, CreatedAt: d("2024-02-20")},
			{UserID: "U005", Name: "James Wilson", Email: "james.w@email.com", Role: user.RoleBorrower, Status: user.StatusActive, CreatedAt: d("2024-04-05")},
			{UserID: "U006", Name: "Robert Smith", Email: "robert.s@email.com", Role: user.RoleAnalyst, Status: user.StatusActive, CreatedAt: d("2024-01-10")},
			{UserID: "U007", Name: "Lisa Anderson", Email: "lisa.a@email.com", Role: user.RoleBorrower, Status: user.StatusActive, CreatedAt: d("2024-05-12")},
			{UserID: "U008", Name: "David Brown", Email: "david.b@email.com", Role: user.RoleLender, Status: user.StatusActive, CreatedAt: d("2024-03-01")},
		},
		Loans: []loan.Loan{
			{
				LoanID: "L001", BorrowerID: "U003", BorrowerName: "Michael Chen", LenderID: "U002", LenderName: "Sarah Johnson",
				Amount: 50000, InterestRate: 8.5, TermMonths: 36, Status: loan.StatusActive, Purpose: "Business Expansion",
				StartDate: d("2024-06-01"), EndDate: d("2027-06-01"),
				TotalRepayment: 58275, MonthlyPayment: 1619, PaidAmount: 12952, RemainingAmount: 45323,
				CreditScore: score(720), RiskLevel: loan.RiskLow,
			},
			{
				LoanID: "L002", BorrowerID: "U005", BorrowerName: "James Wilson", LenderID: "U004", LenderName: "Emma Davis",
				Amount: 25000, InterestRate: 10.0, TermMonths: 24, Status: loan.StatusActive, Purpose: "Home Renovation",
				StartDate: d("2025-01-01"), EndDate: d("2027-01-01"),
				TotalRepayment: 28050, MonthlyPayment: 1169, PaidAmount: 2338, RemainingAmount: 25712,
				CreditScore: score(680), RiskLevel: loan.RiskMedium,
			},
			{
				LoanID: "L003", BorrowerID: "U007", BorrowerName: "Lisa Anderson", LenderID: "U008", LenderName: "David Brown",
				Amount: 15000, InterestRate: 7.5, TermMonths: 12, Status: loan.StatusActive, Purpose: "Debt Consolidation",
				StartDate: d("2025-06-01"), EndDate: d("2026-06-01"),
				TotalRepayment: 15675, MonthlyPayment: 1306, PaidAmount: 9144, RemainingAmount: 6531,
				CreditScore: score(750), RiskLevel: loan.RiskLow,
			},
			{
				LoanID: "L004", BorrowerID: "U003", BorrowerName: "Michael Chen", LenderID: "U004", LenderName: "Emma Davis",
				Amount: 30000, InterestRate: 12.0, TermMonths: 18, Status: loan.StatusPending, Purpose: "Equipment Purchase",
				StartDate: d("2026-03-01"), EndDate: d("2027-09-01"),
				TotalRepayment: 33900, MonthlyPayment: 1883, PaidAmount: 0, RemainingAmount: 33900,
				CreditScore: score(720), RiskLevel: loan.RiskMedium,
			},
			{
				LoanID: "L005", BorrowerID: "U005", BorrowerName: "James Wilson", LenderID: "U002", LenderName: "Sarah Johnson",
				Amount: 75000, InterestRate: 9.0, TermMonths: 60, Status: loan.StatusApproved, Purpose: "Property Investment",
				StartDate: d("2026-03-01"), EndDate: d("2031-03-01"),
				TotalRepayment: 93750, MonthlyPayment: 1563, PaidAmount: 0, RemainingAmount: 93750,
				CreditScore: score(680), RiskLevel: loan.RiskMedium,
			},
			{
				LoanID: "L006", BorrowerID: "U007", BorrowerName: "Lisa Anderson", LenderID: "U002", LenderName: "Sarah Johnson",
				Amount: 10000, InterestRate: 6.5, TermMonths: 24, Status: loan.StatusCompleted, Purpose: "Education",
				StartDate: d("2024-01-01"), EndDate: d("2026-01-01"),
				TotalRepayment: 10700, MonthlyPayment: 446, PaidAmount: 10700, RemainingAmount: 0,
				CreditScore: score(750), RiskLevel: loan.RiskLow,
			},
		},
		Payments: []payment.Payment{
			{PaymentID: "P001", LoanID: "L001", Amount: 1619, Principal: 1260, Interest: 359, PaidAt: dp("2024-07-01"), DueDate: d("2024-07-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P002", LoanID: "L001", Amount: 1619, Principal: 1269, Interest: 350, PaidAt: dp("2024-08-01"), DueDate: d("2024-08-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P003", LoanID: "L001", Amount: 1619, Principal: 1278, Interest: 341, PaidAt: dp("2024-09-01"), DueDate: d("2024-09-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P004", LoanID: "L001", Amount: 1619, Principal: 1287, Interest: 332, PaidAt: dp("2024-10-01"), DueDate: d("2024-10-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P005", LoanID: "L001", Amount: 1619, Principal: 1296, Interest: 323, PaidAt: dp("2024-11-01"), DueDate: d("2024-11-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P006", LoanID: "L001", Amount: 1619, Principal: 1305, Interest: 314, PaidAt: dp("2024-12-01"), DueDate: d("2024-12-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P007", LoanID: "L001", Amount: 1619, Principal: 1314, Interest: 305, PaidAt: dp("2025-01-01"), DueDate: d("2025-01-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P008", LoanID: "L001", Amount: 1619, Principal: 1323, Interest: 296, PaidAt: dp("2025-02-01"), DueDate: d("2025-02-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P009", LoanID: "L001", DueDate: d("2025-03-01"), Status: payment.StatusPending},
			{PaymentID: "P010", LoanID: "L001", DueDate: d("2025-04-01"), Status: payment.StatusPending},
			{PaymentID: "P011", LoanID: "L002", Amount: 1169, Principal: 960, Interest: 209, PaidAt: dp("2025-02-01"), DueDate: d("2025-02-01"), Status: payment.StatusPaid, Method: "Credit Card"},
			{PaymentID: "P012", LoanID: "L002", Amount: 1169, Principal: 968, Interest: 201, PaidAt: dp("2025-03-01"), DueDate: d("2025-03-01"), Status: payment.StatusPaid, Method: "Credit Card"},
			{PaymentID: "P013", LoanID: "L002", DueDate: d("2025-04-01"), Status: payment.StatusPending},
			{PaymentID: "P014", LoanID: "L003", Amount: 1306, Principal: 1212, Interest: 94, PaidAt: dp("2025-07-01"), DueDate: d("2025-07-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P015", LoanID: "L003", Amount: 1306, Principal: 1220, Interest: 86, PaidAt: dp("2025-08-01"), DueDate: d("2025-08-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P016", LoanID: "L003", Amount: 1306, Principal: 1227, Interest: 79, PaidAt: dp("2025-09-01"), DueDate: d("2025-09-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P017", LoanID: "L003", Amount: 1306, Principal: 1235, Interest: 71, PaidAt: dp("2025-10-01"), DueDate: d("2025-10-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P018", LoanID: "L003", Amount: 1306, Principal: 1242, Interest: 64, PaidAt: dp("2025-11-01"), DueDate: d("2025-11-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P019", LoanID: "L003", Amount: 1306, Principal: 1250, Interest: 56, PaidAt: dp("2025-12-01"), DueDate: d("2025-12-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P020", LoanID: "L003", Amount: 1306, Principal: 1258, Interest: 48, PaidAt: dp("2026-01-01"), DueDate: d("2026-01-01"), Status: payment.StatusPaid, Method: "Bank Transfer"},
			{PaymentID: "P021", LoanID: "L003", DueDate: d("2026-02-01"), Status: payment.StatusOverdue},
		},
		Transactions: []transaction.Transaction{
			{TransactionID: "T001", LoanID: "L001", Type: transaction.TypeDisbursement, Amount: 50000, Date: d("2024-06-01"), Description: "Loan disbursement to Michael Chen", Status: transaction.StatusCompleted},
			{TransactionID: "T002", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-07-01"), Description: "Monthly payment #1", Status: transaction.StatusCompleted},
			{TransactionID: "T003", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-08-01"), Description: "Monthly payment #2", Status: transaction.StatusCompleted},
			{TransactionID: "T004", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-09-01"), Description: "Monthly payment #3", Status: transaction.StatusCompleted},
			{TransactionID: "T005", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-10-01"), Description: "Monthly payment #4", Status: transaction.StatusCompleted},
			{TransactionID: "T006", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-11-01"), Description: "Monthly payment #5", Status: transaction.StatusCompleted},
			{TransactionID: "T007", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2024-12-01"), Description: "Monthly payment #6", Status: transaction.StatusCompleted},
			{TransactionID: "T008", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2025-01-01"), Description: "Monthly payment #7", Status: transaction.StatusCompleted},
			{TransactionID: "T009", LoanID: "L001", Type: transaction.TypePayment, Amount: 1619, Date: d("2025-02-01"), Description: "Monthly payment #8", Status: transaction.StatusCompleted},
			{TransactionID: "T010", LoanID: "L002", Type: transaction.TypeDisbursement, Amount: 25000, Date: d("2025-01-01"), Description: "Loan disbursement to James Wilson", Status: transaction.StatusCompleted},
			{TransactionID: "T011", LoanID: "L002", Type: transaction.TypePayment, Amount: 1169, Date: d("2025-02-01"), Description: "Monthly payment #1", Status: transaction.StatusCompleted},
			{TransactionID: "T012", LoanID: "L002", Type: transaction.TypePayment, Amount: 1169, Date: d("2025-03-01"), Description: "Monthly payment #2", Status: transaction.StatusCompleted},
			{TransactionID: "T013", LoanID: "L003", Type: transaction.TypeDisbursement, Amount: 15000, Date: d("2025-06-01"), Description: "Loan disbursement to Lisa Anderson", Status: transaction.StatusCompleted},
			{TransactionID: "T014", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-07-01"), Description: "Monthly payment #1", Status: transaction.StatusCompleted},
			{TransactionID: "T015", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-08-01"), Description: "Monthly payment #2", Status: transaction.StatusCompleted},
			{TransactionID: "T016", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-09-01"), Description: "Monthly payment #3", Status: transaction.StatusCompleted},
			{TransactionID: "T017", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-10-01"), Description: "Monthly payment #4", Status: transaction.StatusCompleted},
			{TransactionID: "T018", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-11-01"), Description: "Monthly payment #5", Status: transaction.StatusCompleted},
			{TransactionID: "T019", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2025-12-01"), Description: "Monthly payment #6", Status: transaction.StatusCompleted},
			{TransactionID: "T020", LoanID: "L003", Type: transaction.TypePayment, Amount: 1306, Date: d("2026-01-01"), Description: "Monthly payment #7", Status: transaction.StatusCompleted},
			{TransactionID: "T021", LoanID: "L003", Type: transaction.TypePenalty, Amount: 50, Date: d("2026-02-05"), Description: "Late payment fee", Status: transaction.StatusCompleted},
			{TransactionID: "T022", LoanID: "L006", Type: transaction.TypeDisbursement, Amount: 10000, Date: d("2024-01-01"), Description: "Loan disbursement to Lisa Anderson", Status: transaction.StatusCompleted},
		},
	}
}
