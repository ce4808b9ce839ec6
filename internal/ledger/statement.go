package ledger

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sheikh-saqib/single-account-ledger/internal/models"
)

// Minimum column widths of a statement; a column grows to its widest cell.
const (
	minDateWidth    = 10
	minAmountWidth  = 9
	minBalanceWidth = 7
)

// row holds the rendered cells of one transaction.
type row struct {
	date, credit, debit, balance string
}

// columns are the widths shared by the header and every row.
type columns struct {
	date, amount, balance int
}

func (c *columns) fit(r row) {
	c.date = max(c.date, utf8.RuneCountInString(r.date))
	c.amount = max(c.amount, utf8.RuneCountInString(r.credit), utf8.RuneCountInString(r.debit))
	c.balance = max(c.balance, utf8.RuneCountInString(r.balance))
}

func (a *Account) render(tx models.Transaction) row {
	r := row{
		date:    tx.CreatedAt.Format(a.dateLayout),
		balance: tx.Balance.String(),
	}
	if tx.Kind == models.Deposit {
		r.credit = tx.Amount.String()
	} else {
		r.debit = tx.Amount.String()
	}
	return r
}

// WriteStatement renders the account header and one line per transaction,
// oldest first. Deposits fill the credit column, withdrawals the debit
// column, and every row shows the running balance. All lines of one
// statement have the same width.
func (a *Account) WriteStatement(w io.Writer) error {
	// first pass: render cells and size the columns
	rows := make([]row, 0, len(a.transactions))
	cols := columns{date: minDateWidth, amount: minAmountWidth, balance: minBalanceWidth}
	for _, tx := range a.transactions {
		r := a.render(tx)
		cols.fit(r)
		rows = append(rows, r)
	}

	// second pass: write
	if _, err := fmt.Fprintf(w, "account number %s\n", a.id); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, " %-*s || %-*s || %-*s || %-*s\n",
		cols.date, "Date", cols.amount, "credit", cols.amount, "debit", cols.balance, "balance"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, " %-*s || %*s || %*s || %*s\n",
			cols.date, r.date,
			cols.amount, r.credit,
			cols.amount, r.debit,
			cols.balance, r.balance); err != nil {
			return err
		}
	}
	return nil
}

// Statement returns the rendered statement.
func (a *Account) Statement() string {
	var sb strings.Builder
	_ = a.WriteStatement(&sb) // strings.Builder never fails
	return sb.String()
}

func (a *Account) String() string { return a.Statement() }
