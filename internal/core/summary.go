package core

type (
	// AccountBalance aggregates one account's movements. Balance can go
	// negative, so it is a bare unit count rather than a Money value.
	AccountBalance struct {
		AccountID int64  `json:"account_id"`
		Name      string `json:"name"`
		Income    Money  `json:"income"`
		Expense   Money  `json:"expense"`
		Balance   int64  `json:"balance"`
	}

	// Overview is the dashboard aggregate over the transaction collection.
	Overview struct {
		Income    Money            `json:"income"`
		Expense   Money            `json:"expense"`
		Balance   int64            `json:"balance"`
		Active    int              `json:"active"`
		Voided    int              `json:"voided"`
		ByAccount []AccountBalance `json:"by_account"`
	}
)

// BuildOverview aggregates transactions into dashboard totals. Voided
// transactions are counted but excluded from every total and balance. Accounts
// appear in order of first appearance in the collection.
func BuildOverview(txs []Transaction) Overview {
	var ov Overview
	index := make(map[int64]int)
	for _, tx := range txs {
		if tx.Voided() {
			ov.Voided++
			continue
		}
		ov.Active++

		i, ok := index[tx.AccountID]
		if !ok {
			i = len(ov.ByAccount)
			index[tx.AccountID] = i
			ov.ByAccount = append(ov.ByAccount, AccountBalance{
				AccountID: tx.AccountID,
				Name:      tx.AccountName,
			})
		}

		switch tx.Type {
		case Income:
			ov.Income.Units += tx.Amount.Units
			ov.ByAccount[i].Income.Units += tx.Amount.Units
			ov.ByAccount[i].Balance += tx.Amount.Units
		case Expense:
			ov.Expense.Units += tx.Amount.Units
			ov.ByAccount[i].Expense.Units += tx.Amount.Units
			ov.ByAccount[i].Balance -= tx.Amount.Units
		}
	}
	ov.Balance = ov.Income.Units - ov.Expense.Units
	return ov
}
