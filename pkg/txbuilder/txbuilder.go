// Package txbuilder assembles ledger transaction payloads for the lending
// protocol. Builders are pure data shaping: no network I/O, no balance
// checks, no signing, and no input validation. Malformed inputs produce a
// malformed payload, not an error.
package txbuilder

import (
	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
)

// TrustSet authorizes account to hold up to limit units of the issued
// currency. Required once before the first issued-currency transfer. The
// limit string is carried into the payload exactly as given.
func TrustSet(account, issuer, currency, limit string) types.Payload {
	return types.Payload{
		"TransactionType": "TrustSet",
		"Account":         account,
		"LimitAmount": types.IssuedAmount{
			Currency: currency,
			Issuer:   issuer,
			Value:    limit,
		},
	}
}

// Deposit moves an issued-currency amount from account into the custodial
// pool, tagged as an LP deposit via memo.
func Deposit(account, pool string, amount types.IssuedAmount) types.Payload {
	return types.Payload{
		"TransactionType": "Payment",
		"Account":         account,
		"Destination":     pool,
		"Amount":          amount,
		"Memos": []types.MemoWrapper{
			{Memo: types.Memo{
				MemoType: constants.MemoTypeDeposit,
				MemoData: constants.MemoDataDeposit,
			}},
		},
	}
}

// EscrowCreate locks native-unit collateral (drops) from borrower toward
// the pool, releasable after finishAfter and reclaimable after
// cancelAfter. The builder carries both time bounds unchanged; ensuring
// finishAfter precedes cancelAfter is the caller's responsibility.
func EscrowCreate(borrower, pool, drops string, finishAfter, cancelAfter int64) types.Payload {
	return types.Payload{
		"TransactionType": "EscrowCreate",
		"Account":         borrower,
		"Destination":     pool,
		"Amount":          drops,
		"FinishAfter":     finishAfter,
		"CancelAfter":     cancelAfter,
	}
}

// Repay moves an issued-currency amount back to the pool, tagged as a
// loan repayment. Distinct from a deposit only by memo content.
func Repay(account, pool string, amount types.IssuedAmount) types.Payload {
	return types.Payload{
		"TransactionType": "Payment",
		"Account":         account,
		"Destination":     pool,
		"Amount":          amount,
		"Memos": []types.MemoWrapper{
			{Memo: types.Memo{
				MemoType: constants.MemoTypeRepay,
				MemoData: constants.MemoDataRepay,
			}},
		},
	}
}
