package storage

import "errors"

// Repository errors. Use-case errors wrap their root cause so errors.Is matches
// both, e.g. ErrCreateExpense and core.ErrNegativeAmount.
var (
	ErrReadFile            = errors.New("fail to read expense file")
	ErrDecodeFile          = errors.New("fail to decode expense file")
	ErrEncodeExpenses      = errors.New("fail to encode expenses into json string")
	ErrWriteExpensesInFile = errors.New("fail to write expenses in the file")
	ErrCreateExpense       = errors.New("fail to create expense")
	ErrDeleteExpense       = errors.New("fail to delete expense")
)
