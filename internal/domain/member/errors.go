package member

import "errors"

var (
	ErrInsertFailed = errors.New("insert failed")
	ErrSelectFailed = errors.New("select failed")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")
)
