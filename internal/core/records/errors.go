package records

import "errors"

var (
	ErrIncompleteDraft    = errors.New("records: required fields are missing")
	ErrInvalidID          = errors.New("records: invalid id")
	ErrInvalidDepartment  = errors.New("records: invalid department")
	ErrInvalidStatus      = errors.New("records: invalid status")
	ErrInvalidHistoryType = errors.New("records: invalid history type")
	ErrEmployeeNotFound   = errors.New("records: employee not found")
	ErrImportMalformed    = errors.New("records: import data is not valid JSON")
	ErrImportShape        = errors.New("records: import data must be a non-empty array of employees")
	// ErrStaleResponse は生成結果の適用先社員がすでに存在しない場合に返却されます。
	ErrStaleResponse = errors.New("records: employee no longer exists")
	// ErrBlobNotFound は保存領域にキーが存在しない場合に Blob 実装が返却します。
	ErrBlobNotFound = errors.New("records: blob not found")
)

var (
	ErrInvalidStartDate = errors.New("records: invalid start date, expected YYYY-MM-DD")
	ErrDialogClosed     = errors.New("records: dialog is not open")
	ErrNoSelection      = errors.New("records: no employee selected")
)
