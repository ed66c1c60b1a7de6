package blocked

import "errors"

var (
	ErrBuildQuery = errors.New("blocked.repository: failed to build query")
	ErrExecQuery  = errors.New("blocked.repository: failed to execute query")
	ErrScanRow    = errors.New("blocked.repository: failed to scan row")
)
