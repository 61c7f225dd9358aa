package occupancy

import "errors"

var (
	// ErrNoDataset возвращается, когда ни один источник еще не загружен
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrSiteNotFound возвращается, когда площадки нет в активном наборе данных
	ErrSiteNotFound = errors.New("site not found")
)
