package usecase

import "time"

// reference returns the caller supplied instant, or now.
func (uc *implUseCase) reference(ref *time.Time) time.Time {
	if ref != nil {
		return *ref
	}
	return uc.now()
}
