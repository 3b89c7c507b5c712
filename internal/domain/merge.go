package domain

// MergeDay resolves how a partial update combines with an existing record.
// The policy is applied independently per field:
//
//   - no existing record: the update's fields are stored as-is, absent
//     fields stay absent.
//   - overwrite: a provided field replaces the stored one, an absent field
//     leaves the stored one unchanged.
//   - no-overwrite (fill gaps): a stored field is never replaced, even when
//     the update provides a value; only previously-absent fields are filled.
//
// Notes are additive and never pass through this policy.
func MergeDay(existing *DayRecord, date string, u DayUpdate, overwrite bool) DayRecord {
	if existing == nil {
		return DayRecord{
			Date:         date,
			StartTime:    u.StartTime,
			EndTime:      u.EndTime,
			BreakMinutes: u.BreakMinutes,
		}
	}
	return DayRecord{
		Date:         date,
		StartTime:    mergeStr(existing.StartTime, u.StartTime, overwrite),
		EndTime:      mergeStr(existing.EndTime, u.EndTime, overwrite),
		BreakMinutes: mergeInt(existing.BreakMinutes, u.BreakMinutes, overwrite),
	}
}

func mergeStr(existing, incoming *string, overwrite bool) *string {
	if overwrite {
		if incoming != nil {
			return incoming
		}
		return existing
	}
	if existing != nil {
		return existing
	}
	return incoming
}

func mergeInt(existing, incoming *int, overwrite bool) *int {
	if overwrite {
		if incoming != nil {
			return incoming
		}
		return existing
	}
	if existing != nil {
		return existing
	}
	return incoming
}
